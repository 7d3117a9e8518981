package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	listAll      *ucBooking.ListAllBookings
	updateStatus *ucBooking.UpdateBookingStatus
	analytics    *ucBooking.GetAnalytics

	getWeek     *ucSchedule.GetAvailability
	replaceWeek *ucSchedule.ReplaceAvailability
	listBlocked *ucSchedule.ListBlockedDates
	block       *ucSchedule.BlockDate
	unblock     *ucSchedule.UnblockDate
}

type AdminUseCases struct {
	ListAll      *ucBooking.ListAllBookings
	UpdateStatus *ucBooking.UpdateBookingStatus
	Analytics    *ucBooking.GetAnalytics

	GetWeek     *ucSchedule.GetAvailability
	ReplaceWeek *ucSchedule.ReplaceAvailability
	ListBlocked *ucSchedule.ListBlockedDates
	Block       *ucSchedule.BlockDate
	Unblock     *ucSchedule.UnblockDate
}

func NewAdminHandler(uc AdminUseCases) *AdminHandler {
	return &AdminHandler{
		listAll:      uc.ListAll,
		updateStatus: uc.UpdateStatus,
		analytics:    uc.Analytics,
		getWeek:      uc.GetWeek,
		replaceWeek:  uc.ReplaceWeek,
		listBlocked:  uc.ListBlocked,
		block:        uc.Block,
		unblock:      uc.Unblock,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

type DayRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	IsOpen    bool   `json:"is_open"`
}

type ReplaceAvailabilityRequest struct {
	Days []DayRequest `json:"days" binding:"required,dive"`
}

type BlockDateRequest struct {
	Date   string `json:"date" binding:"required,ymd"`
	Reason string `json:"reason"`
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.listAll.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "bookings_list_failed")
		return
	}
	httpresp.List(c, dto.NewBookingList(bookings))
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	adminID, _ := middleware.CurrentUserID(c)

	bookingID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	if _, err := h.updateStatus.Execute(c.Request.Context(), ucBooking.UpdateBookingStatusInput{
		AdminID:   adminID,
		BookingID: bookingID,
		Status:    req.Status,
		Notes:     req.Notes,
	}); err != nil {
		httperr.FromError(c, err, "booking_status_failed")
		return
	}

	httpresp.Success(c)
}

func (h *AdminHandler) Analytics(c *gin.Context) {
	out, err := h.analytics.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "analytics_failed")
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// WEEKLY AVAILABILITY
// ======================================================

func (h *AdminHandler) GetAvailability(c *gin.Context) {
	days, err := h.getWeek.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "availability_list_failed")
		return
	}
	httpresp.List(c, days)
}

func (h *AdminHandler) ReplaceAvailability(c *gin.Context) {
	adminID, _ := middleware.CurrentUserID(c)

	var req ReplaceAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability.")
		return
	}

	in := make([]ucSchedule.DayInput, 0, len(req.Days))
	for _, d := range req.Days {
		in = append(in, ucSchedule.DayInput{
			DayOfWeek: d.DayOfWeek,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			IsOpen:    d.IsOpen,
		})
	}

	days, err := h.replaceWeek.Execute(c.Request.Context(), adminID, in)
	if err != nil {
		httperr.FromError(c, err, "availability_update_failed")
		return
	}
	httpresp.List(c, days)
}

// ======================================================
// BLOCKED DATES
// ======================================================

func (h *AdminHandler) ListBlockedDates(c *gin.Context) {
	dates, err := h.listBlocked.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "blocked_dates_list_failed")
		return
	}
	httpresp.List(c, dates)
}

func (h *AdminHandler) BlockDate(c *gin.Context) {
	adminID, _ := middleware.CurrentUserID(c)

	var req BlockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	bd, err := h.block.Execute(c.Request.Context(), adminID, req.Date, req.Reason)
	if err != nil {
		httperr.FromError(c, err, "block_date_failed")
		return
	}
	httpresp.Created(c, bd)
}

func (h *AdminHandler) UnblockDate(c *gin.Context) {
	adminID, _ := middleware.CurrentUserID(c)

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.unblock.Execute(c.Request.Context(), adminID, id); err != nil {
		httperr.FromError(c, err, "unblock_date_failed")
		return
	}
	httpresp.Success(c)
}
