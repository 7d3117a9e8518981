package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	listServices *ucBooking.ListServices
	slots        *ucBooking.GetAvailableSlots
	create       *ucBooking.CreateBooking
}

func NewPublicHandler(
	listServices *ucBooking.ListServices,
	slots *ucBooking.GetAvailableSlots,
	create *ucBooking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		listServices: listServices,
		slots:        slots,
		create:       create,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SlotsQuery struct {
	Date      string `form:"date" binding:"required,ymd"`
	ServiceID uint   `form:"service_id"`
}

type CreateBookingRequest struct {
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"appointment_date" binding:"required"`
	Time        string `json:"appointment_time" binding:"required"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email" binding:"required"`
	ClientPhone string `json:"client_phone"`
}

// ======================================================
// SERVICES
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.listServices.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "services_list_failed")
		return
	}
	httpresp.List(c, services)
}

// ======================================================
// SLOTS
// ======================================================

// ServiceSlots serves GET /services/:id/slots?date=YYYY-MM-DD.
func (h *PublicHandler) ServiceSlots(c *gin.Context) {
	serviceID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var q SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	h.writeSlots(c, q.Date, serviceID)
}

// Slots serves GET /slots?date=YYYY-MM-DD&service_id=N.
func (h *PublicHandler) Slots(c *gin.Context) {
	var q SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}
	if q.ServiceID == 0 {
		httperr.BadRequest(c, "invalid_service_id", "service_id is required.")
		return
	}

	h.writeSlots(c, q.Date, q.ServiceID)
}

func (h *PublicHandler) writeSlots(c *gin.Context, rawDate string, serviceID uint) {
	date, err := models.ParseDate(rawDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:      date,
		ServiceID: serviceID,
	})
	if err != nil {
		httperr.FromError(c, err, "slots_failed")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// CREATE BOOKING
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking request.")
		return
	}

	in := ucBooking.CreateBookingInput{
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
	}
	if id, ok := middleware.CurrentUserID(c); ok {
		in.ClientID = &id
	}

	if _, err := h.create.Execute(c.Request.Context(), in); err != nil {
		httperr.FromError(c, err, "booking_create_failed")
		return
	}

	httpresp.Success(c)
}
