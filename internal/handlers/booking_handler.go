package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// BookingHandler serves the signed-in client's own bookings.
type BookingHandler struct {
	listMine *ucBooking.ListMyBookings
	cancel   *ucBooking.CancelBooking
}

func NewBookingHandler(
	listMine *ucBooking.ListMyBookings,
	cancel *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		listMine: listMine,
		cancel:   cancel,
	}
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	bookings, err := h.listMine.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err, "bookings_list_failed")
		return
	}

	httpresp.List(c, dto.NewBookingList(bookings))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	bookingID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.cancel.Execute(c.Request.Context(), userID, bookingID); err != nil {
		httperr.FromError(c, err, "booking_cancel_failed")
		return
	}

	httpresp.Success(c)
}
