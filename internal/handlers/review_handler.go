package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucReview "github.com/BruksfildServices01/barber-booking/internal/usecase/review"
)

type ReviewHandler struct {
	list   *ucReview.ListReviews
	create *ucReview.CreateReview
}

func NewReviewHandler(list *ucReview.ListReviews, create *ucReview.CreateReview) *ReviewHandler {
	return &ReviewHandler{list: list, create: create}
}

type CreateReviewRequest struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "reviews_list_failed")
		return
	}
	httpresp.List(c, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid review.")
		return
	}

	r, err := h.create.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		ClientID:  userID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		httperr.FromError(c, err, "review_create_failed")
		return
	}

	httpresp.Created(c, r)
}
