package review

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ListReviews struct {
	repo domain.ReviewStore
}

func NewListReviews(repo domain.ReviewStore) *ListReviews {
	return &ListReviews{repo: repo}
}

func (uc *ListReviews) Execute(ctx context.Context) ([]models.Review, error) {
	return uc.repo.ListReviews(ctx)
}

type CreateReviewInput struct {
	ClientID  uint
	BookingID uint
	Rating    int
	Comment   string
}

var errReviewExists = httperr.ErrConflict("review_exists", "This booking was already reviewed.")

type CreateReview struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateReview(repo domain.Repository, audit audit.Recorder) *CreateReview {
	return &CreateReview{repo: repo, audit: audit}
}

// Execute records the client's single review of one of their confirmed
// bookings. Reviews are never edited afterwards.
func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrValidation("invalid_rating", "Rating must be between 1 and 5.")
	}

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("booking_not_found", "Booking not found.")
	}
	if err != nil {
		return nil, err
	}

	if !b.OwnedBy(in.ClientID) {
		return nil, httperr.ErrForbidden("not_booking_owner", "Cannot review other users bookings.")
	}
	if domain.Status(b.Status) != domain.StatusConfirmed {
		return nil, httperr.ErrValidation("booking_not_reviewable", "Only confirmed bookings can be reviewed.")
	}

	reviewed, err := uc.repo.HasReview(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, errReviewExists
	}

	r := &models.Review{
		BookingID: b.ID,
		ClientID:  in.ClientID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
	}

	if err := uc.repo.CreateReview(ctx, r); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errReviewExists
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   audit.ActionReviewCreated,
		Entity:   "review",
		EntityID: audit.UintPtr(r.ID),
		Metadata: map[string]any{"booking_id": b.ID, "rating": r.Rating},
	})

	return r, nil
}
