package schedule

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// WEEKLY AVAILABILITY
// ======================================================

type DayInput struct {
	DayOfWeek int
	StartTime string
	EndTime   string
	IsOpen    bool
}

type GetAvailability struct {
	repo domain.ScheduleStore
}

func NewGetAvailability(repo domain.ScheduleStore) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(ctx context.Context) ([]models.DayAvailability, error) {
	return uc.repo.ListAvailability(ctx)
}

type ReplaceAvailability struct {
	repo  domain.ScheduleStore
	audit audit.Recorder
}

func NewReplaceAvailability(repo domain.ScheduleStore, audit audit.Recorder) *ReplaceAvailability {
	return &ReplaceAvailability{repo: repo, audit: audit}
}

// Execute replaces the whole week. Days left out become closed.
func (uc *ReplaceAvailability) Execute(
	ctx context.Context,
	adminID uint,
	days []DayInput,
) ([]models.DayAvailability, error) {

	seen := map[int]bool{}
	out := make([]models.DayAvailability, 0, len(days))

	for _, d := range days {
		if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
			return nil, httperr.ErrValidation("invalid_day_of_week", "Day of week must be between 0 and 6.")
		}
		if seen[d.DayOfWeek] {
			return nil, httperr.ErrValidation("duplicate_day_of_week", "Each day of week may appear once.")
		}
		seen[d.DayOfWeek] = true

		start, err := domain.ParseHM(d.StartTime)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_time", "Times must be HH:MM.")
		}
		end, err := domain.ParseHM(d.EndTime)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_time", "Times must be HH:MM.")
		}
		if d.IsOpen && end <= start {
			return nil, httperr.ErrValidation("invalid_window", "Closing time must be after opening time.")
		}

		out = append(out, models.DayAvailability{
			DayOfWeek: d.DayOfWeek,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			IsOpen:    d.IsOpen,
		})
	}

	if err := uc.repo.ReplaceAvailability(ctx, out); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   audit.ActionAvailabilityUpdated,
		Entity:   "availability",
		Metadata: map[string]any{"days": len(out)},
	})

	return uc.repo.ListAvailability(ctx)
}

// ======================================================
// BLOCKED DATES
// ======================================================

type ListBlockedDates struct {
	repo domain.ScheduleStore
}

func NewListBlockedDates(repo domain.ScheduleStore) *ListBlockedDates {
	return &ListBlockedDates{repo: repo}
}

func (uc *ListBlockedDates) Execute(ctx context.Context) ([]models.BlockedDate, error) {
	return uc.repo.ListBlockedDates(ctx)
}

type BlockDate struct {
	repo  domain.ScheduleStore
	audit audit.Recorder
}

func NewBlockDate(repo domain.ScheduleStore, audit audit.Recorder) *BlockDate {
	return &BlockDate{repo: repo, audit: audit}
}

func (uc *BlockDate) Execute(
	ctx context.Context,
	adminID uint,
	date string,
	reason string,
) (*models.BlockedDate, error) {

	d, err := models.ParseDate(date)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date", "Date must be YYYY-MM-DD.")
	}

	bd := &models.BlockedDate{Date: d, Reason: strings.TrimSpace(reason)}
	if err := uc.repo.CreateBlockedDate(ctx, bd); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, httperr.ErrConflict("date_already_blocked", "Date is already blocked.")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   audit.ActionDateBlocked,
		Entity:   "blocked_date",
		EntityID: audit.UintPtr(bd.ID),
		Metadata: map[string]any{"date": d.String()},
	})

	return bd, nil
}

type UnblockDate struct {
	repo  domain.ScheduleStore
	audit audit.Recorder
}

func NewUnblockDate(repo domain.ScheduleStore, audit audit.Recorder) *UnblockDate {
	return &UnblockDate{repo: repo, audit: audit}
}

func (uc *UnblockDate) Execute(ctx context.Context, adminID, id uint) error {
	if err := uc.repo.DeleteBlockedDate(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrNotFound("blocked_date_not_found", "Blocked date not found.")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   audit.ActionDateUnblocked,
		Entity:   "blocked_date",
		EntityID: &id,
	})

	return nil
}
