package reservation

import (
	"context"
	"log/slog"
	"time"

	domain "github.com/saiichandraa424-cpu/restaurant-reservations/internal/domain/reservation"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/httperr"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/lib/logger/sl"
)

type UpdateNotesInput struct {
	ID   string
	Note string
}

// UpdateNotes overwrites the operator note while leaving the status as is.
// Same persist → notify → re-fetch sequence as a status transition; the
// notification template is keyed off the status already on the row.
type UpdateNotes struct {
	log      *slog.Logger
	repo     domain.Repository
	notifier StatusNotifier
	now      func() time.Time
}

func NewUpdateNotes(
	log *slog.Logger,
	repo domain.Repository,
	notifier StatusNotifier,
) *UpdateNotes {
	return &UpdateNotes{
		log:      log,
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (uc *UpdateNotes) Execute(
	ctx context.Context,
	in UpdateNotesInput,
) (*TransitionResult, error) {

	res, err := uc.repo.GetReservation(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	domain.Annotate(res, in.Note, uc.now())

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	emailSent := uc.notifier.StatusChanged(ctx, res, domain.Status(res.Status), in.Note) == nil

	fresh, err := uc.repo.GetReservation(ctx, in.ID)
	if err != nil {
		uc.log.Warn("re-fetch after notes update failed",
			slog.String("reservation_id", in.ID),
			sl.Err(err),
		)
		fresh = res
	}

	return &TransitionResult{
		Reservation: fresh,
		EmailSent:   emailSent,
	}, nil
}
