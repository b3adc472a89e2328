package reservation

import (
	"context"
	"log/slog"
	"time"

	domain "github.com/saiichandraa424-cpu/restaurant-reservations/internal/domain/reservation"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/httperr"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/lib/logger/sl"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/models"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type UpdateStatusInput struct {
	ID     string
	Status domain.Status
	Note   string
}

// TransitionResult reports the committed reservation and whether the
// customer email went out. EmailSent is false both for delivery failures and
// for locally skipped sends; the transition itself stands either way.
type TransitionResult struct {
	Reservation *models.Reservation
	EmailSent   bool
}

// StatusNotifier is the best-effort notification step after a committed
// transition.
type StatusNotifier interface {
	StatusChanged(
		ctx context.Context,
		res *models.Reservation,
		status domain.Status,
		note string,
	) error
}

// ======================================================
// USE CASE
// ======================================================

// UpdateStatus is the single status-transition workflow behind both admin
// screens: persist, notify best-effort, then re-fetch to reconcile against
// the store.
type UpdateStatus struct {
	log      *slog.Logger
	repo     domain.Repository
	notifier StatusNotifier
	now      func() time.Time
}

func NewUpdateStatus(
	log *slog.Logger,
	repo domain.Repository,
	notifier StatusNotifier,
) *UpdateStatus {
	return &UpdateStatus{
		log:      log,
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*TransitionResult, error) {

	// --------------------------------------------------
	// 1. Defensive membership check before touching the store
	// --------------------------------------------------
	if !domain.IsValidStatus(in.Status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	// --------------------------------------------------
	// 2. Load the reservation
	// --------------------------------------------------
	res, err := uc.repo.GetReservation(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	// --------------------------------------------------
	// 3. Apply the transition locally, then persist
	// --------------------------------------------------
	if err := domain.Transition(res, in.Status, in.Note, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Notify, best-effort. Never unwinds the commit.
	// --------------------------------------------------
	emailSent := uc.notifier.StatusChanged(ctx, res, in.Status, in.Note) == nil

	// --------------------------------------------------
	// 5. Re-fetch to reconcile against the store
	// --------------------------------------------------
	fresh, err := uc.repo.GetReservation(ctx, in.ID)
	if err != nil {
		uc.log.Warn("re-fetch after status update failed",
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
