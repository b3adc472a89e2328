package reservation

import (
	"context"
	"strings"
	"time"

	domain "github.com/saiichandraa424-cpu/restaurant-reservations/internal/domain/reservation"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/httperr"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/mailer"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/models"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	PartySize int

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo     domain.Repository
	mail     *mailer.Dispatcher
	notifier *mailer.Notifier
	now      func() time.Time
}

func NewCreateReservation(
	repo domain.Repository,
	mail *mailer.Dispatcher,
	notifier *mailer.Notifier,
) *CreateReservation {
	return &CreateReservation{
		repo:     repo,
		mail:     mail,
		notifier: notifier,
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Field validation, before any store call
	// --------------------------------------------------
	if err := validate(in, uc.now()); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Insert with status forced to pending
	// --------------------------------------------------
	res := &models.Reservation{
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		PartySize:       in.PartySize,
		ReservationDate: in.Date,
		ReservationTime: in.Time,
		Status:          string(domain.InitialStatus()),
		CreatedAt:       uc.now(),
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Fire-and-forget confirmation email
	// --------------------------------------------------
	created := *res
	uc.mail.Dispatch(mailer.Job{
		Name: "reservation_received",
		Send: func(ctx context.Context) error {
			return uc.notifier.ReservationReceived(ctx, &created)
		},
	})

	return res, nil
}

// ======================================================
// VALIDATION
// ======================================================

func validate(in CreateReservationInput, now time.Time) error {
	name := strings.TrimSpace(in.CustomerName)
	if len(name) < domain.MinNameLen || len(name) > domain.MaxNameLen {
		return httperr.ErrBusiness("invalid_name")
	}

	if !validators.IsEmailShapeValid(in.CustomerEmail) {
		return httperr.ErrBusiness("invalid_email")
	}

	phone := strings.TrimSpace(in.CustomerPhone)
	if len(phone) < domain.MinPhoneLen || len(phone) > domain.MaxPhoneLen {
		return httperr.ErrBusiness("invalid_phone")
	}

	if !domain.IsValidPartySize(in.PartySize) {
		return httperr.ErrBusiness("invalid_party_size")
	}

	date, err := time.Parse(domain.DateLayout, in.Date)
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	if !domain.WithinBookingWindow(date, now) {
		return httperr.ErrBusiness("date_out_of_range")
	}

	if !domain.IsServiceTime(in.Time) {
		return httperr.ErrBusiness("invalid_time")
	}

	return nil
}
