package reservation

import (
	"context"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/models"
)

type Repository interface {
	// -------- Reservation (create) --------
	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	// -------- Reservation (read) --------
	GetReservation(
		ctx context.Context,
		id string,
	) (*models.Reservation, error)

	// ListReservations returns every reservation ordered by date, then time,
	// ascending. No pagination, no status filter.
	ListReservations(
		ctx context.Context,
	) ([]models.Reservation, error)

	// -------- Reservation (state change) --------
	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error
}
