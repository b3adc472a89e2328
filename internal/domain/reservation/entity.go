package reservation

import (
	"time"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves a reservation to the next status and records the
// operator's note. Booking date and time are not re-validated here.
func Transition(res *models.Reservation, next Status, note string, now time.Time) error {
	if err := CanTransition(Status(res.Status), next); err != nil {
		return err
	}

	res.Status = string(next)
	res.Notes = note
	res.UpdatedAt = &now
	return nil
}

// Annotate overwrites the notes while keeping the current status.
func Annotate(res *models.Reservation, note string, now time.Time) {
	res.Notes = note
	res.UpdatedAt = &now
}
