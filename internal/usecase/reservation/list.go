package reservation

import (
	"context"

	domain "github.com/saiichandraa424-cpu/restaurant-reservations/internal/domain/reservation"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/models"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(
	repo domain.Repository,
) *ListReservations {
	return &ListReservations{
		repo: repo,
	}
}

func (uc *ListReservations) Execute(
	ctx context.Context,
) ([]models.Reservation, error) {
	return uc.repo.ListReservations(ctx)
}
