package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/saiichandraa424-cpu/restaurant-reservations/internal/domain/reservation"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Order("reservation_date ASC").
		Order("reservation_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
