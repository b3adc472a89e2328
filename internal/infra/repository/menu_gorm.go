package repository

import (
	"context"

	"gorm.io/gorm"

	menudomain "github.com/saiichandraa424-cpu/restaurant-reservations/internal/domain/menu"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/models"
)

type MenuGormRepository struct {
	db *gorm.DB
}

func NewMenuGormRepository(db *gorm.DB) *MenuGormRepository {
	return &MenuGormRepository{db: db}
}

func (r *MenuGormRepository) ListCategories(
	ctx context.Context,
) ([]models.MenuCategory, error) {

	var out []models.MenuCategory
	if err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

func (r *MenuGormRepository) ListAvailableItems(
	ctx context.Context,
) ([]models.MenuItem, error) {

	var out []models.MenuItem
	if err := r.db.WithContext(ctx).
		Where("is_available = true").
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// Compile-time check
var _ menudomain.Repository = (*MenuGormRepository)(nil)
