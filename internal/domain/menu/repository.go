package menu

import (
	"context"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/models"
)

type Repository interface {
	// ListCategories returns all categories ordered by display_order.
	ListCategories(ctx context.Context) ([]models.MenuCategory, error)

	// ListAvailableItems returns every item with is_available = true.
	ListAvailableItems(ctx context.Context) ([]models.MenuItem, error)
}
