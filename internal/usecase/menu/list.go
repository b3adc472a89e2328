package menu

import (
	"context"
	"errors"
	"log/slog"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/cache"
	domain "github.com/saiichandraa424-cpu/restaurant-reservations/internal/domain/menu"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/images"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/lib/logger/sl"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/models"
)

const cacheKey = "menu:v1"

// ======================================================
// VIEW
// ======================================================

type CategoryView struct {
	models.MenuCategory
	Items []models.MenuItem `json:"items"`
}

type MenuView struct {
	Categories []CategoryView `json:"categories"`
}

// ======================================================
// USE CASE
// ======================================================

type ListMenu struct {
	log    *slog.Logger
	repo   domain.Repository
	cache  *cache.MenuCache
	images *images.Presigner
}

func NewListMenu(
	log *slog.Logger,
	repo domain.Repository,
	menuCache *cache.MenuCache,
	presigner *images.Presigner,
) *ListMenu {
	return &ListMenu{
		log:    log,
		repo:   repo,
		cache:  menuCache,
		images: presigner,
	}
}

func (uc *ListMenu) Execute(ctx context.Context) (*MenuView, error) {

	var cached MenuView
	if err := uc.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		uc.log.Warn("menu cache read failed", sl.Err(err))
	}

	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	items, err := uc.repo.ListAvailableItems(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]models.MenuItem, len(categories))
	for _, item := range items {
		item.ImageURL = uc.images.ResolveURL(ctx, item.ImageURL)
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	view := &MenuView{Categories: make([]CategoryView, 0, len(categories))}
	for _, cat := range categories {
		catItems := byCategory[cat.ID]
		if catItems == nil {
			catItems = []models.MenuItem{}
		}
		view.Categories = append(view.Categories, CategoryView{
			MenuCategory: cat,
			Items:        catItems,
		})
	}

	if err := uc.cache.Set(ctx, cacheKey, view); err != nil {
		uc.log.Warn("menu cache write failed", sl.Err(err))
	}

	return view, nil
}
