package menu

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/cache"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/config"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/images"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/models"
)

type fakeMenuRepo struct {
	categories []models.MenuCategory
	items      []models.MenuItem
	err        error
}

func (f *fakeMenuRepo) ListCategories(ctx context.Context) ([]models.MenuCategory, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeMenuRepo) ListAvailableItems(ctx context.Context) ([]models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func newListMenuUC(repo *fakeMenuRepo) *ListMenu {
	cfg := &config.Config{} // cache and presigning disabled
	return NewListMenu(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		repo,
		cache.NewMenuCache(cfg),
		images.NewPresigner(cfg),
	)
}

func TestListMenu_GroupsItemsByCategory(t *testing.T) {
	repo := &fakeMenuRepo{
		categories: []models.MenuCategory{
			{ID: "cat-starters", Name: "Starters", DisplayOrder: 1},
			{ID: "cat-mains", Name: "Mains", DisplayOrder: 2},
			{ID: "cat-desserts", Name: "Desserts", DisplayOrder: 3},
		},
		items: []models.MenuItem{
			{ID: "i1", CategoryID: "cat-mains", Name: "Beef Wellington", Price: 54},
			{ID: "i2", CategoryID: "cat-starters", Name: "Tuna Tartare", Price: 22},
			{ID: "i3", CategoryID: "cat-mains", Name: "Lobster Risotto", Price: 48},
		},
	}

	view, err := newListMenuUC(repo).Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, view.Categories, 3)
	assert.Equal(t, "Starters", view.Categories[0].Name)
	assert.Len(t, view.Categories[0].Items, 1)
	assert.Len(t, view.Categories[1].Items, 2)
	assert.Empty(t, view.Categories[2].Items, "category with no available items stays empty")

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"items":[]`, "empty category serializes as an empty list")
	assert.NotContains(t, string(raw), `"items":null`)
}

func TestListMenu_ReadFailure(t *testing.T) {
	repo := &fakeMenuRepo{err: errors.New("connection refused")}

	view, err := newListMenuUC(repo).Execute(context.Background())
	require.Error(t, err)
	assert.Nil(t, view)
}

func TestListMenu_PassesImageURLsThroughWhenUnconfigured(t *testing.T) {
	repo := &fakeMenuRepo{
		categories: []models.MenuCategory{{ID: "c1", Name: "Mains"}},
		items: []models.MenuItem{
			{ID: "i1", CategoryID: "c1", Name: "Duck", ImageURL: "https://cdn.example.com/duck.jpg"},
			{ID: "i2", CategoryID: "c1", Name: "Sole", ImageURL: "menu/sole.jpg"},
		},
	}

	view, err := newListMenuUC(repo).Execute(context.Background())
	require.NoError(t, err)

	items := view.Categories[0].Items
	assert.Equal(t, "https://cdn.example.com/duck.jpg", items[0].ImageURL)
	assert.Equal(t, "menu/sole.jpg", items[1].ImageURL, "object key untouched without a bucket")
}
