package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/config"
	domain "github.com/saiichandraa424-cpu/restaurant-reservations/internal/domain/reservation"
)

// SiteWebHandler serves the public pages. Layout and styling live in the
// templates; handlers only pass page data.
type SiteWebHandler struct {
	cfg *config.Config
}

func NewSiteWebHandler(cfg *config.Config) *SiteWebHandler {
	return &SiteWebHandler{cfg: cfg}
}

func (h *SiteWebHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"RestaurantName": h.cfg.RestaurantName,
	})
}

func (h *SiteWebHandler) Menu(c *gin.Context) {
	c.HTML(http.StatusOK, "menu.html", gin.H{
		"RestaurantName": h.cfg.RestaurantName,
	})
}

func (h *SiteWebHandler) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"RestaurantName": h.cfg.RestaurantName,
	})
}

func (h *SiteWebHandler) Reservations(c *gin.Context) {
	c.HTML(http.StatusOK, "reservations.html", gin.H{
		"RestaurantName": h.cfg.RestaurantName,
		"PartySizes":     partySizes(),
		"ServiceTimes":   domain.ServiceTimes,
		"WindowDays":     domain.BookingWindowDays,
	})
}

func (h *SiteWebHandler) Admin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"RestaurantName": h.cfg.RestaurantName,
		"Statuses":       domain.ValidStatuses(),
	})
}

// Manage is the second admin surface: per-reservation note editing on top of
// the same workflow the dashboard uses.
func (h *SiteWebHandler) Manage(c *gin.Context) {
	c.HTML(http.StatusOK, "manage.html", gin.H{
		"RestaurantName": h.cfg.RestaurantName,
	})
}

func partySizes() []int {
	sizes := make([]int, 0, domain.MaxPartySize)
	for n := domain.MinPartySize; n <= domain.MaxPartySize; n++ {
		sizes = append(sizes, n)
	}
	return sizes
}
