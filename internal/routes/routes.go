package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/cache"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/config"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/handlers"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/images"
	infraRepo "github.com/saiichandraa424-cpu/restaurant-reservations/internal/infra/repository"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/mailer"
	ucMenu "github.com/saiichandraa424-cpu/restaurant-reservations/internal/usecase/menu"
	ucReservation "github.com/saiichandraa424-cpu/restaurant-reservations/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *slog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)
	menuRepo := infraRepo.NewMenuGormRepository(db)

	mailClient := mailer.New(cfg)
	notifier := mailer.NewNotifier(log, mailClient, mailer.TemplatesFromConfig(cfg), cfg.RestaurantName)
	mailDispatcher := mailer.NewDispatcher(log)

	menuCache := cache.NewMenuCache(cfg)
	imagePresigner := images.NewPresigner(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		mailDispatcher,
		notifier,
	)

	listReservationsUC := ucReservation.NewListReservations(
		reservationRepo,
	)

	updateStatusUC := ucReservation.NewUpdateStatus(
		log,
		reservationRepo,
		notifier,
	)

	updateNotesUC := ucReservation.NewUpdateNotes(
		log,
		reservationRepo,
		notifier,
	)

	listMenuUC := ucMenu.NewListMenu(
		log,
		menuRepo,
		menuCache,
		imagePresigner,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	reservationHandler := handlers.NewReservationHandler(createReservationUC)
	adminHandler := handlers.NewAdminReservationHandler(
		listReservationsUC,
		updateStatusUC,
		updateNotesUC,
	)
	menuHandler := handlers.NewMenuHandler(listMenuUC)
	contactHandler := handlers.NewContactHandler(mailDispatcher, notifier)
	siteHandler := handlers.NewSiteWebHandler(cfg)

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", siteHandler.Home)
	r.GET("/menu", siteHandler.Menu)
	r.GET("/contact", siteHandler.Contact)
	r.GET("/reservations", siteHandler.Reservations)
	r.GET("/admin", siteHandler.Admin)
	r.GET("/admin/manage", siteHandler.Manage)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/menu", menuHandler.List)
		api.POST("/reservations", reservationHandler.Create)
		api.POST("/contact", contactHandler.Submit)

		// ------------------------------
		// ADMIN (unauthenticated, same as the screens it replaces)
		// ------------------------------
		admin := api.Group("/admin")
		{
			admin.GET("/reservations", adminHandler.List)
			admin.PATCH("/reservations/:id/status", adminHandler.UpdateStatus)
			admin.PATCH("/reservations/:id/notes", adminHandler.UpdateNotes)
		}
	}
}
