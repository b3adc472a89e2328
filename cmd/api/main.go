package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/config"
	dbpkg "github.com/saiichandraa424-cpu/restaurant-reservations/internal/db"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/middleware"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.LoadHTMLGlob("web/templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
