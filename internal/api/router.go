// Package api wires repositories, services and handlers into the HTTP
// router.
package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/weatherly/weatherly-backend-go/internal/config"
	"github.com/weatherly/weatherly-backend-go/internal/handler"
	"github.com/weatherly/weatherly-backend-go/internal/middleware"
	"github.com/weatherly/weatherly-backend-go/internal/repository"
	"github.com/weatherly/weatherly-backend-go/internal/service"
	"github.com/weatherly/weatherly-backend-go/internal/weather"
)

// SetupRouter builds the gin engine with all routes registered
func SetupRouter(cfg *config.Config, db *sql.DB, provider weather.Provider) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	favoriteRepo := repository.NewFavoriteRepository(db)
	searchRepo := repository.NewSearchRepository(db)
	tripRepo := repository.NewTripRepository(db)
	counterRepo := repository.NewCounterRepository(db)

	weatherService := service.NewWeatherService(provider, searchRepo, counterRepo)
	tripService := service.NewTripService(provider, tripRepo, counterRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo)
	dashboardService := service.NewDashboardService(searchRepo, favoriteRepo, counterRepo)
	cityService := service.NewCityService()

	weatherHandler := handler.NewWeatherHandler(weatherService)
	tripHandler := handler.NewTripHandler(tripService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	cityHandler := handler.NewCityHandler(cityService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))
	{
		api.GET("/weather", weatherHandler.Current)
		api.GET("/forecast", weatherHandler.Forecast)

		api.POST("/trips/plan", tripHandler.Plan)
		api.GET("/trips", tripHandler.History)
		api.GET("/trips/:id", tripHandler.HistoryPlan)

		api.GET("/favorites", favoriteHandler.List)
		api.POST("/favorites/toggle", favoriteHandler.Toggle)
		api.DELETE("/favorites/:city", favoriteHandler.Remove)

		api.GET("/dashboard/stats", dashboardHandler.Stats)
		api.GET("/dashboard/searches", dashboardHandler.RecentSearches)

		api.GET("/cities", cityHandler.Suggest)
	}

	return router
}
