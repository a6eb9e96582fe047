package main

import (
	"log"

	"github.com/weatherly/weatherly-backend-go/internal/api"
	"github.com/weatherly/weatherly-backend-go/internal/config"
	"github.com/weatherly/weatherly-backend-go/internal/database"
	"github.com/weatherly/weatherly-backend-go/internal/weather"
)

func main() {
	cfg := config.Load()

	if cfg.WeatherAPIKey == "" {
		log.Println("Warning: OPENWEATHER_API_KEY not set, weather lookups will fail")
	}

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	provider := weather.NewOpenWeather(cfg.WeatherAPIKey, cfg.WeatherBaseURL, cfg.WeatherTimeout)

	router := api.SetupRouter(cfg, database.GetDB(), provider)

	log.Printf("Starting Weatherly server on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
