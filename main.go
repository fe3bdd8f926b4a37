// @title ReadFlow API
// @version 1.0
// @description Backend server for the ReadFlow reading tracker.

// @host localhost:8080
// @BasePath /api

package main

import (
	"log"

	"readflow_backend/internal/app"
	"readflow_backend/internal/config"
	"readflow_backend/pkg/configwatcher"
	"readflow_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadConfig)

	application.Run()
}
