package main

import (
	"log"

	"github.com/Himon-SYNCRAFT/taskplus-api/internal/config"
	"github.com/Himon-SYNCRAFT/taskplus-api/internal/database"
	"github.com/Himon-SYNCRAFT/taskplus-api/internal/handlers"
	"github.com/Himon-SYNCRAFT/taskplus-api/internal/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	zapLogger := logger.New(cfg.LogFile)
	defer zapLogger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		zapLogger.Sugar().Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		zapLogger.Sugar().Fatalf("Failed to run migrations: %v", err)
	}

	r := handlers.NewRouter(db, zapLogger)

	zapLogger.Sugar().Infof("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		zapLogger.Sugar().Fatalf("Failed to start server: %v", err)
	}
}
