package main

import (
	"log"

	"github.com/Himon-SYNCRAFT/taskplus-api/internal/config"
	"github.com/Himon-SYNCRAFT/taskplus-api/internal/database"
)

// Seeds an empty database with the development fixture set.
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Database seeded")
}
