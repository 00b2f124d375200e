// Command main seeds the database with sample posts for local development.
package main

import (
	"log"

	"coachblog/internal/config"
	"coachblog/internal/database"
	"coachblog/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Posts(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Sample posts seeded")
}
