package main

import (
	"context"
	"log"

	"sales-assistant-bot/internal/config"
	"sales-assistant-bot/internal/repository/unitofwork"
	"sales-assistant-bot/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding product catalog...")

	created, updated, err := seedProducts(context.Background(), unitofwork.NewRepositoryFactory(db), demoCatalog)
	if err != nil {
		log.Fatalf("Error: Seeding failed: %v", err)
	}

	log.Printf("✅ Catalog seeded: %d created, %d updated", created, updated)
}
