package main

import (
	"context"
	"log"

	"phonecat/internal/cache"
	"phonecat/internal/config"
	"phonecat/internal/db"
	"phonecat/internal/model"
	"phonecat/internal/repository"
	"phonecat/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Manufacturer{},
		&model.Carrier{},
		&model.Phone{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	seedService := service.NewSeedService(
		repository.NewPhoneRepository(gormDB),
		repository.NewCarrierRepository(gormDB),
		repository.NewManufacturerRepository(gormDB),
		cacheClient,
	)

	created, err := seedService.SeedCatalog(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New phones created: %d", created)
}
