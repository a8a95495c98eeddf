package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "phonecat/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"phonecat/internal/auth"
	"phonecat/internal/cache"
	"phonecat/internal/config"
	"phonecat/internal/db"
	"phonecat/internal/handler"
	"phonecat/internal/model"
	"phonecat/internal/repository"
	"phonecat/internal/router"
	"phonecat/internal/service"
)

// @title Phone Catalog API
// @version 1.0
// @description Phone catalog API with manufacturers, carriers, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Manufacturer{},
		&model.Carrier{},
		&model.Phone{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	carrierRepo := repository.NewCarrierRepository(gormDB)
	manufacturerRepo := repository.NewManufacturerRepository(gormDB)
	phoneRepo := repository.NewPhoneRepository(gormDB)

	// Initialize auth components
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, tokens)
	userService := service.NewUserService(userRepo, carrierRepo, hasher)
	carrierService := service.NewCarrierService(carrierRepo, cacheClient)
	manufacturerService := service.NewManufacturerService(manufacturerRepo, cacheClient)
	phoneService := service.NewPhoneService(phoneRepo, carrierRepo, cacheClient)
	seedService := service.NewSeedService(phoneRepo, carrierRepo, manufacturerRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	carrierHandler := handler.NewCarrierHandler(carrierService)
	manufacturerHandler := handler.NewManufacturerHandler(manufacturerService)
	phoneHandler := handler.NewPhoneHandler(phoneService)
	seedHandler := handler.NewSeedHandler(seedService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokens,
		userRepo,
		authHandler,
		userHandler,
		carrierHandler,
		manufacturerHandler,
		phoneHandler,
		seedHandler,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := cacheClient.Close(); err != nil {
		log.Printf("cache close: %v", err)
	}
	if err := db.Close(gormDB); err != nil {
		log.Printf("database close: %v", err)
	}
}
