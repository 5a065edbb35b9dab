package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/syedahad2205/dajaj-pos/internal/application/service"
	"github.com/syedahad2205/dajaj-pos/internal/config"
	"github.com/syedahad2205/dajaj-pos/internal/domain/entity"
	"github.com/syedahad2205/dajaj-pos/internal/domain/menu"
	"github.com/syedahad2205/dajaj-pos/internal/infrastructure/database"
	"github.com/syedahad2205/dajaj-pos/internal/infrastructure/repository"
	"github.com/syedahad2205/dajaj-pos/internal/presentation/http/handler"
	"github.com/syedahad2205/dajaj-pos/internal/presentation/http/routes"
	"github.com/syedahad2205/dajaj-pos/pkg/printer"
	"github.com/syedahad2205/dajaj-pos/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the default operator account
	if err := database.SeedDefaultOperator(db); err != nil {
		log.Printf("Warning: Failed to seed default operator: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Static menu catalog
	catalog := menu.NewCatalog()

	// Initialize repositories
	billRepo := repository.NewBillRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)

	// Initialize services
	authService := service.NewAuthService(operatorRepo, jwtManager)
	sessionService := service.NewCartSessionService(catalog)
	billService := service.NewBillService(billRepo, counterRepo, cfg.Shop.BaseURL)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, billRepo, entity.ReceiptHeader{
		ShopName: cfg.Shop.Name,
		Address:  cfg.Shop.Address,
		Phone:    cfg.Shop.Phone,
		GSTIN:    cfg.Shop.GSTIN,
	}, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Menu:    handler.NewMenuHandler(catalog),
		Session: handler.NewSessionHandler(sessionService),
		Bill:    handler.NewBillHandler(billService, sessionService),
		Printer: handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
