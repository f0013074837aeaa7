package main

import (
	"log"
	"os"

	"github.com/edupay/edupay-api/internal/application/service"
	"github.com/edupay/edupay-api/internal/config"
	"github.com/edupay/edupay-api/internal/docgen"
	"github.com/edupay/edupay-api/internal/export"
	"github.com/edupay/edupay-api/internal/infrastructure/database"
	"github.com/edupay/edupay-api/internal/infrastructure/repository"
	"github.com/edupay/edupay-api/internal/infrastructure/storage"
	"github.com/edupay/edupay-api/internal/presentation/http/handler"
	"github.com/edupay/edupay-api/internal/presentation/http/routes"
	"github.com/edupay/edupay-api/pkg/email"
	"github.com/edupay/edupay-api/pkg/printer"
	"github.com/gin-gonic/gin"
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

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	invoiceRepo := repository.NewInvoiceRepository(db)
	itemRepo := repository.NewInvoiceItemRepository(db)
	brandingRepo := repository.NewBrandingRepository(db)
	schoolRepo := repository.NewSchoolRepository(db)
	artifactRepo := repository.NewArtifactRepository(db)

	// Initialize object storage and the generation pipeline
	store, err := storage.NewS3Store(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	pipeline := docgen.NewPipeline(store)

	// Initialize the share mailer; sharing stays disabled without SMTP config
	var mailer export.Mailer
	if cfg.Share.SMTPHost != "" {
		mailer = email.NewEmailService(email.EmailConfig{
			SMTPHost:     cfg.Share.SMTPHost,
			SMTPPort:     cfg.Share.SMTPPort,
			SMTPUsername: cfg.Share.SMTPUsername,
			SMTPPassword: cfg.Share.SMTPPassword,
			FromName:     cfg.Share.FromName,
			FromEmail:    cfg.Share.FromEmail,
		})
	} else {
		log.Printf("Warning: SMTP not configured, document sharing disabled")
	}
	exporter := export.NewAdapter(mailer, cfg.Storage.DownloadDir)

	// Initialize thermal printer
	thermalPrinter, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter, _ = printer.New(printer.Config{Type: "none"})
	}

	// Initialize services
	invoiceService := service.NewInvoiceService(invoiceRepo, itemRepo)
	documentService := service.NewDocumentService(pipeline, invoiceRepo, itemRepo, brandingRepo, schoolRepo, artifactRepo, exporter)
	brandingService := service.NewBrandingService(brandingRepo)
	receiptService := service.NewReceiptService(thermalPrinter, invoiceRepo, itemRepo, brandingRepo, schoolRepo, cfg.Printer.Type)
	exportService := service.NewRegisterExportService(invoiceRepo, itemRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Invoice:  handler.NewInvoiceHandler(invoiceService),
		Document: handler.NewDocumentHandler(documentService),
		Branding: handler.NewBrandingHandler(brandingService),
		Receipt:  handler.NewReceiptHandler(receiptService, exportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:        cfg,
		SchoolRepo: schoolRepo,
	})

	// Get port from environment or use default
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
