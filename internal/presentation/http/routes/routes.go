package routes

import (
	"github.com/edupay/edupay-api/internal/config"
	domainRepo "github.com/edupay/edupay-api/internal/domain/repository"
	"github.com/edupay/edupay-api/internal/presentation/http/handler"
	"github.com/edupay/edupay-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Invoice  *handler.InvoiceHandler
	Document *handler.DocumentHandler
	Branding *handler.BrandingHandler
	Receipt  *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg        *config.Config
	SchoolRepo domainRepo.SchoolRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Every API route is school-scoped
		v1.Use(middleware.SchoolMiddleware(deps.SchoolRepo))

		// Per-school rate limiter. Falls back to defaults when the rate limit
		// environment variables are unset or zero.
		limiterCfg := middleware.DefaultRateLimiterConfig()
		if deps.Cfg.RateLimit.Requests > 0 && deps.Cfg.RateLimit.Duration > 0 {
			limiterCfg.RequestsPerSecond = float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration)
			limiterCfg.BurstSize = deps.Cfg.RateLimit.Requests
		}
		rateLimiter := middleware.NewSchoolRateLimiter(limiterCfg)
		v1.Use(rateLimiter.Middleware())

		scoped := v1.Group("")
		scoped.Use(middleware.RequireSchool())

		registerInvoiceRoutes(scoped, h)
		registerArtifactRoutes(scoped, h)
		registerBrandingRoutes(scoped, h)
		registerPrinterRoutes(scoped, h)
	}

	return router
}

func registerInvoiceRoutes(g *gin.RouterGroup, h *Handlers) {
	invoices := g.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.GET("/export", h.Receipt.ExportRegister)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.GET("/:id/totals", h.Invoice.GetTotals)
		invoices.POST("/:id/preview", h.Document.Preview)
		invoices.POST("/:id/documents", h.Document.Generate)
		invoices.GET("/:id/artifacts", h.Document.ListInvoiceArtifacts)
		invoices.POST("/:id/receipt", h.Receipt.PrintReceipt)
	}
}

func registerArtifactRoutes(g *gin.RouterGroup, h *Handlers) {
	artifacts := g.Group("/artifacts")
	{
		artifacts.GET("", h.Document.ListArtifacts)
		artifacts.POST("/:id/share", h.Document.Share)
		artifacts.POST("/:id/download", h.Document.Download)
	}
}

func registerBrandingRoutes(g *gin.RouterGroup, h *Handlers) {
	branding := g.Group("/branding")
	{
		branding.GET("", h.Branding.Get)
		branding.PUT("", h.Branding.Update)
	}
}

func registerPrinterRoutes(g *gin.RouterGroup, h *Handlers) {
	printer := g.Group("/printer")
	{
		printer.GET("/status", h.Receipt.Status)
		printer.POST("/test", h.Receipt.TestPrint)
	}
}
