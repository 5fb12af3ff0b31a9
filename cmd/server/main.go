package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/workfree/pocket-lawyer/internal/config"
	"github.com/workfree/pocket-lawyer/internal/handlers"
	"github.com/workfree/pocket-lawyer/internal/middleware"
	"github.com/workfree/pocket-lawyer/internal/services"
	"github.com/workfree/pocket-lawyer/internal/store"
	"github.com/workfree/pocket-lawyer/internal/types"
	"github.com/workfree/pocket-lawyer/internal/utils"

	_ "github.com/workfree/pocket-lawyer/docs/api" // Swagger docs
)

// @title Pocket Lawyer API
// @version 1.0.0
// @description Legal information chatbot, knowledge base, and consultation booking service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/workfree/pocket-lawyer

// @license.name MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "insecure-dev-secret"
		log.Println("JWT_SECRET not set, using an insecure development secret")
	}

	// Build the in-memory store with embedded seed content
	dataStore, err := store.New()
	if err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("pocket-lawyer")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	advisor := services.NewKeywordAdvisor()
	chatHandler := &handlers.ChatHandler{Store: dataStore, Advisor: advisor, Cfg: cfg}
	knowledgeHandler := &handlers.KnowledgeHandler{Store: dataStore}
	consultationHandler := &handlers.ConsultationHandler{Store: dataStore}
	documentHandler := &handlers.DocumentHandler{Store: dataStore}
	researchHandler := &handlers.ResearchHandler{Store: dataStore}
	authHandler := &handlers.AuthHandler{Store: dataStore, Cfg: cfg}
	feedbackHandler := &handlers.FeedbackHandler{Store: dataStore, Cfg: cfg}
	healthHandler := &handlers.HealthHandler{Store: dataStore}

	// Health
	api.Get("/health", healthHandler.Health)

	// Auth
	api.Post("/auth/signup", authHandler.Signup)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/auth/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	// Chat (auth is optional: anonymous chat is allowed)
	aiLimiter := middleware.NewLimiterStore(cfg.AIRatePerMinute, cfg.AIRateBurst, 5*time.Minute)
	chat := api.Group("/chat", middleware.AuthOptional(cfg.JWTSecret))
	chat.Get("/messages", chatHandler.GetMessages)
	chat.Post("/messages", chatHandler.CreateMessage)
	chat.Post("/ai-response", middleware.RateLimit(aiLimiter), chatHandler.AIResponse)

	// Knowledge base
	api.Get("/knowledge", knowledgeHandler.List)
	api.Get("/knowledge/:id", knowledgeHandler.Get)
	api.Post("/knowledge", knowledgeHandler.Create)
	api.Put("/knowledge/:id", knowledgeHandler.Update)
	api.Delete("/knowledge/:id", knowledgeHandler.Delete)

	// Consultation bookings (no delete)
	api.Get("/consultations", consultationHandler.List)
	api.Get("/consultations/:id", consultationHandler.Get)
	api.Post("/consultations", consultationHandler.Create)
	api.Put("/consultations/:id", consultationHandler.Update)

	// Document analysis
	api.Get("/documents", documentHandler.List)
	api.Post("/documents/analyze", documentHandler.Analyze)

	// Research collections (read-only)
	api.Get("/cases", researchHandler.Cases)
	api.Get("/templates", researchHandler.Templates)
	api.Get("/templates/:id", researchHandler.Template)
	api.Get("/state-guides", researchHandler.StateGuides)

	// Feedback
	api.Get("/feedback", feedbackHandler.List)
	api.Post("/feedback", feedbackHandler.Create)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "Resource not found")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		aiLimiter.Stop()
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally. Internal detail is logged,
// never returned to the client.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	switch e := err.(type) {
	case *fiber.Error:
		code = e.Code
		message = e.Message
	case *types.APIError:
		code = e.Code
		message = e.Message
	default:
		log.Printf("unhandled error on %s: %v", c.OriginalURL(), err)
	}

	return utils.ErrorResponse(c, code, message)
}
