package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	log "github.com/sirupsen/logrus"

	"github.com/CristiGvl/corecheck/internal/platform"
	"github.com/CristiGvl/corecheck/internal/sysinfo"
)

// Server represents the API server
type Server struct {
	app     *fiber.App
	service *sysinfo.Service
	version string
}

// NewServer creates a new API server for the local host
func NewServer(service *sysinfo.Service, version string) (*Server, error) {
	if service == nil {
		return nil, errors.New("api: nil service")
	}
	if err := platform.ValidateSupport(); err != nil {
		log.WithError(err).Warn("serving partial results")
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "corecheck",
		AppName:               "corecheck v" + version,
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		MaxAge:       86400, // 24 hours
	}))

	server := &Server{
		app:     app,
		service: service,
		version: version,
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	api.Get("/processor", s.getProcessor)
	api.Get("/clock", s.getClock)
	api.Get("/clock/base", s.getBaseClock)
	api.Get("/os", s.getOS)
	api.Get("/report", s.getReport)

	// Health check
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"version":   s.version,
		"platform":  platform.Describe(),
		"timestamp": time.Now().Unix(),
	})
}
