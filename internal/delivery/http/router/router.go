package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"esignatures-go/internal/config"
	"esignatures-go/internal/delivery/http/handler"
	"esignatures-go/internal/infrastructure/metrics"
)

type Router struct {
	app           *fiber.App
	config        *config.Config
	esignHandler  *handler.EsignHandler
	healthHandler *handler.HealthHandler
	logHandler    *handler.LogHandler
	recorder      *metrics.Recorder
}

func NewRouter(
	cfg *config.Config,
	esignHandler *handler.EsignHandler,
	healthHandler *handler.HealthHandler,
	logHandler *handler.LogHandler,
	recorder *metrics.Recorder,
) *Router {
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: customErrorHandler,
	})

	return &Router{
		app:           app,
		config:        cfg,
		esignHandler:  esignHandler,
		healthHandler: healthHandler,
		logHandler:    logHandler,
		recorder:      recorder,
	}
}

func (r *Router) Setup() *fiber.App {
	// Middleware
	r.app.Use(recover.New())
	r.app.Use(requestid.New())
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	if r.config.IsDevelopment() {
		r.app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	r.app.Get("/health", r.healthHandler.Health)

	if r.recorder != nil {
		r.app.Get(r.config.Metrics.Path, adaptor.HTTPHandler(r.recorder.Handler()))
	}

	// API v1 routes
	api := r.app.Group("/api/v1")
	{
		templates := api.Group("/templates")
		{
			templates.Get("", r.esignHandler.ListTemplates)
			templates.Get("/:id", r.esignHandler.QueryTemplate)
		}

		contracts := api.Group("/contracts")
		{
			contracts.Post("", r.esignHandler.SendContract)
			contracts.Get("/:id", r.esignHandler.QueryContract)
		}

		logs := api.Group("/logs")
		{
			logs.Get("", r.logHandler.GetLogs)
			logs.Get("/search", r.logHandler.SearchLogs)
		}
	}

	return r.app
}

func (r *Router) GetApp() *fiber.App {
	return r.app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
		"error": fiber.Map{
			"code":    code,
			"message": err.Error(),
		},
	})
}
