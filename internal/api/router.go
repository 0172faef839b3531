package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/cardwise/perktrack/internal/config"
	"github.com/cardwise/perktrack/internal/logger"
)

type Options struct {
	Web      config.WebConfig
	Observer RequestObserver
	// Metrics serves GET /metrics when set.
	Metrics http.Handler
}

// NewApp builds the fiber application with every route registered.
func NewApp(h *Handlers, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "perktrack",
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
		ReadTimeout:           opts.Web.RequestTimeout.Duration,
		WriteTimeout:          opts.Web.RequestTimeout.Duration,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(LoggingMiddleware(opts.Observer))
	app.Use(SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(opts.Web.AllowOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + userIDHeader,
	}))

	setupRoutes(app, h, opts)
	return app
}

func setupRoutes(app *fiber.App, h *Handlers, opts Options) {
	app.Get("/health", h.Health)
	if opts.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(opts.Metrics))
	}

	v1 := app.Group("/api/v1", RequestTimeout(opts.Web.RequestTimeout.Duration))

	catalog := v1.Group("/cards")
	catalog.Get("/", h.ListCatalog)
	catalog.Get("/:id", h.GetCatalogCard)

	user := v1.Group("/user", IdentityRequired())
	user.Get("/benefits/available", h.ListAvailable)
	user.Get("/summary/annual", h.AnnualSummary)

	cards := user.Group("/cards")
	cards.Get("/", h.ListUserCards)
	cards.Post("/", h.AddUserCard)
	cards.Put("/:id", h.UpdateUserCard)
	cards.Delete("/:id", h.RemoveUserCard)
	cards.Get("/:id/benefits", h.ListBenefits)
	cards.Get("/:id/summary", h.CardSummary)

	ledger := []fiber.Handler{}
	if opts.Web.LedgerRateLimit > 0 {
		ledger = append(ledger, NewRateLimiter(opts.Web.LedgerRateLimit, time.Minute).Middleware())
	}

	benefit := cards.Group("/:id/benefits/:benefit_id")
	benefit.Post("/redeem", append(ledger, h.Redeem)...)
	benefit.Post("/unredeem", append(ledger, h.Unredeem)...)
	benefit.Delete("/redeem", append(ledger, h.Unredeem)...)
	benefit.Get("/history", h.History)
	benefit.Get("/preferences", h.GetPreference)
	benefit.Put("/preferences", h.UpdatePreference)

	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("type", string(logger.TypeHTTP)))
		return SendNotFound(c, "the requested endpoint does not exist")
	})
}
