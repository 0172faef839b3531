package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/cardwise/perktrack/internal/api"
	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/gateways/database"
	"github.com/cardwise/perktrack/internal/gateways/database/repositories"
	"github.com/cardwise/perktrack/internal/telemetry"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		start := time.Now()
		db, err := database.New(ctx, cfg.DB)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()
		slog.Info("Database connected",
			slog.String("database", cfg.DB.Database),
			slog.Duration("took", time.Since(start)))

		if err := db.InitializeSchema(ctx, false); err != nil {
			return fmt.Errorf("initialize schema: %w", err)
		}

		shutdownTracing, err := telemetry.InitTracerProvider(cfg.Tracing)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := telemetry.NewMetrics(reg)

		svc, catalog, err := buildService(db, metrics)
		if err != nil {
			return err
		}
		go refreshCatalog(ctx, catalog, cfg.Engine.CatalogCacheTTL.Duration)

		app := api.NewApp(&api.Handlers{
			Service: svc,
			DB:      db,
			Version: Version,
		}, api.Options{
			Web:      cfg.Web,
			Observer: metrics,
			Metrics:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		})

		errCh := make(chan error, 1)
		go func() {
			slog.Info("Starting HTTP server", slog.String("address", cfg.Web.Addr()))
			errCh <- app.Listen(cfg.Web.Addr())
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("http server: %w", err)
		case <-ctx.Done():
		}

		slog.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", slog.String("error", err.Error()))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Error("Tracer shutdown error", slog.String("error", err.Error()))
		}
		slog.Info("Shutdown complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// buildService wires the repositories behind the benefits service.
func buildService(db *database.DB, observer benefits.Observer) (benefits.Service, *repositories.CachedCatalog, error) {
	timeout := cfg.DB.QueryTimeout.Duration
	catalog, err := repositories.NewCachedCatalog(
		repositories.NewCatalogRepository(db.BunDB(), timeout),
		cfg.Engine.CatalogCacheSize,
		cfg.Engine.CatalogCacheTTL.Duration,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog cache: %w", err)
	}

	mode, err := benefits.ParseAutoRedeemMode(cfg.Engine.AutoRedeemMode)
	if err != nil {
		return nil, nil, err
	}

	opts := []benefits.Option{benefits.WithAutoRedeemMode(mode)}
	if observer != nil {
		opts = append(opts, benefits.WithObserver(observer))
	}

	svc := benefits.NewService(benefits.Repositories{
		Catalog:     catalog,
		UserCards:   repositories.NewUserCardRepository(db.BunDB(), timeout),
		Ledger:      repositories.NewRedemptionRepository(db.BunDB(), timeout),
		Preferences: repositories.NewPreferenceRepository(db.BunDB(), timeout),
	}, opts...)
	return svc, catalog, nil
}

func refreshCatalog(ctx context.Context, catalog *repositories.CachedCatalog, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			catalog.Refresh()
		}
	}
}
