package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/gateways/database"
	"github.com/cardwise/perktrack/internal/gateways/database/repositories"
)

var (
	migrateForce   bool
	migrateReset   bool
	migrateCatalog string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables, constraints and indexes, optionally importing a card catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := database.New(ctx, cfg.DB)
		if err != nil {
			slog.Error("Failed to connect to database", slog.String("error", err.Error()))
			return err
		}
		defer db.Close()

		if err := db.InitializeSchema(ctx, migrateForce); err != nil {
			return fmt.Errorf("initialize schema: %w", err)
		}
		if migrateReset {
			if err := db.ResetAppTables(ctx); err != nil {
				return fmt.Errorf("reset tables: %w", err)
			}
		}

		if migrateCatalog == "" {
			slog.Info("Migration completed")
			return nil
		}

		f, err := os.Open(migrateCatalog)
		if err != nil {
			return err
		}
		defer f.Close()

		cards, err := benefits.DecodeCatalog(f)
		if err != nil {
			return fmt.Errorf("%s: %w", migrateCatalog, err)
		}

		start := time.Now()
		repo := repositories.NewCatalogRepository(db.BunDB(), cfg.DB.QueryTimeout.Duration)
		n, err := repo.UpsertCards(ctx, cards)
		if err != nil {
			return fmt.Errorf("import catalog: %w", err)
		}

		slog.Info("Catalog imported",
			slog.String("file", migrateCatalog),
			slog.Int("cards", n),
			slog.Duration("took", time.Since(start)))
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "re-run DDL even when the schema version is current")
	migrateCmd.Flags().BoolVar(&migrateReset, "reset", false, "truncate all application tables first")
	migrateCmd.Flags().StringVar(&migrateCatalog, "catalog", "", "JSON file of cards and benefits to upsert")
	rootCmd.AddCommand(migrateCmd)
}
