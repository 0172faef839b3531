package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/gateways/database"
	"github.com/cardwise/perktrack/internal/storage"
)

var (
	exportUser string
	exportYear int
)

// summaryReport is the document written for export-summary.
type summaryReport struct {
	UserID      string                  `json:"user_id"`
	GeneratedAt time.Time               `json:"generated_at"`
	Annual      *benefits.AnnualSummary `json:"annual"`
	Cards       []*benefits.CardSummary `json:"cards"`
}

var exportCmd = &cobra.Command{
	Use:   "export-summary",
	Short: "Upload a user's annual benefit summary as JSON to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		user := strings.TrimSpace(exportUser)
		if user == "" {
			return fmt.Errorf("--user is required")
		}
		if exportYear == 0 {
			exportYear = time.Now().Year()
		}

		store, err := storage.NewReportStore(ctx, cfg.Spaces)
		if err != nil {
			return err
		}

		db, err := database.New(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		svc, _, err := buildService(db, nil)
		if err != nil {
			return err
		}

		annual, err := svc.AnnualSummary(ctx, user, exportYear)
		if err != nil {
			return err
		}
		cards, err := svc.ListUserCards(ctx, user)
		if err != nil {
			return err
		}

		report := &summaryReport{UserID: user, GeneratedAt: time.Now().UTC(), Annual: annual}
		for _, uc := range cards {
			cs, err := svc.CardSummary(ctx, user, uc.ID, exportYear)
			if err != nil {
				return err
			}
			if cs.TotalCount > 0 {
				report.Cards = append(report.Cards, cs)
			}
		}

		key, err := store.PutJSON(ctx, store.SummaryKey(user, exportYear), report)
		if err != nil {
			return err
		}
		slog.Info("Summary exported",
			slog.String("user_id", user),
			slog.Int("year", exportYear),
			slog.String("bucket", store.Bucket()),
			slog.String("key", key))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportUser, "user", "", "user id to export")
	exportCmd.Flags().IntVar(&exportYear, "year", 0, "calendar year (defaults to the current year)")
	rootCmd.AddCommand(exportCmd)
}
