package database

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cardwise/perktrack/internal/gateways/database/models"
	"github.com/cardwise/perktrack/internal/logger"
)

const schemaVersion = 2 // bump when schema/migrations change

type table struct {
	model       any
	foreignKeys []string
}

var tables = []table{
	{model: (*models.AppMeta)(nil)},
	{model: (*models.Card)(nil)},
	{
		model:       (*models.Benefit)(nil),
		foreignKeys: []string{`("card_id") REFERENCES "cards" ("id") ON DELETE CASCADE`},
	},
	{
		model:       (*models.UserCard)(nil),
		foreignKeys: []string{`("card_id") REFERENCES "cards" ("id") ON DELETE RESTRICT`},
	},
	{
		model: (*models.Redemption)(nil),
		foreignKeys: []string{
			`("user_card_id") REFERENCES "user_cards" ("id") ON DELETE CASCADE`,
			`("benefit_id") REFERENCES "benefits" ("id") ON DELETE CASCADE`,
		},
	},
	{
		model: (*models.Preference)(nil),
		foreignKeys: []string{
			`("user_card_id") REFERENCES "user_cards" ("id") ON DELETE CASCADE`,
			`("benefit_id") REFERENCES "benefits" ("id") ON DELETE CASCADE`,
		},
	},
}

var constraints = []struct {
	name, table, check string
}{
	{"benefits_value_non_negative", "benefits", "value >= 0"},
	{"benefits_schedule_known", "benefits",
		"schedule IN ('calendar_year', 'card_year', 'monthly', 'quarterly', 'biannual', 'one_time')"},
	{"benefit_redemptions_amount_positive", "benefit_redemptions", "amount_redeemed > 0"},
	{"benefit_redemptions_source_known", "benefit_redemptions", "source IN ('manual', 'auto')"},
	{"benefit_redemptions_month_range", "benefit_redemptions", "period_month IS NULL OR period_month BETWEEN 1 AND 12"},
	{"benefit_redemptions_quarter_range", "benefit_redemptions", "period_quarter IS NULL OR period_quarter BETWEEN 1 AND 4"},
	{"benefit_redemptions_half_range", "benefit_redemptions", "period_half IS NULL OR period_half BETWEEN 1 AND 2"},
}

// Columns added after a table first shipped. CREATE TABLE IF NOT EXISTS
// leaves existing tables untouched, so these are applied separately.
var columns = []struct {
	table, name, def string
}{
	{"user_benefit_preferences", "auto_redeemed_period", "varchar(16)"},
}

var indexes = []string{
	// One ledger row per (user card, benefit, period). NULL sub-fields are
	// folded to 0 so they compare equal.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_benefit_redemptions_period ON benefit_redemptions (
		user_card_id, benefit_id, period_year,
		COALESCE(period_month, 0), COALESCE(period_quarter, 0), COALESCE(period_half, 0));`,
	"CREATE INDEX IF NOT EXISTS idx_benefit_redemptions_user_card ON benefit_redemptions(user_card_id);",
	"CREATE INDEX IF NOT EXISTS idx_benefit_redemptions_history ON benefit_redemptions(user_card_id, benefit_id, redeemed_at DESC);",
	"CREATE INDEX IF NOT EXISTS idx_benefits_card_id ON benefits(card_id, sort_order);",
	"CREATE INDEX IF NOT EXISTS idx_cards_name ON cards(name);",
	"CREATE INDEX IF NOT EXISTS idx_user_cards_user_id ON user_cards(user_id, created_at);",
	"CREATE INDEX IF NOT EXISTS idx_user_benefit_preferences_user_card ON user_benefit_preferences(user_card_id);",
}

// InitializeSchema creates all tables, constraints and indexes. It is safe to
// run repeatedly; unless force is set it returns early when the recorded
// schema version is current.
func (db *DB) InitializeSchema(ctx context.Context, force bool) error {
	if !force {
		if v, err := db.schemaVersion(ctx); err == nil && v == schemaVersion {
			logger.LogSystem("Schema up to date, skipping initialization",
				slog.Int("schema_version", schemaVersion))
			return nil
		}
	}

	for _, t := range tables {
		query := db.bunDB.NewCreateTable().
			Model(t.model).
			IfNotExists()
		for _, fk := range t.foreignKeys {
			query = query.ForeignKey(fk)
		}
		if _, err := query.Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, c := range columns {
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s;", c.table, c.name, c.def)
		if _, err := db.ExecWithLog(ctx, stmt); err != nil {
			return fmt.Errorf("failed to add column %s.%s: %w", c.table, c.name, err)
		}
	}

	for _, c := range constraints {
		stmt := fmt.Sprintf(`
			DO $$
			BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
					ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s);
				END IF;
			END $$;`, c.name, c.table, c.name, c.check)
		if _, err := db.ExecWithLog(ctx, stmt); err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", c.name, err)
		}
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := db.setSchemaVersion(ctx, schemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	logger.LogSystem("Schema initialized", slog.Int("schema_version", schemaVersion))
	return nil
}

func (db *DB) schemaVersion(ctx context.Context) (int, error) {
	meta := new(models.AppMeta)
	err := db.bunDB.NewSelect().
		Model(meta).
		Where("key = ?", "schema_version").
		Scan(ctx)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(meta.Value)
}

func (db *DB) setSchemaVersion(ctx context.Context, v int) error {
	_, err := db.bunDB.NewInsert().
		Model(&models.AppMeta{Key: "schema_version", Value: strconv.Itoa(v)}).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	return err
}

// ResetAppTables truncates every application table except app_meta. Used by
// local development only.
func (db *DB) ResetAppTables(ctx context.Context) error {
	names := []string{
		"user_benefit_preferences",
		"benefit_redemptions",
		"user_cards",
		"benefits",
		"cards",
	}
	stmt := "TRUNCATE TABLE " + joinIdentifiers(names) + " CASCADE;"
	if _, err := db.ExecWithLog(ctx, stmt); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	logger.LogSystem("App tables truncated", slog.Any("tables", names))
	return nil
}

func joinIdentifiers(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return strings.Join(quoted, ", ")
}
