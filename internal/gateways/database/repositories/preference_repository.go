package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/gateways/database/models"
)

type preferenceRepository struct {
	BaseRepository
}

var _ benefits.PreferenceRepository = (*preferenceRepository)(nil)

func NewPreferenceRepository(db *bun.DB, timeout time.Duration) *preferenceRepository {
	return &preferenceRepository{BaseRepository: NewBaseRepository(db, timeout)}
}

func (r *preferenceRepository) Get(ctx context.Context, userCardID, benefitID uuid.UUID) (*benefits.Preference, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	row := new(models.Preference)
	err := r.db.NewSelect().
		Model(row).
		Where("ubp.user_card_id = ? AND ubp.benefit_id = ?", userCardID, benefitID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.HandleError("get", "preference", benefitID, err)
	}
	return row.ToDomain(), nil
}

func (r *preferenceRepository) ListByUserCards(ctx context.Context, userCardIDs []uuid.UUID) ([]*benefits.Preference, error) {
	if len(userCardIDs) == 0 {
		return nil, nil
	}
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var rows []*models.Preference
	err := r.db.NewSelect().
		Model(&rows).
		Where("ubp.user_card_id IN (?)", bun.In(userCardIDs)).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "preference", userCardIDs, err)
	}

	out := make([]*benefits.Preference, len(rows))
	for i, row := range rows {
		out[i] = row.ToDomain()
	}
	return out, nil
}

// Upsert creates the row with defaults for unset fields, or updates only the
// fields present in update.
func (r *preferenceRepository) Upsert(ctx context.Context, userCardID, benefitID uuid.UUID, update benefits.PreferenceUpdate) (*benefits.Preference, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	row := &models.Preference{
		UserCardID: userCardID,
		BenefitID:  benefitID,
		UpdatedAt:  time.Now(),
	}
	q := r.db.NewInsert().
		Model(row).
		On("CONFLICT (user_card_id, benefit_id) DO UPDATE").
		Set("updated_at = EXCLUDED.updated_at")
	if update.AutoRedeem != nil {
		row.AutoRedeem = *update.AutoRedeem
		q = q.Set("auto_redeem = EXCLUDED.auto_redeem")
	}
	if update.Hidden != nil {
		row.Hidden = *update.Hidden
		q = q.Set("hidden = EXCLUDED.hidden")
	}

	if _, err := q.Returning("*").Exec(ctx); err != nil {
		return nil, r.HandleError("upsert", "preference", benefitID, err)
	}
	return row.ToDomain(), nil
}

func (r *preferenceRepository) MarkAutoRedeemed(ctx context.Context, userCardID, benefitID uuid.UUID, period string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.db.NewUpdate().
		Model((*models.Preference)(nil)).
		Set("auto_redeemed_period = ?", period).
		Where("ubp.user_card_id = ? AND ubp.benefit_id = ?", userCardID, benefitID).
		Exec(ctx)
	if err != nil {
		return r.HandleError("update", "preference", benefitID, err)
	}
	return nil
}
