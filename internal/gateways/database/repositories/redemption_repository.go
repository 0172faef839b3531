package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/domain/schedule"
	"github.com/cardwise/perktrack/internal/gateways/database"
	"github.com/cardwise/perktrack/internal/gateways/database/models"
)

type redemptionRepository struct {
	BaseRepository
	tm *database.TransactionManager
}

var _ benefits.LedgerRepository = (*redemptionRepository)(nil)

func NewRedemptionRepository(db *bun.DB, timeout time.Duration) *redemptionRepository {
	return &redemptionRepository{
		BaseRepository: NewBaseRepository(db, timeout),
		tm:             database.NewTransactionManager(db, timeout),
	}
}

func (r *redemptionRepository) InTx(ctx context.Context, fn func(context.Context, benefits.LedgerTx) error) error {
	return r.tm.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, &ledgerTx{tx: tx, base: &r.BaseRepository})
	})
}

func (r *redemptionRepository) ListByUserCards(ctx context.Context, userCardIDs []uuid.UUID) ([]*benefits.Redemption, error) {
	if len(userCardIDs) == 0 {
		return nil, nil
	}
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var rows []*models.Redemption
	err := r.db.NewSelect().
		Model(&rows).
		Where("br.user_card_id IN (?)", bun.In(userCardIDs)).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "redemption", userCardIDs, err)
	}
	return toDomainRedemptions(rows), nil
}

func (r *redemptionRepository) ListByBenefit(ctx context.Context, userCardID, benefitID uuid.UUID) ([]*benefits.Redemption, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var rows []*models.Redemption
	err := r.db.NewSelect().
		Model(&rows).
		Where("br.user_card_id = ? AND br.benefit_id = ?", userCardID, benefitID).
		Order("br.redeemed_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "redemption", benefitID, err)
	}
	return toDomainRedemptions(rows), nil
}

func toDomainRedemptions(rows []*models.Redemption) []*benefits.Redemption {
	out := make([]*benefits.Redemption, len(rows))
	for i, row := range rows {
		out[i] = row.ToDomain()
	}
	return out
}

type ledgerTx struct {
	tx   bun.Tx
	base *BaseRepository
}

// periodCondition matches the unique index expression so NULL sub-fields
// compare equal to zero.
const periodCondition = `user_card_id = ? AND benefit_id = ? AND period_year = ?
	AND COALESCE(period_month, 0) = ?
	AND COALESCE(period_quarter, 0) = ?
	AND COALESCE(period_half, 0) = ?`

func periodArgs(userCardID, benefitID uuid.UUID, key schedule.Key) []any {
	return []any{userCardID, benefitID, key.Year, key.Month, key.Quarter, key.Half}
}

func (t *ledgerTx) LockRedemption(ctx context.Context, userCardID, benefitID uuid.UUID, key schedule.Key) (*benefits.Redemption, error) {
	row := new(models.Redemption)
	err := t.tx.NewSelect().
		Model(row).
		Where(periodCondition, periodArgs(userCardID, benefitID, key)...).
		For("UPDATE").
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, t.base.HandleError("lock", "redemption", key.String(), err)
	}
	return row.ToDomain(), nil
}

func (t *ledgerTx) InsertRedemption(ctx context.Context, redemption *benefits.Redemption) (bool, error) {
	res, err := t.tx.NewInsert().
		Model(models.RedemptionFromDomain(redemption)).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, t.base.HandleError("insert", "redemption", redemption.Period.String(), err)
	}
	return rowsAffected(res) == 1, nil
}

func (t *ledgerTx) IncrementRedemption(ctx context.Context, id uuid.UUID, amount, limit decimal.Decimal) (bool, error) {
	res, err := t.tx.NewUpdate().
		Model((*models.Redemption)(nil)).
		Set("amount_redeemed = amount_redeemed + ?::numeric", amount).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Where("amount_redeemed + ?::numeric <= ?::numeric", amount, limit).
		Exec(ctx)
	if err != nil {
		return false, t.base.HandleError("increment", "redemption", id, err)
	}
	return rowsAffected(res) == 1, nil
}

func (t *ledgerTx) DeleteRedemption(ctx context.Context, userCardID, benefitID uuid.UUID, key schedule.Key) (int64, error) {
	res, err := t.tx.NewDelete().
		Model((*models.Redemption)(nil)).
		Where(periodCondition, periodArgs(userCardID, benefitID, key)...).
		Exec(ctx)
	if err != nil {
		return 0, t.base.HandleError("delete", "redemption", key.String(), err)
	}
	return rowsAffected(res), nil
}
