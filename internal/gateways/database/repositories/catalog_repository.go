package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/gateways/database/models"
)

type catalogRepository struct {
	BaseRepository
}

var _ benefits.CatalogRepository = (*catalogRepository)(nil)

func NewCatalogRepository(db *bun.DB, timeout time.Duration) *catalogRepository {
	return &catalogRepository{BaseRepository: NewBaseRepository(db, timeout)}
}

func orderBenefits(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Order("b.sort_order ASC", "b.name ASC")
}

func (r *catalogRepository) ListCards(ctx context.Context) ([]*benefits.Card, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var rows []*models.Card
	err := r.db.NewSelect().
		Model(&rows).
		Relation("Benefits", orderBenefits).
		Order("c.issuer ASC", "c.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "card", nil, err)
	}
	return toDomainCards(rows), nil
}

func (r *catalogRepository) GetCard(ctx context.Context, id uuid.UUID) (*benefits.Card, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	row := new(models.Card)
	err := r.db.NewSelect().
		Model(row).
		Relation("Benefits", orderBenefits).
		Where("c.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "card", id, err)
	}
	return row.ToDomain(), nil
}

func (r *catalogRepository) GetCardsByIDs(ctx context.Context, ids []uuid.UUID) ([]*benefits.Card, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var rows []*models.Card
	err := r.db.NewSelect().
		Model(&rows).
		Relation("Benefits", orderBenefits).
		Where("c.id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "card", ids, err)
	}
	return toDomainCards(rows), nil
}

// UpsertCards writes catalog cards and replaces their benefit lists. Benefits
// that disappear from a card are deleted along with their ledger rows.
func (r *catalogRepository) UpsertCards(ctx context.Context, cards []*benefits.Card) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}
	now := time.Now()

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, c := range cards {
			row := models.CardFromDomain(c)
			row.CreatedAt, row.UpdatedAt = now, now

			_, err := tx.NewInsert().
				Model(row).
				On("CONFLICT (id) DO UPDATE").
				Set("name = EXCLUDED.name").
				Set("issuer = EXCLUDED.issuer").
				Set("annual_fee = EXCLUDED.annual_fee").
				Set("image_url = EXCLUDED.image_url").
				Set("updated_at = EXCLUDED.updated_at").
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to upsert card %s: %w", c.ID, err)
			}

			keep := make([]uuid.UUID, 0, len(row.Benefits))
			for _, b := range row.Benefits {
				b.CreatedAt = now
				keep = append(keep, b.ID)
			}

			del := tx.NewDelete().
				Model((*models.Benefit)(nil)).
				Where("card_id = ?", c.ID)
			if len(keep) > 0 {
				del = del.Where("id NOT IN (?)", bun.In(keep))
			}
			if _, err := del.Exec(ctx); err != nil {
				return fmt.Errorf("failed to prune benefits of card %s: %w", c.ID, err)
			}

			if len(row.Benefits) == 0 {
				continue
			}
			_, err = tx.NewInsert().
				Model(&row.Benefits).
				On("CONFLICT (id) DO UPDATE").
				Set("card_id = EXCLUDED.card_id").
				Set("name = EXCLUDED.name").
				Set("description = EXCLUDED.description").
				Set("value = EXCLUDED.value").
				Set("schedule = EXCLUDED.schedule").
				Set("sort_order = EXCLUDED.sort_order").
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to upsert benefits of card %s: %w", c.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, r.HandleError("upsert", "card", nil, err)
	}
	return len(cards), nil
}

func toDomainCards(rows []*models.Card) []*benefits.Card {
	out := make([]*benefits.Card, len(rows))
	for i, row := range rows {
		out[i] = row.ToDomain()
	}
	return out
}
