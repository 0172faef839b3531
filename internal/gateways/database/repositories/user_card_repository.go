package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/gateways/database/models"
)

type userCardRepository struct {
	BaseRepository
}

var _ benefits.UserCardRepository = (*userCardRepository)(nil)

func NewUserCardRepository(db *bun.DB, timeout time.Duration) *userCardRepository {
	return &userCardRepository{BaseRepository: NewBaseRepository(db, timeout)}
}

func (r *userCardRepository) Create(ctx context.Context, userCard *benefits.UserCard) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.db.NewInsert().
		Model(models.UserCardFromDomain(userCard)).
		Exec(ctx)
	return r.HandleError("create", "user card", userCard.ID, err)
}

func (r *userCardRepository) Get(ctx context.Context, userID string, id uuid.UUID) (*benefits.UserCard, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	row := new(models.UserCard)
	err := r.db.NewSelect().
		Model(row).
		Where("uc.id = ? AND uc.user_id = ?", id, userID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "user card", id, err)
	}
	return row.ToDomain(), nil
}

func (r *userCardRepository) ListByUser(ctx context.Context, userID string) ([]*benefits.UserCard, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var rows []*models.UserCard
	err := r.db.NewSelect().
		Model(&rows).
		Where("uc.user_id = ?", userID).
		Order("uc.created_at ASC", "uc.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "user card", userID, err)
	}

	out := make([]*benefits.UserCard, len(rows))
	for i, row := range rows {
		out[i] = row.ToDomain()
	}
	return out, nil
}

func (r *userCardRepository) Update(ctx context.Context, userCard *benefits.UserCard) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	res, err := r.db.NewUpdate().
		Model((*models.UserCard)(nil)).
		Set("card_open_date = ?", userCard.CardOpenDate).
		Set("nickname = ?", userCard.Nickname).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND user_id = ?", userCard.ID, userCard.UserID).
		Exec(ctx)
	if err != nil {
		return r.HandleError("update", "user card", userCard.ID, err)
	}
	if rowsAffected(res) == 0 {
		return &benefits.NotFoundError{Entity: "user card", ID: userCard.ID}
	}
	return nil
}

// Delete removes the card; ledger rows and preferences cascade.
func (r *userCardRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	res, err := r.db.NewDelete().
		Model((*models.UserCard)(nil)).
		Where("id = ? AND user_id = ?", id, userID).
		Exec(ctx)
	if err != nil {
		return r.HandleError("delete", "user card", id, err)
	}
	if rowsAffected(res) == 0 {
		return &benefits.NotFoundError{Entity: "user card", ID: id}
	}
	return nil
}
