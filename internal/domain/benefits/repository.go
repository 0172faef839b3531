package benefits

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cardwise/perktrack/internal/domain/schedule"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

// CatalogRepository reads card and benefit master data. It never writes.
type CatalogRepository interface {
	ListCards(ctx context.Context) ([]*Card, error)
	// GetCard returns the card with its benefits loaded.
	GetCard(ctx context.Context, id uuid.UUID) (*Card, error)
	GetCardsByIDs(ctx context.Context, ids []uuid.UUID) ([]*Card, error)
}

// UserCardRepository scopes every lookup to the owning user. A row owned by
// someone else is reported as not found.
type UserCardRepository interface {
	Create(ctx context.Context, userCard *UserCard) error
	Get(ctx context.Context, userID string, id uuid.UUID) (*UserCard, error)
	ListByUser(ctx context.Context, userID string) ([]*UserCard, error)
	Update(ctx context.Context, userCard *UserCard) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// LedgerTx is the set of ledger writes available inside one transaction.
type LedgerTx interface {
	// LockRedemption returns the period row locked for the rest of the
	// transaction, or nil when the period has no row yet.
	LockRedemption(ctx context.Context, userCardID, benefitID uuid.UUID, key schedule.Key) (*Redemption, error)
	// InsertRedemption reports false when another transaction created the
	// period row first.
	InsertRedemption(ctx context.Context, redemption *Redemption) (bool, error)
	// IncrementRedemption adds amount to the row unless the total would pass
	// limit, in which case it reports false and changes nothing.
	IncrementRedemption(ctx context.Context, id uuid.UUID, amount, limit decimal.Decimal) (bool, error)
	DeleteRedemption(ctx context.Context, userCardID, benefitID uuid.UUID, key schedule.Key) (int64, error)
}

type LedgerRepository interface {
	// InTx runs fn in a single transaction. Any error rolls back every write.
	InTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
	ListByUserCards(ctx context.Context, userCardIDs []uuid.UUID) ([]*Redemption, error)
	ListByBenefit(ctx context.Context, userCardID, benefitID uuid.UUID) ([]*Redemption, error)
}

type PreferenceRepository interface {
	// Get returns nil when no preference row exists.
	Get(ctx context.Context, userCardID, benefitID uuid.UUID) (*Preference, error)
	ListByUserCards(ctx context.Context, userCardIDs []uuid.UUID) ([]*Preference, error)
	Upsert(ctx context.Context, userCardID, benefitID uuid.UUID, update PreferenceUpdate) (*Preference, error)
	// MarkAutoRedeemed records the period label auto-redeem last applied to.
	MarkAutoRedeemed(ctx context.Context, userCardID, benefitID uuid.UUID, period string) error
}

// Repositories groups the stores the service depends on.
type Repositories struct {
	Catalog     CatalogRepository
	UserCards   UserCardRepository
	Ledger      LedgerRepository
	Preferences PreferenceRepository
}
