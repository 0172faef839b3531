package benefits

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=services.go -destination=mock/service.go -package=mock

type Service interface {
	ListCatalog(ctx context.Context, query string) ([]*Card, error)
	GetCatalogCard(ctx context.Context, id uuid.UUID) (*Card, error)

	AddUserCard(ctx context.Context, userID string, req NewUserCard) (*UserCard, error)
	ListUserCards(ctx context.Context, userID string) ([]*UserCardWithBenefits, error)
	UpdateUserCard(ctx context.Context, userID string, id uuid.UUID, req UserCardUpdate) (*UserCard, error)
	RemoveUserCard(ctx context.Context, userID string, id uuid.UUID) error

	ListBenefits(ctx context.Context, userID string, userCardID uuid.UUID, opts ListOptions) ([]*Availability, error)
	ListAvailable(ctx context.Context, userID string, opts ListOptions) ([]*Availability, error)

	Redeem(ctx context.Context, userID string, userCardID, benefitID uuid.UUID, amount *decimal.Decimal) (*Redemption, error)
	Unredeem(ctx context.Context, userID string, userCardID, benefitID uuid.UUID) error
	History(ctx context.Context, userID string, userCardID, benefitID uuid.UUID) ([]*Redemption, error)

	GetPreference(ctx context.Context, userID string, userCardID, benefitID uuid.UUID) (*Preference, error)
	UpdatePreference(ctx context.Context, userID string, userCardID, benefitID uuid.UUID, update PreferenceUpdate) (*Preference, error)

	CardSummary(ctx context.Context, userID string, userCardID uuid.UUID, year int) (*CardSummary, error)
	AnnualSummary(ctx context.Context, userID string, year int) (*AnnualSummary, error)
}

// AutoRedeemMode decides whether auto_redeem writes ledger rows.
type AutoRedeemMode string

const (
	// AutoRedeemEager materializes the current period's remaining value as a
	// ledger row when the flag is set and whenever the card is read.
	AutoRedeemEager AutoRedeemMode = "eager"
	// AutoRedeemOverlay never writes; aggregates count the value as redeemed.
	AutoRedeemOverlay AutoRedeemMode = "overlay"
)

func ParseAutoRedeemMode(s string) (AutoRedeemMode, error) {
	switch m := AutoRedeemMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return AutoRedeemEager, nil
	case AutoRedeemEager, AutoRedeemOverlay:
		return m, nil
	default:
		return "", fmt.Errorf("unknown auto redeem mode %q", s)
	}
}

// Observer receives ledger events, typically to export metrics.
type Observer interface {
	Redeemed(source Source, amount decimal.Decimal)
	Unredeemed(removed bool)
	Conflict(retried bool)
}

type noopObserver struct{}

func (noopObserver) Redeemed(Source, decimal.Decimal) {}
func (noopObserver) Unredeemed(bool)                  {}
func (noopObserver) Conflict(bool)                    {}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func WithAutoRedeemMode(mode AutoRedeemMode) Option {
	return func(s *service) { s.autoRedeem = mode }
}

func WithObserver(o Observer) Option {
	return func(s *service) { s.observer = o }
}

type service struct {
	catalog     CatalogRepository
	userCards   UserCardRepository
	ledger      LedgerRepository
	preferences PreferenceRepository

	now        func() time.Time
	autoRedeem AutoRedeemMode
	observer   Observer
	tracer     trace.Tracer
}

func NewService(repos Repositories, opts ...Option) *service {
	s := &service{
		catalog:     repos.Catalog,
		userCards:   repos.UserCards,
		ledger:      repos.Ledger,
		preferences: repos.Preferences,
		now:         time.Now,
		autoRedeem:  AutoRedeemEager,
		observer:    noopObserver{},
		tracer:      otel.Tracer("github.com/cardwise/perktrack/internal/domain/benefits"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "benefits."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// ownedCard loads a user card with its catalog card and benefits, enforcing
// ownership.
func (s *service) ownedCard(ctx context.Context, userID string, userCardID uuid.UUID) (*UserCard, error) {
	uc, err := s.userCards.Get(ctx, userID, userCardID)
	if err != nil {
		return nil, err
	}
	card, err := s.catalog.GetCard(ctx, uc.CardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load card %s: %w", uc.CardID, err)
	}
	uc.Card = card
	return uc, nil
}

func (s *service) benefitOf(uc *UserCard, benefitID uuid.UUID) (*Benefit, error) {
	for _, b := range uc.Card.Benefits {
		if b.ID == benefitID {
			return b, nil
		}
	}
	return nil, &NotFoundError{Entity: "benefit", ID: benefitID}
}
