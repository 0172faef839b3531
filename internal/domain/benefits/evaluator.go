package benefits

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/cardwise/perktrack/internal/domain/schedule"
)

// Evaluate builds the availability of a benefit for the given period from
// its ledger row and preference. Both may be nil.
func Evaluate(benefit *Benefit, uc *UserCard, period schedule.Period, row *Redemption, pref *Preference) *Availability {
	redeemed := decimal.Zero
	if row != nil {
		redeemed = row.AmountRedeemed
	}
	remaining := benefit.Value.Sub(redeemed)

	a := &Availability{
		Benefit:         benefit,
		UserCard:        uc,
		Period:          period,
		IsRedeemed:      !remaining.IsPositive(),
		ResetsAt:        period.ResetsAt,
		AmountRedeemed:  redeemed,
		AmountRemaining: remaining,
	}
	if pref != nil {
		a.AutoRedeem = pref.AutoRedeem
		a.Hidden = pref.Hidden
	}
	return a
}

type ledgerKey struct {
	userCard uuid.UUID
	benefit  uuid.UUID
	period   schedule.Key
}

type ledgerIndex map[ledgerKey]*Redemption

func indexRedemptions(rows []*Redemption) ledgerIndex {
	ix := make(ledgerIndex, len(rows))
	for _, r := range rows {
		ix[ledgerKey{r.UserCardID, r.BenefitID, r.Period}] = r
	}
	return ix
}

func (ix ledgerIndex) get(userCardID, benefitID uuid.UUID, key schedule.Key) *Redemption {
	return ix[ledgerKey{userCardID, benefitID, key}]
}

type prefKey struct {
	userCard uuid.UUID
	benefit  uuid.UUID
}

type prefIndex map[prefKey]*Preference

func indexPreferences(prefs []*Preference) prefIndex {
	ix := make(prefIndex, len(prefs))
	for _, p := range prefs {
		ix[prefKey{p.UserCardID, p.BenefitID}] = p
	}
	return ix
}

func (ix prefIndex) get(userCardID, benefitID uuid.UUID) *Preference {
	return ix[prefKey{userCardID, benefitID}]
}

// portfolio is everything needed to evaluate a set of user cards.
type portfolio struct {
	cards  []*UserCard
	ledger ledgerIndex
	prefs  prefIndex
}

func (s *service) loadPortfolio(ctx context.Context, userID string) (*portfolio, error) {
	userCards, err := s.userCards.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user cards: %w", err)
	}
	return s.hydrate(ctx, userCards)
}

func (s *service) loadCard(ctx context.Context, userID string, userCardID uuid.UUID) (*portfolio, error) {
	uc, err := s.userCards.Get(ctx, userID, userCardID)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, []*UserCard{uc})
}

// hydrate attaches catalog cards and loads ledger rows and preferences for
// the given user cards concurrently.
func (s *service) hydrate(ctx context.Context, userCards []*UserCard) (*portfolio, error) {
	p := &portfolio{cards: userCards, ledger: ledgerIndex{}, prefs: prefIndex{}}
	if len(userCards) == 0 {
		return p, nil
	}

	ids := make([]uuid.UUID, 0, len(userCards))
	cardIDs := make([]uuid.UUID, 0, len(userCards))
	seen := make(map[uuid.UUID]bool)
	for _, uc := range userCards {
		ids = append(ids, uc.ID)
		if !seen[uc.CardID] {
			seen[uc.CardID] = true
			cardIDs = append(cardIDs, uc.CardID)
		}
	}

	var (
		cards []*Card
		rows  []*Redemption
		prefs []*Preference
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cards, err = s.catalog.GetCardsByIDs(gctx, cardIDs)
		if err != nil {
			return fmt.Errorf("failed to load cards: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rows, err = s.ledger.ListByUserCards(gctx, ids)
		if err != nil {
			return fmt.Errorf("failed to load redemptions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		prefs, err = s.preferences.ListByUserCards(gctx, ids)
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*Card, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}
	for _, uc := range userCards {
		card, ok := byID[uc.CardID]
		if !ok {
			return nil, &NotFoundError{Entity: "card", ID: uc.CardID}
		}
		uc.Card = card
	}

	p.ledger = indexRedemptions(rows)
	p.prefs = indexPreferences(prefs)
	return p, nil
}

// evaluateCard returns the availability of every benefit on the card. In
// eager mode auto-redeem benefits are materialized into the ledger first.
func (s *service) evaluateCard(ctx context.Context, p *portfolio, uc *UserCard, now time.Time) ([]*Availability, error) {
	out := make([]*Availability, 0, len(uc.Card.Benefits))
	for _, b := range uc.Card.Benefits {
		period, err := schedule.Resolve(b.Schedule, now, uc.CardOpenDate)
		if err != nil {
			slog.Warn("Skipping benefit with unknown schedule",
				slog.String("benefit_id", b.ID.String()),
				slog.String("schedule", string(b.Schedule)))
			continue
		}

		row := p.ledger.get(uc.ID, b.ID, period.Key)
		pref := p.prefs.get(uc.ID, b.ID)
		if pref != nil && pref.AutoRedeem {
			row, err = s.materialize(ctx, uc, b, period, row, pref, now)
			if err != nil {
				return nil, err
			}
			if row != nil {
				p.ledger[ledgerKey{uc.ID, b.ID, period.Key}] = row
			}
		}
		a := Evaluate(b, uc, period, row, pref)
		a.NotYetOpen = !uc.OpenOn(now)
		out = append(out, a)
	}
	return out, nil
}

// materialize redeems whatever is left of the current period for an
// auto-redeem benefit and records the period on the preference. A period
// already recorded is left alone, so an unredeem is not undone by the next
// read. A nil pref forces the top-up. It returns the row to evaluate against.
func (s *service) materialize(ctx context.Context, uc *UserCard, b *Benefit, period schedule.Period, row *Redemption, pref *Preference, now time.Time) (*Redemption, error) {
	if s.autoRedeem != AutoRedeemEager || !uc.OpenOn(now) || !period.Contains(now) {
		return row, nil
	}
	label := period.Key.String()
	if pref != nil && pref.AutoRedeemedPeriod == label {
		return row, nil
	}

	if row == nil || row.AmountRedeemed.LessThan(b.Value) {
		fresh, err := s.apply(ctx, uc, b, period, nil, SourceAuto)
		switch {
		case err == nil:
			slog.Info("Auto-redeemed benefit",
				slog.String("user_card_id", uc.ID.String()),
				slog.String("benefit_id", b.ID.String()),
				slog.String("period", label))
			row = fresh
		case IsValidation(err):
			// fully redeemed by a concurrent request
			slog.Debug("Auto-redeem skipped", slog.String("reason", err.Error()))
		default:
			return nil, fmt.Errorf("failed to auto-redeem benefit %s: %w", b.ID, err)
		}
	}

	if err := s.preferences.MarkAutoRedeemed(ctx, uc.ID, b.ID, label); err != nil {
		return nil, fmt.Errorf("failed to record auto-redeemed period: %w", err)
	}
	if pref != nil {
		pref.AutoRedeemedPeriod = label
	}
	return row, nil
}

func (s *service) ListBenefits(ctx context.Context, userID string, userCardID uuid.UUID, opts ListOptions) (result []*Availability, err error) {
	ctx, span := s.startSpan(ctx, "ListBenefits", attribute.String("user_card_id", userCardID.String()))
	defer func() { endSpan(span, err) }()

	p, err := s.loadCard(ctx, userID, userCardID)
	if err != nil {
		return nil, err
	}
	all, err := s.evaluateCard(ctx, p, p.cards[0], s.now())
	if err != nil {
		return nil, err
	}
	return filterHidden(all, opts), nil
}

// ListAvailable is the dashboard view: every benefit across the user's cards
// that still has value to redeem, soonest reset first.
func (s *service) ListAvailable(ctx context.Context, userID string, opts ListOptions) (result []*Availability, err error) {
	ctx, span := s.startSpan(ctx, "ListAvailable")
	defer func() { endSpan(span, err) }()

	p, err := s.loadPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, uc := range p.cards {
		all, err := s.evaluateCard(ctx, p, uc, now)
		if err != nil {
			return nil, err
		}
		for _, a := range filterHidden(all, opts) {
			if a.AutoRedeem || !a.AmountRemaining.IsPositive() || a.NotYetOpen {
				continue
			}
			result = append(result, a)
		}
	}

	sortAvailability(result)
	return result, nil
}

func filterHidden(all []*Availability, opts ListOptions) []*Availability {
	if opts.IncludeHidden {
		return all
	}
	out := all[:0]
	for _, a := range all {
		if !a.Hidden {
			out = append(out, a)
		}
	}
	return out
}

// sortAvailability orders by next reset (never-resetting last), then by
// value, highest first.
func sortAvailability(list []*Availability) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch {
		case a.ResetsAt == nil && b.ResetsAt != nil:
			return false
		case a.ResetsAt != nil && b.ResetsAt == nil:
			return true
		case a.ResetsAt != nil && !a.ResetsAt.Equal(*b.ResetsAt):
			return a.ResetsAt.Before(*b.ResetsAt)
		}
		if !a.Benefit.Value.Equal(b.Benefit.Value) {
			return a.Benefit.Value.GreaterThan(b.Benefit.Value)
		}
		return a.Benefit.Name < b.Benefit.Name
	})
}
