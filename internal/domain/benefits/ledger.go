package benefits

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/cardwise/perktrack/internal/domain/schedule"
)

// A conflicting concurrent write is retried once against fresh state.
const maxRedeemAttempts = 2

func (s *service) Redeem(ctx context.Context, userID string, userCardID, benefitID uuid.UUID, amount *decimal.Decimal) (*Redemption, error) {
	ctx, span := s.startSpan(ctx, "Redeem",
		attribute.String("user_card_id", userCardID.String()),
		attribute.String("benefit_id", benefitID.String()))

	redemption, err := s.redeem(ctx, userID, userCardID, benefitID, amount)
	endSpan(span, err)
	return redemption, err
}

func (s *service) redeem(ctx context.Context, userID string, userCardID, benefitID uuid.UUID, amount *decimal.Decimal) (*Redemption, error) {
	if amount != nil {
		if !amount.IsPositive() {
			return nil, invalid("amount", "must be greater than zero")
		}
		if !amount.Equal(amount.Round(MoneyPlaces)) {
			return nil, invalid("amount", "at most %d decimal places are allowed", MoneyPlaces)
		}
	}

	uc, err := s.ownedCard(ctx, userID, userCardID)
	if err != nil {
		return nil, err
	}
	benefit, err := s.benefitOf(uc, benefitID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	period, err := resolvePeriod(benefit, uc, now)
	if err != nil {
		return nil, err
	}
	if !uc.OpenOn(now) {
		return nil, invalid("card_open_date", "card opens on %s", uc.CardOpenDate.Format("2006-01-02"))
	}

	redemption, err := s.apply(ctx, uc, benefit, period, amount, SourceManual)
	if err != nil {
		return nil, err
	}

	slog.Info("Benefit redeemed",
		slog.String("user_id", userID),
		slog.String("user_card_id", uc.ID.String()),
		slog.String("benefit_id", benefit.ID.String()),
		slog.String("period", period.Key.String()),
		slog.String("amount_redeemed", redemption.AmountRedeemed.StringFixed(MoneyPlaces)))

	return redemption, nil
}

// apply runs the capped create-or-increment for one period, retrying once
// when a concurrent writer got there first.
func (s *service) apply(ctx context.Context, uc *UserCard, benefit *Benefit, period schedule.Period, amount *decimal.Decimal, source Source) (*Redemption, error) {
	for attempt := 1; ; attempt++ {
		var (
			redemption *Redemption
			applied    decimal.Decimal
		)
		err := s.ledger.InTx(ctx, func(ctx context.Context, tx LedgerTx) error {
			var err error
			redemption, applied, err = s.redeemOnce(ctx, tx, uc, benefit, period, amount, source)
			return err
		})
		if err == nil {
			s.observer.Redeemed(source, applied)
			return redemption, nil
		}
		if !IsConflict(err) {
			return nil, err
		}

		retry := attempt < maxRedeemAttempts
		s.observer.Conflict(retry)
		if !retry {
			return nil, invalid("amount", "remaining value changed during redemption, try again")
		}
		slog.Debug("Retrying redemption after conflict",
			slog.String("user_card_id", uc.ID.String()),
			slog.String("benefit_id", benefit.ID.String()),
			slog.String("period", period.Key.String()))
	}
}

func (s *service) redeemOnce(ctx context.Context, tx LedgerTx, uc *UserCard, benefit *Benefit, period schedule.Period, amount *decimal.Decimal, source Source) (*Redemption, decimal.Decimal, error) {
	current, err := tx.LockRedemption(ctx, uc.ID, benefit.ID, period.Key)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to lock redemption: %w", err)
	}

	redeemed := decimal.Zero
	if current != nil {
		redeemed = current.AmountRedeemed
	}
	remaining := benefit.Value.Sub(redeemed)

	want := remaining
	if amount != nil {
		want = *amount
	}
	if !want.IsPositive() {
		return nil, decimal.Zero, invalid("amount", "nothing left to redeem this period")
	}
	if want.GreaterThan(remaining) {
		return nil, decimal.Zero, invalid("amount", "%s exceeds remaining value %s",
			want.StringFixed(MoneyPlaces), remaining.StringFixed(MoneyPlaces))
	}

	if current == nil {
		redemption := &Redemption{
			ID:             uuid.New(),
			UserCardID:     uc.ID,
			BenefitID:      benefit.ID,
			Period:         period.Key,
			PeriodLabel:    period.Key.String(),
			AmountRedeemed: want,
			Source:         source,
			RedeemedAt:     s.now(),
		}
		inserted, err := tx.InsertRedemption(ctx, redemption)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("failed to insert redemption: %w", err)
		}
		if !inserted {
			return nil, decimal.Zero, &ConflictError{Entity: "redemption", Key: period.Key.String()}
		}
		return redemption, want, nil
	}

	updated, err := tx.IncrementRedemption(ctx, current.ID, want, benefit.Value)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to increment redemption: %w", err)
	}
	if !updated {
		return nil, decimal.Zero, &ConflictError{Entity: "redemption", Key: period.Key.String()}
	}
	current.AmountRedeemed = redeemed.Add(want)
	current.PeriodLabel = period.Key.String()
	return current, want, nil
}

func (s *service) Unredeem(ctx context.Context, userID string, userCardID, benefitID uuid.UUID) (err error) {
	ctx, span := s.startSpan(ctx, "Unredeem",
		attribute.String("user_card_id", userCardID.String()),
		attribute.String("benefit_id", benefitID.String()))
	defer func() { endSpan(span, err) }()

	uc, err := s.ownedCard(ctx, userID, userCardID)
	if err != nil {
		return err
	}
	benefit, err := s.benefitOf(uc, benefitID)
	if err != nil {
		return err
	}
	period, err := resolvePeriod(benefit, uc, s.now())
	if err != nil {
		return err
	}

	var removed int64
	err = s.ledger.InTx(ctx, func(ctx context.Context, tx LedgerTx) error {
		var err error
		removed, err = tx.DeleteRedemption(ctx, uc.ID, benefit.ID, period.Key)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete redemption: %w", err)
	}
	s.observer.Unredeemed(removed > 0)

	slog.Info("Benefit unredeemed",
		slog.String("user_id", userID),
		slog.String("user_card_id", uc.ID.String()),
		slog.String("benefit_id", benefit.ID.String()),
		slog.String("period", period.Key.String()),
		slog.Bool("removed", removed > 0))
	return nil
}

func (s *service) History(ctx context.Context, userID string, userCardID, benefitID uuid.UUID) ([]*Redemption, error) {
	uc, err := s.ownedCard(ctx, userID, userCardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.benefitOf(uc, benefitID); err != nil {
		return nil, err
	}
	rows, err := s.ledger.ListByBenefit(ctx, uc.ID, benefitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list redemptions: %w", err)
	}
	for _, r := range rows {
		r.PeriodLabel = r.Period.String()
	}
	return rows, nil
}

// resolvePeriod maps an unknown schedule to a validation failure.
func resolvePeriod(benefit *Benefit, uc *UserCard, at time.Time) (schedule.Period, error) {
	period, err := schedule.Resolve(benefit.Schedule, at, uc.CardOpenDate)
	if errors.Is(err, schedule.ErrUnknownKind) {
		return schedule.Period{}, invalid("schedule", "%q is not a known schedule", string(benefit.Schedule))
	}
	return period, err
}
