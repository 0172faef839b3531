package benefits

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/cardwise/perktrack/internal/logger"
)

// GetPreference returns the stored flags, or the defaults when the benefit
// was never toggled.
func (s *service) GetPreference(ctx context.Context, userID string, userCardID, benefitID uuid.UUID) (*Preference, error) {
	uc, err := s.ownedCard(ctx, userID, userCardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.benefitOf(uc, benefitID); err != nil {
		return nil, err
	}

	pref, err := s.preferences.Get(ctx, uc.ID, benefitID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	if pref == nil {
		pref = &Preference{UserCardID: uc.ID, BenefitID: benefitID}
	}
	return pref, nil
}

func (s *service) UpdatePreference(ctx context.Context, userID string, userCardID, benefitID uuid.UUID, update PreferenceUpdate) (pref *Preference, err error) {
	ctx, span := s.startSpan(ctx, "UpdatePreference",
		attribute.String("user_card_id", userCardID.String()),
		attribute.String("benefit_id", benefitID.String()))
	defer func() { endSpan(span, err) }()

	if update.AutoRedeem == nil && update.Hidden == nil {
		return s.GetPreference(ctx, userID, userCardID, benefitID)
	}

	uc, err := s.ownedCard(ctx, userID, userCardID)
	if err != nil {
		return nil, err
	}
	benefit, err := s.benefitOf(uc, benefitID)
	if err != nil {
		return nil, err
	}

	// turning auto-redeem on tops up the current period right away
	enabling := false
	if update.AutoRedeem != nil && *update.AutoRedeem {
		prev, err := s.preferences.Get(ctx, uc.ID, benefit.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get preference: %w", err)
		}
		enabling = prev == nil || !prev.AutoRedeem
	}

	pref, err = s.preferences.Upsert(ctx, uc.ID, benefit.ID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to save preference: %w", err)
	}

	slog.Info("Benefit preference updated",
		slog.String("user_id", userID),
		slog.String("user_card_id", uc.ID.String()),
		slog.String("benefit_id", benefit.ID.String()),
		slog.Bool("auto_redeem", pref.AutoRedeem),
		slog.Bool("hidden", pref.Hidden))

	if enabling {
		s.enableAutoRedeem(ctx, uc, benefit)
	}
	return pref, nil
}

// enableAutoRedeem materializes the current period after the flag was
// stored. A failure leaves the flag in place and is only logged.
func (s *service) enableAutoRedeem(ctx context.Context, uc *UserCard, benefit *Benefit) {
	now := s.now()
	period, err := resolvePeriod(benefit, uc, now)
	if err == nil {
		_, err = s.materialize(ctx, uc, benefit, period, nil, nil, now)
	}
	if err != nil {
		logger.LogError("Auto-redeem after enabling failed", err,
			slog.String("user_card_id", uc.ID.String()),
			slog.String("benefit_id", benefit.ID.String()))
	}
}
