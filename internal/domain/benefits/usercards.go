package benefits

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cardwise/perktrack/internal/domain/schedule"
)

const maxNicknameLength = 64

// cleanNickname trims the nickname; an empty result clears it.
func cleanNickname(nickname *string) (*string, error) {
	if nickname == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*nickname)
	if trimmed == "" {
		return nil, nil
	}
	if len([]rune(trimmed)) > maxNicknameLength {
		return nil, invalid("nickname", "must be at most %d characters", maxNicknameLength)
	}
	return &trimmed, nil
}

func (s *service) AddUserCard(ctx context.Context, userID string, req NewUserCard) (*UserCard, error) {
	if req.CardOpenDate.IsZero() {
		return nil, invalid("card_open_date", "is required")
	}
	nickname, err := cleanNickname(req.Nickname)
	if err != nil {
		return nil, err
	}

	card, err := s.catalog.GetCard(ctx, req.CardID)
	if err != nil {
		return nil, err
	}

	uc := &UserCard{
		ID:           uuid.New(),
		UserID:       userID,
		CardID:       card.ID,
		CardOpenDate: schedule.Date(req.CardOpenDate),
		Nickname:     nickname,
		CreatedAt:    s.now(),
	}
	if err := s.userCards.Create(ctx, uc); err != nil {
		return nil, fmt.Errorf("failed to add card: %w", err)
	}
	uc.Card = card

	slog.Info("User card added",
		slog.String("user_id", userID),
		slog.String("user_card_id", uc.ID.String()),
		slog.String("card", card.Name))
	return uc, nil
}

// ListUserCards returns every card the user holds with the availability of
// all its benefits, hidden ones included and flagged.
func (s *service) ListUserCards(ctx context.Context, userID string) ([]*UserCardWithBenefits, error) {
	p, err := s.loadPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]*UserCardWithBenefits, 0, len(p.cards))
	for _, uc := range p.cards {
		benefits, err := s.evaluateCard(ctx, p, uc, now)
		if err != nil {
			return nil, err
		}
		out = append(out, &UserCardWithBenefits{UserCard: uc, Benefits: benefits})
	}
	return out, nil
}

func (s *service) UpdateUserCard(ctx context.Context, userID string, id uuid.UUID, req UserCardUpdate) (*UserCard, error) {
	uc, err := s.ownedCard(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if req.CardOpenDate == nil && req.Nickname == nil {
		return uc, nil
	}

	if req.CardOpenDate != nil {
		if req.CardOpenDate.IsZero() {
			return nil, invalid("card_open_date", "is required")
		}
		uc.CardOpenDate = schedule.Date(*req.CardOpenDate)
	}
	if req.Nickname != nil {
		if uc.Nickname, err = cleanNickname(req.Nickname); err != nil {
			return nil, err
		}
	}

	if err := s.userCards.Update(ctx, uc); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}
	return uc, nil
}

// RemoveUserCard deletes the card; its ledger rows and preferences go with it.
func (s *service) RemoveUserCard(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.userCards.Delete(ctx, userID, id); err != nil {
		return err
	}
	slog.Info("User card removed",
		slog.String("user_id", userID),
		slog.String("user_card_id", id.String()))
	return nil
}
