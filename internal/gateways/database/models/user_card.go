package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/cardwise/perktrack/internal/domain/benefits"
)

type UserCard struct {
	bun.BaseModel `bun:"table:user_cards,alias:uc"`

	ID           uuid.UUID `bun:"id,pk,type:uuid"`
	UserID       string    `bun:"user_id,notnull"`
	CardID       uuid.UUID `bun:"card_id,notnull,type:uuid"`
	CardOpenDate time.Time `bun:"card_open_date,notnull,type:date"`
	Nickname     *string   `bun:"nickname,type:varchar(64)"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

func (uc *UserCard) ToDomain() *benefits.UserCard {
	return &benefits.UserCard{
		ID:           uc.ID,
		UserID:       uc.UserID,
		CardID:       uc.CardID,
		CardOpenDate: uc.CardOpenDate.UTC(),
		Nickname:     uc.Nickname,
		CreatedAt:    uc.CreatedAt,
	}
}

func UserCardFromDomain(uc *benefits.UserCard) *UserCard {
	return &UserCard{
		ID:           uc.ID,
		UserID:       uc.UserID,
		CardID:       uc.CardID,
		CardOpenDate: uc.CardOpenDate,
		Nickname:     uc.Nickname,
		CreatedAt:    uc.CreatedAt,
		UpdatedAt:    uc.CreatedAt,
	}
}
