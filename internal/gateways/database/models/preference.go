package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/cardwise/perktrack/internal/domain/benefits"
)

type Preference struct {
	bun.BaseModel `bun:"table:user_benefit_preferences,alias:ubp"`

	UserCardID uuid.UUID `bun:"user_card_id,pk,type:uuid"`
	BenefitID  uuid.UUID `bun:"benefit_id,pk,type:uuid"`
	AutoRedeem bool      `bun:"auto_redeem,notnull,default:false"`
	Hidden     bool      `bun:"hidden,notnull,default:false"`
	UpdatedAt  time.Time `bun:"updated_at,notnull,default:current_timestamp"`

	// Label of the last period auto-redeem was applied to, e.g. "2024-M05".
	AutoRedeemedPeriod string `bun:"auto_redeemed_period,type:varchar(16),nullzero"`
}

func (p *Preference) ToDomain() *benefits.Preference {
	return &benefits.Preference{
		UserCardID: p.UserCardID,
		BenefitID:  p.BenefitID,
		AutoRedeem: p.AutoRedeem,
		Hidden:     p.Hidden,
		UpdatedAt:  p.UpdatedAt,

		AutoRedeemedPeriod: p.AutoRedeemedPeriod,
	}
}
