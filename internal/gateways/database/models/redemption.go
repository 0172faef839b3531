package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/domain/schedule"
)

// Redemption is one ledger row. The period sub-fields that do not apply to
// the benefit's schedule are stored as NULL.
type Redemption struct {
	bun.BaseModel `bun:"table:benefit_redemptions,alias:br"`

	ID             uuid.UUID       `bun:"id,pk,type:uuid"`
	UserCardID     uuid.UUID       `bun:"user_card_id,notnull,type:uuid"`
	BenefitID      uuid.UUID       `bun:"benefit_id,notnull,type:uuid"`
	PeriodYear     int             `bun:"period_year,notnull"`
	PeriodMonth    int             `bun:"period_month,nullzero"`
	PeriodQuarter  int             `bun:"period_quarter,nullzero"`
	PeriodHalf     int             `bun:"period_half,nullzero"`
	AmountRedeemed decimal.Decimal `bun:"amount_redeemed,notnull,type:numeric(10,2)"`
	Source         string          `bun:"source,notnull,default:'manual'"`
	RedeemedAt     time.Time       `bun:"redeemed_at,notnull,default:current_timestamp"`
	UpdatedAt      time.Time       `bun:"updated_at,notnull,default:current_timestamp"`
}

func (r *Redemption) Key() schedule.Key {
	return schedule.Key{
		Year:    r.PeriodYear,
		Month:   r.PeriodMonth,
		Quarter: r.PeriodQuarter,
		Half:    r.PeriodHalf,
	}
}

func (r *Redemption) ToDomain() *benefits.Redemption {
	key := r.Key()
	return &benefits.Redemption{
		ID:             r.ID,
		UserCardID:     r.UserCardID,
		BenefitID:      r.BenefitID,
		Period:         key,
		PeriodLabel:    key.String(),
		AmountRedeemed: r.AmountRedeemed,
		Source:         benefits.Source(r.Source),
		RedeemedAt:     r.RedeemedAt,
	}
}

func RedemptionFromDomain(r *benefits.Redemption) *Redemption {
	return &Redemption{
		ID:             r.ID,
		UserCardID:     r.UserCardID,
		BenefitID:      r.BenefitID,
		PeriodYear:     r.Period.Year,
		PeriodMonth:    r.Period.Month,
		PeriodQuarter:  r.Period.Quarter,
		PeriodHalf:     r.Period.Half,
		AmountRedeemed: r.AmountRedeemed,
		Source:         string(r.Source),
		RedeemedAt:     r.RedeemedAt,
		UpdatedAt:      r.RedeemedAt,
	}
}
