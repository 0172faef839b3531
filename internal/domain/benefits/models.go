package benefits

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cardwise/perktrack/internal/domain/schedule"
)

// MoneyPlaces is the number of fraction digits kept on every amount.
const MoneyPlaces = 2

type Card struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Issuer    string              `json:"issuer"`
	AnnualFee decimal.NullDecimal `json:"annual_fee"`
	ImageURL  string              `json:"image_url,omitempty"`
	Benefits  []*Benefit          `json:"benefits,omitempty"`
}

// Fee is the annual fee, zero when the card has none.
func (c *Card) Fee() decimal.Decimal {
	if !c.AnnualFee.Valid {
		return decimal.Zero
	}
	return c.AnnualFee.Decimal
}

type Benefit struct {
	ID          uuid.UUID       `json:"id"`
	CardID      uuid.UUID       `json:"card_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Value       decimal.Decimal `json:"value"`
	Schedule    schedule.Kind   `json:"schedule"`
}

type UserCard struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"user_id"`
	CardID       uuid.UUID `json:"card_id"`
	CardOpenDate time.Time `json:"card_open_date"`
	Nickname     *string   `json:"nickname"`
	CreatedAt    time.Time `json:"created_at"`
	Card         *Card     `json:"card,omitempty"`
}

// OpenOn reports whether the card was already open on the day of t.
func (uc *UserCard) OpenOn(t time.Time) bool {
	return !schedule.Date(t).Before(schedule.Date(uc.CardOpenDate))
}

type Source string

const (
	SourceManual Source = "manual"
	SourceAuto   Source = "auto"
)

// Redemption is one ledger row: the value redeemed for a benefit in a
// single period.
type Redemption struct {
	ID             uuid.UUID       `json:"id"`
	UserCardID     uuid.UUID       `json:"user_card_id"`
	BenefitID      uuid.UUID       `json:"benefit_id"`
	Period         schedule.Key    `json:"-"`
	PeriodLabel    string          `json:"period"`
	AmountRedeemed decimal.Decimal `json:"amount_redeemed"`
	Source         Source          `json:"source"`
	RedeemedAt     time.Time       `json:"redeemed_at"`
}

type Preference struct {
	UserCardID uuid.UUID `json:"user_card_id"`
	BenefitID  uuid.UUID `json:"benefit_id"`
	AutoRedeem bool      `json:"auto_redeem"`
	Hidden     bool      `json:"hidden"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`

	// AutoRedeemedPeriod is the label of the last period auto-redeem
	// materialized into the ledger. Each period is materialized at most once
	// so an unredeem sticks until the period rolls over.
	AutoRedeemedPeriod string `json:"-"`
}

// PreferenceUpdate is a partial update; nil fields keep their stored value.
type PreferenceUpdate struct {
	AutoRedeem *bool `json:"auto_redeem"`
	Hidden     *bool `json:"hidden"`
}

type NewUserCard struct {
	CardID       uuid.UUID `json:"card_id"`
	CardOpenDate time.Time `json:"card_open_date"`
	Nickname     *string   `json:"nickname"`
}

type UserCardUpdate struct {
	CardOpenDate *time.Time `json:"card_open_date"`
	Nickname     *string    `json:"nickname"`
}

// Availability is the state of one benefit on one user card at an instant.
type Availability struct {
	Benefit         *Benefit        `json:"benefit"`
	UserCard        *UserCard       `json:"user_card"`
	Period          schedule.Period `json:"period"`
	IsRedeemed      bool            `json:"is_redeemed"`
	ResetsAt        *time.Time      `json:"resets_at"`
	AutoRedeem      bool            `json:"auto_redeem"`
	Hidden          bool            `json:"hidden"`
	AmountRedeemed  decimal.Decimal `json:"amount_redeemed"`
	AmountRemaining decimal.Decimal `json:"amount_remaining"`
	// NotYetOpen is set when the card's open date is still in the future.
	// Nothing can be redeemed until then.
	NotYetOpen bool `json:"not_yet_open"`
}

type UserCardWithBenefits struct {
	*UserCard
	Benefits []*Availability `json:"benefits"`
}

type ListOptions struct {
	IncludeHidden bool
}

type BenefitSummary struct {
	Benefit       *Benefit        `json:"benefit"`
	Hidden        bool            `json:"hidden"`
	AutoRedeem    bool            `json:"auto_redeem"`
	RedeemedCount int             `json:"redeemed_count"`
	TotalCount    int             `json:"total_count"`
	RedeemedValue decimal.Decimal `json:"redeemed_value"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

type CardSummary struct {
	UserCard       *UserCard         `json:"user_card"`
	Year           int               `json:"year"`
	Benefits       []*BenefitSummary `json:"benefits"`
	TotalRedeemed  decimal.Decimal   `json:"total_redeemed"`
	TotalAvailable decimal.Decimal   `json:"total_available"`
	Outstanding    decimal.Decimal   `json:"outstanding"`
	RedeemedCount  int               `json:"redeemed_count"`
	TotalCount     int               `json:"total_count"`
}

type AnnualSummary struct {
	Year            int             `json:"year"`
	Cards           int             `json:"cards"`
	TotalRedeemed   decimal.Decimal `json:"total_redeemed"`
	TotalAvailable  decimal.Decimal `json:"total_available"`
	Outstanding     decimal.Decimal `json:"outstanding"`
	RedeemedCount   int             `json:"redeemed_count"`
	TotalCount      int             `json:"total_count"`
	TotalAnnualFees decimal.Decimal `json:"total_annual_fees"`
}
