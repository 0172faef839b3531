package benefits_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/domain/schedule"
)

const owner = "user-1"

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func moneyPtr(s string) *decimal.Decimal {
	d := money(s)
	return &d
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

type fixture struct {
	store *memStore
	svc   benefits.Service
	now   time.Time
}

func newFixture(t *testing.T, now string, opts ...benefits.Option) *fixture {
	t.Helper()
	f := &fixture{store: newMemStore(), now: date(now).Add(10 * time.Hour)}
	opts = append([]benefits.Option{benefits.WithClock(func() time.Time { return f.now })}, opts...)
	f.svc = benefits.NewService(f.store.repositories(), opts...)
	return f
}

func (f *fixture) setNow(s string) {
	f.now = date(s).Add(10 * time.Hour)
}

func newBenefit(name, value string, kind schedule.Kind) *benefits.Benefit {
	return &benefits.Benefit{
		ID:       uuid.New(),
		Name:     name,
		Value:    money(value),
		Schedule: kind,
	}
}

func (f *fixture) card(name, fee string, list ...*benefits.Benefit) *benefits.Card {
	c := &benefits.Card{ID: uuid.New(), Name: name, Issuer: "Test Bank", Benefits: list}
	if fee != "" {
		c.AnnualFee = decimal.NewNullDecimal(money(fee))
	}
	for _, b := range list {
		b.CardID = c.ID
	}
	f.store.addCard(c)
	return c
}

func (f *fixture) hold(c *benefits.Card, open string) *benefits.UserCard {
	uc := &benefits.UserCard{
		ID:           uuid.New(),
		UserID:       owner,
		CardID:       c.ID,
		CardOpenDate: date(open),
		CreatedAt:    time.Now(),
	}
	f.store.addUserCard(uc)
	return uc
}

func (f *fixture) seed(uc *benefits.UserCard, b *benefits.Benefit, key schedule.Key, amount string) {
	f.store.putRow(benefits.Redemption{
		ID:             uuid.New(),
		UserCardID:     uc.ID,
		BenefitID:      b.ID,
		Period:         key,
		AmountRedeemed: money(amount),
		Source:         benefits.SourceManual,
		RedeemedAt:     f.now,
	})
}

func findAvailability(list []*benefits.Availability, benefitID uuid.UUID) *benefits.Availability {
	for _, a := range list {
		if a.Benefit.ID == benefitID {
			return a
		}
	}
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}
