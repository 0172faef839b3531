package benefits_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/domain/schedule"
)

type portfolioFixture struct {
	*fixture
	gold, blue                      *benefits.UserCard
	dining, shopping, airline       *benefits.Benefit
	streaming, anniversary, welcome *benefits.Benefit
}

// newPortfolio holds two cards with three benefits each and a mix of full,
// partial and missing redemptions across 2024.
func newPortfolio(t *testing.T, now string, opts ...benefits.Option) *portfolioFixture {
	p := &portfolioFixture{fixture: newFixture(t, now, opts...)}

	p.dining = newBenefit("Dining", "10", schedule.Monthly)
	p.shopping = newBenefit("Shopping", "50", schedule.Quarterly)
	p.airline = newBenefit("Airline fee", "300", schedule.CalendarYear)
	p.gold = p.hold(p.card("Gold", "250", p.dining, p.shopping, p.airline), "2023-01-01")

	p.streaming = newBenefit("Streaming", "15", schedule.Monthly)
	p.anniversary = newBenefit("Free night", "100", schedule.CardYear)
	p.welcome = newBenefit("Welcome pass", "200", schedule.OneTime)
	p.blue = p.hold(p.card("Blue", "95", p.streaming, p.anniversary, p.welcome), "2024-04-10")

	for m := 1; m <= 6; m++ {
		p.seed(p.gold, p.dining, schedule.Key{Year: 2024, Month: m}, "10")
	}
	p.seed(p.gold, p.dining, schedule.Key{Year: 2024, Month: 7}, "5")
	p.seed(p.gold, p.shopping, schedule.Key{Year: 2024, Quarter: 1}, "50")
	p.seed(p.gold, p.shopping, schedule.Key{Year: 2024, Quarter: 3}, "20")
	p.seed(p.gold, p.dining, schedule.Key{Year: 2023, Month: 12}, "10")

	p.seed(p.blue, p.streaming, schedule.Key{Year: 2024, Month: 4}, "15")
	p.seed(p.blue, p.streaming, schedule.Key{Year: 2024, Month: 5}, "15")
	p.seed(p.blue, p.anniversary, schedule.Key{Year: 2024}, "40")
	p.seed(p.blue, p.welcome, schedule.Lifetime, "200")
	return p
}

func benefitSummary(cs *benefits.CardSummary, b *benefits.Benefit) *benefits.BenefitSummary {
	for _, bs := range cs.Benefits {
		if bs.Benefit.ID == b.ID {
			return bs
		}
	}
	return nil
}

func TestAnnualSummaryTotals(t *testing.T) {
	p := newPortfolio(t, "2025-02-01")

	s, err := p.svc.AnnualSummary(context.Background(), owner, 2024)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Cards)
	assert.True(t, money("1055").Equal(s.TotalAvailable), "available %s", s.TotalAvailable)
	assert.True(t, money("405").Equal(s.TotalRedeemed), "redeemed %s", s.TotalRedeemed)
	assert.True(t, s.TotalAvailable.Sub(s.TotalRedeemed).Equal(s.Outstanding))
	assert.True(t, money("650").Equal(s.Outstanding))
	assert.True(t, money("345").Equal(s.TotalAnnualFees))
	assert.Equal(t, 28, s.TotalCount)
	assert.Equal(t, 13, s.RedeemedCount)
}

func TestCardSummary(t *testing.T) {
	p := newPortfolio(t, "2025-02-01")
	ctx := context.Background()

	gold, err := p.svc.CardSummary(ctx, owner, p.gold.ID, 2024)
	require.NoError(t, err)
	assert.True(t, money("620").Equal(gold.TotalAvailable))
	assert.True(t, money("135").Equal(gold.TotalRedeemed))
	assert.True(t, money("485").Equal(gold.Outstanding))

	dining := benefitSummary(gold, p.dining)
	require.NotNil(t, dining)
	assert.Equal(t, 12, dining.TotalCount)
	assert.Equal(t, 7, dining.RedeemedCount)
	assert.True(t, money("65").Equal(dining.RedeemedValue))

	blue, err := p.svc.CardSummary(ctx, owner, p.blue.ID, 2024)
	require.NoError(t, err)
	streaming := benefitSummary(blue, p.streaming)
	require.NotNil(t, streaming)
	assert.Equal(t, 9, streaming.TotalCount, "April through December")
	assert.True(t, money("135").Equal(streaming.TotalValue))

	welcome := benefitSummary(blue, p.welcome)
	require.NotNil(t, welcome)
	assert.Equal(t, 1, welcome.TotalCount)
	assert.Equal(t, 1, welcome.RedeemedCount)

	// a one-time benefit shows up in later years already redeemed
	next, err := p.svc.CardSummary(ctx, owner, p.blue.ID, 2025)
	require.NoError(t, err)
	welcome = benefitSummary(next, p.welcome)
	require.NotNil(t, welcome)
	assert.Equal(t, 1, welcome.TotalCount)
	assert.Equal(t, 1, welcome.RedeemedCount)
}

func TestSummaryCurrentYearIsProRated(t *testing.T) {
	p := newPortfolio(t, "2024-03-15")

	gold, err := p.svc.CardSummary(context.Background(), owner, p.gold.ID, 2024)
	require.NoError(t, err)

	dining := benefitSummary(gold, p.dining)
	require.NotNil(t, dining)
	assert.Equal(t, 3, dining.TotalCount)
	assert.True(t, money("30").Equal(dining.TotalValue))

	shopping := benefitSummary(gold, p.shopping)
	require.NotNil(t, shopping)
	assert.Equal(t, 1, shopping.TotalCount)
	assert.Equal(t, 1, shopping.RedeemedCount)

	blue, err := p.svc.CardSummary(context.Background(), owner, p.blue.ID, 2024)
	require.NoError(t, err)
	assert.True(t, blue.TotalAvailable.IsZero(), "card opens after today")
}

func TestSummaryExcludesHidden(t *testing.T) {
	p := newPortfolio(t, "2025-02-01")
	ctx := context.Background()

	_, err := p.svc.UpdatePreference(ctx, owner, p.gold.ID, p.airline.ID, benefits.PreferenceUpdate{Hidden: boolPtr(true)})
	require.NoError(t, err)

	gold, err := p.svc.CardSummary(ctx, owner, p.gold.ID, 2024)
	require.NoError(t, err)
	assert.True(t, money("320").Equal(gold.TotalAvailable))
	airline := benefitSummary(gold, p.airline)
	require.NotNil(t, airline, "hidden benefits are still listed")
	assert.True(t, airline.Hidden)

	s, err := p.svc.AnnualSummary(ctx, owner, 2024)
	require.NoError(t, err)
	assert.True(t, money("755").Equal(s.TotalAvailable))
	assert.True(t, s.TotalAvailable.Sub(s.TotalRedeemed).Equal(s.Outstanding))
}

func TestAnnualSummarySkipsCardsOpenedLater(t *testing.T) {
	p := newPortfolio(t, "2025-02-01")
	hotel := newBenefit("Hotel", "150", schedule.CalendarYear)
	p.hold(p.card("Green", "150", hotel), "2025-01-15")

	s, err := p.svc.AnnualSummary(context.Background(), owner, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Cards)
	assert.True(t, money("345").Equal(s.TotalAnnualFees))

	s, err = p.svc.AnnualSummary(context.Background(), owner, 2025)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Cards)
	assert.True(t, money("495").Equal(s.TotalAnnualFees))
}

func TestSummaryOverlayCountsCurrentPeriod(t *testing.T) {
	f := newFixture(t, "2024-03-15", benefits.WithAutoRedeemMode(benefits.AutoRedeemOverlay))
	credit := newBenefit("Dining", "10", schedule.Monthly)
	uc := f.hold(f.card("Gold", "250", credit), "2023-01-01")
	ctx := context.Background()

	_, err := f.svc.UpdatePreference(ctx, owner, uc.ID, credit.ID, benefits.PreferenceUpdate{AutoRedeem: boolPtr(true)})
	require.NoError(t, err)

	cs, err := f.svc.CardSummary(ctx, owner, uc.ID, 2024)
	require.NoError(t, err)
	bs := benefitSummary(cs, credit)
	require.NotNil(t, bs)
	assert.Equal(t, 3, bs.TotalCount)
	assert.Equal(t, 1, bs.RedeemedCount, "only March is covered by the overlay")
	assert.True(t, money("10").Equal(bs.RedeemedValue))
	assert.Empty(t, f.store.rowsFor(uc.ID, credit.ID))
}

func TestSummaryCardYearCountsOncePerCalendarYear(t *testing.T) {
	f := newFixture(t, "2025-02-01")
	travel := newBenefit("Travel credit", "300", schedule.CardYear)
	uc := f.hold(f.card("Reserve", "550", travel), "2023-03-15")
	f.seed(uc, travel, schedule.Key{Year: 2023}, "300")
	f.seed(uc, travel, schedule.Key{Year: 2024}, "120")
	ctx := context.Background()

	tests := []struct {
		year          int
		wantCount     int
		wantValue     string
		wantRedeemed  string
		wantAvailable string
	}{
		{year: 2023, wantCount: 1, wantValue: "300", wantRedeemed: "300", wantAvailable: "300"},
		{year: 2024, wantCount: 1, wantValue: "300", wantRedeemed: "120", wantAvailable: "300"},
		{year: 2025, wantCount: 0, wantValue: "0", wantRedeemed: "0", wantAvailable: "0"},
	}
	for _, tt := range tests {
		cs, err := f.svc.CardSummary(ctx, owner, uc.ID, tt.year)
		require.NoError(t, err)
		bs := benefitSummary(cs, travel)
		require.NotNil(t, bs)
		assert.Equal(t, tt.wantCount, bs.TotalCount, "year %d", tt.year)
		assert.True(t, money(tt.wantValue).Equal(bs.TotalValue), "year %d: total %s", tt.year, bs.TotalValue)
		assert.True(t, money(tt.wantRedeemed).Equal(bs.RedeemedValue), "year %d: redeemed %s", tt.year, bs.RedeemedValue)

		s, err := f.svc.AnnualSummary(ctx, owner, tt.year)
		require.NoError(t, err)
		assert.True(t, money(tt.wantAvailable).Equal(s.TotalAvailable), "year %d: available %s", tt.year, s.TotalAvailable)
	}
}

func TestSummaryHonoursUnredeemWithAutoRedeem(t *testing.T) {
	f := newFixture(t, "2024-03-15")
	credit := newBenefit("Dining", "10", schedule.Monthly)
	uc := f.hold(f.card("Gold", "250", credit), "2023-01-01")
	ctx := context.Background()

	_, err := f.svc.UpdatePreference(ctx, owner, uc.ID, credit.ID, benefits.PreferenceUpdate{AutoRedeem: boolPtr(true)})
	require.NoError(t, err)

	cs, err := f.svc.CardSummary(ctx, owner, uc.ID, 2024)
	require.NoError(t, err)
	bs := benefitSummary(cs, credit)
	require.NotNil(t, bs)
	assert.Equal(t, 1, bs.RedeemedCount)

	require.NoError(t, f.svc.Unredeem(ctx, owner, uc.ID, credit.ID))

	cs, err = f.svc.CardSummary(ctx, owner, uc.ID, 2024)
	require.NoError(t, err)
	bs = benefitSummary(cs, credit)
	require.NotNil(t, bs)
	assert.Equal(t, 0, bs.RedeemedCount)
	assert.True(t, bs.RedeemedValue.IsZero())
}

func TestSummaryRejectsBadYear(t *testing.T) {
	p := newPortfolio(t, "2025-02-01")
	for _, year := range []int{0, 1899, 10000} {
		_, err := p.svc.AnnualSummary(context.Background(), owner, year)
		assert.True(t, benefits.IsValidation(err), "year %d", year)

		_, err = p.svc.CardSummary(context.Background(), owner, p.gold.ID, year)
		assert.True(t, benefits.IsValidation(err), "year %d", year)
	}
}
