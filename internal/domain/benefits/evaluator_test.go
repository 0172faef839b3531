package benefits_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/domain/schedule"
)

func TestEvaluate(t *testing.T) {
	credit := newBenefit("Dining", "10", schedule.Monthly)
	uc := &benefits.UserCard{ID: uuid.New(), CardOpenDate: date("2023-01-01")}
	period, err := schedule.Resolve(schedule.Monthly, date("2024-05-10"), uc.CardOpenDate)
	require.NoError(t, err)

	tests := []struct {
		name          string
		row           *benefits.Redemption
		pref          *benefits.Preference
		wantRedeemed  bool
		wantRemaining string
		wantHidden    bool
		wantAuto      bool
	}{
		{name: "no row", wantRemaining: "10"},
		{name: "partial", row: &benefits.Redemption{AmountRedeemed: money("4")}, wantRemaining: "6"},
		{name: "full", row: &benefits.Redemption{AmountRedeemed: money("10")}, wantRedeemed: true, wantRemaining: "0"},
		{
			name:          "flags",
			pref:          &benefits.Preference{Hidden: true, AutoRedeem: true},
			wantRemaining: "10",
			wantHidden:    true,
			wantAuto:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := benefits.Evaluate(credit, uc, period, tt.row, tt.pref)
			assert.Equal(t, tt.wantRedeemed, a.IsRedeemed)
			assert.True(t, money(tt.wantRemaining).Equal(a.AmountRemaining), "got %s", a.AmountRemaining)
			assert.Equal(t, tt.wantHidden, a.Hidden)
			assert.Equal(t, tt.wantAuto, a.AutoRedeem)
			require.NotNil(t, a.ResetsAt)
			assert.Equal(t, date("2024-06-01"), *a.ResetsAt)
		})
	}
}

func TestListBenefitsHidden(t *testing.T) {
	f := newFixture(t, "2024-05-10")
	dining := newBenefit("Dining", "10", schedule.Monthly)
	lounge := newBenefit("Lounge", "50", schedule.CalendarYear)
	uc := f.hold(f.card("Gold", "250", dining, lounge), "2023-01-15")
	ctx := context.Background()

	_, err := f.svc.UpdatePreference(ctx, owner, uc.ID, lounge.ID, benefits.PreferenceUpdate{Hidden: boolPtr(true)})
	require.NoError(t, err)

	list, err := f.svc.ListBenefits(ctx, owner, uc.ID, benefits.ListOptions{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, dining.ID, list[0].Benefit.ID)

	list, err = f.svc.ListBenefits(ctx, owner, uc.ID, benefits.ListOptions{IncludeHidden: true})
	require.NoError(t, err)
	require.Len(t, list, 2)
	a := findAvailability(list, lounge.ID)
	require.NotNil(t, a)
	assert.True(t, a.Hidden)

	cards, err := f.svc.ListUserCards(ctx, owner)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Len(t, cards[0].Benefits, 2)
}

func TestListAvailable(t *testing.T) {
	f := newFixture(t, "2024-05-10")
	small := newBenefit("Streaming", "10", schedule.Monthly)
	large := newBenefit("Dining", "15", schedule.Monthly)
	quarterly := newBenefit("Shopping", "50", schedule.Quarterly)
	annual := newBenefit("Airline fee", "300", schedule.CalendarYear)
	welcome := newBenefit("Welcome pass", "100", schedule.OneTime)
	used := newBenefit("Rideshare", "5", schedule.Monthly)
	hidden := newBenefit("Wellness", "20", schedule.Monthly)
	auto := newBenefit("Cell phone", "7", schedule.Monthly)
	uc := f.hold(f.card("Gold", "250", small, large, quarterly, annual, welcome, used, hidden, auto), "2020-02-02")

	future := newBenefit("Hotel", "200", schedule.CalendarYear)
	f.hold(f.card("Future", "95", future), "2024-09-01")
	ctx := context.Background()

	_, err := f.svc.Redeem(ctx, owner, uc.ID, used.ID, nil)
	require.NoError(t, err)
	_, err = f.svc.UpdatePreference(ctx, owner, uc.ID, hidden.ID, benefits.PreferenceUpdate{Hidden: boolPtr(true)})
	require.NoError(t, err)
	_, err = f.svc.UpdatePreference(ctx, owner, uc.ID, auto.ID, benefits.PreferenceUpdate{AutoRedeem: boolPtr(true)})
	require.NoError(t, err)

	list, err := f.svc.ListAvailable(ctx, owner, benefits.ListOptions{})
	require.NoError(t, err)

	var names []string
	for _, a := range list {
		names = append(names, a.Benefit.Name)
	}
	assert.Equal(t, []string{"Dining", "Streaming", "Shopping", "Airline fee", "Welcome pass"}, names)

	list, err = f.svc.ListAvailable(ctx, owner, benefits.ListOptions{IncludeHidden: true})
	require.NoError(t, err)
	assert.NotNil(t, findAvailability(list, hidden.ID))
	assert.Nil(t, findAvailability(list, auto.ID))
	assert.Nil(t, findAvailability(list, future.ID))
}

func TestEagerAutoRedeem(t *testing.T) {
	f := newFixture(t, "2024-05-10")
	credit := newBenefit("Dining", "10", schedule.Monthly)
	uc := f.hold(f.card("Gold", "250", credit), "2023-01-15")
	f.seed(uc, credit, schedule.Key{Year: 2024, Month: 5}, "4")
	ctx := context.Background()

	pref, err := f.svc.UpdatePreference(ctx, owner, uc.ID, credit.ID, benefits.PreferenceUpdate{AutoRedeem: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, pref.AutoRedeem)

	rows := f.store.rowsFor(uc.ID, credit.ID)
	require.Len(t, rows, 1)
	assert.True(t, money("10").Equal(rows[0].AmountRedeemed), "remaining value is topped up")

	f.setNow("2024-06-03")
	list, err := f.svc.ListBenefits(ctx, owner, uc.ID, benefits.ListOptions{})
	require.NoError(t, err)
	a := findAvailability(list, credit.ID)
	require.NotNil(t, a)
	assert.True(t, a.IsRedeemed)
	assert.True(t, a.AutoRedeem)

	rows = f.store.rowsFor(uc.ID, credit.ID)
	require.Len(t, rows, 2)
	for _, r := range rows {
		if r.Period == (schedule.Key{Year: 2024, Month: 6}) {
			assert.Equal(t, benefits.SourceAuto, r.Source)
			assert.True(t, money("10").Equal(r.AmountRedeemed))
		}
	}

	// reading again does not write twice
	_, err = f.svc.ListBenefits(ctx, owner, uc.ID, benefits.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, f.store.rowsFor(uc.ID, credit.ID), 2)
}

func TestUnredeemSticksWithAutoRedeemOn(t *testing.T) {
	f := newFixture(t, "2024-05-10")
	credit := newBenefit("Dining", "10", schedule.Monthly)
	uc := f.hold(f.card("Gold", "250", credit), "2023-01-15")
	ctx := context.Background()

	_, err := f.svc.UpdatePreference(ctx, owner, uc.ID, credit.ID, benefits.PreferenceUpdate{AutoRedeem: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, f.store.rowsFor(uc.ID, credit.ID), 1)

	require.NoError(t, f.svc.Unredeem(ctx, owner, uc.ID, credit.ID))
	require.Empty(t, f.store.rowsFor(uc.ID, credit.ID))

	for n := 0; n < 2; n++ {
		list, err := f.svc.ListBenefits(ctx, owner, uc.ID, benefits.ListOptions{})
		require.NoError(t, err)
		a := findAvailability(list, credit.ID)
		require.NotNil(t, a)
		assert.False(t, a.IsRedeemed)
		assert.True(t, money("10").Equal(a.AmountRemaining), "got %s", a.AmountRemaining)
		assert.True(t, a.AutoRedeem)
	}
	assert.Empty(t, f.store.rowsFor(uc.ID, credit.ID), "reads do not write")

	// re-enabling the flag in the same period is an explicit request
	_, err = f.svc.UpdatePreference(ctx, owner, uc.ID, credit.ID, benefits.PreferenceUpdate{AutoRedeem: boolPtr(false)})
	require.NoError(t, err)
	_, err = f.svc.UpdatePreference(ctx, owner, uc.ID, credit.ID, benefits.PreferenceUpdate{AutoRedeem: boolPtr(true)})
	require.NoError(t, err)
	assert.Len(t, f.store.rowsFor(uc.ID, credit.ID), 1)

	require.NoError(t, f.svc.Unredeem(ctx, owner, uc.ID, credit.ID))

	// the next period is materialized once
	f.setNow("2024-06-02")
	list, err := f.svc.ListBenefits(ctx, owner, uc.ID, benefits.ListOptions{})
	require.NoError(t, err)
	a := findAvailability(list, credit.ID)
	require.NotNil(t, a)
	assert.True(t, a.IsRedeemed)
	rows := f.store.rowsFor(uc.ID, credit.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, schedule.Key{Year: 2024, Month: 6}, rows[0].Period)
}

func TestListBenefitsNotYetOpen(t *testing.T) {
	f := newFixture(t, "2024-05-10")
	credit := newBenefit("Dining", "10", schedule.Monthly)
	future := f.hold(f.card("Gold", "250", credit), "2024-07-01")
	lounge := newBenefit("Lounge", "50", schedule.CalendarYear)
	open := f.hold(f.card("Green", "150", lounge), "2024-05-10")
	ctx := context.Background()

	list, err := f.svc.ListBenefits(ctx, owner, future.ID, benefits.ListOptions{})
	require.NoError(t, err)
	a := findAvailability(list, credit.ID)
	require.NotNil(t, a)
	assert.True(t, a.NotYetOpen)
	assert.False(t, a.IsRedeemed)

	list, err = f.svc.ListBenefits(ctx, owner, open.ID, benefits.ListOptions{})
	require.NoError(t, err)
	a = findAvailability(list, lounge.ID)
	require.NotNil(t, a)
	assert.False(t, a.NotYetOpen, "open date is inclusive")

	// auto-redeem waits for the card to open
	_, err = f.svc.UpdatePreference(ctx, owner, future.ID, credit.ID, benefits.PreferenceUpdate{AutoRedeem: boolPtr(true)})
	require.NoError(t, err)
	assert.Empty(t, f.store.rowsFor(future.ID, credit.ID))
}

func TestOverlayAutoRedeemWritesNothing(t *testing.T) {
	f := newFixture(t, "2024-05-10", benefits.WithAutoRedeemMode(benefits.AutoRedeemOverlay))
	credit := newBenefit("Dining", "10", schedule.Monthly)
	uc := f.hold(f.card("Gold", "250", credit), "2023-01-15")
	ctx := context.Background()

	_, err := f.svc.UpdatePreference(ctx, owner, uc.ID, credit.ID, benefits.PreferenceUpdate{AutoRedeem: boolPtr(true)})
	require.NoError(t, err)

	list, err := f.svc.ListBenefits(ctx, owner, uc.ID, benefits.ListOptions{})
	require.NoError(t, err)
	a := findAvailability(list, credit.ID)
	require.NotNil(t, a)
	assert.True(t, a.AutoRedeem)
	assert.Empty(t, f.store.rowsFor(uc.ID, credit.ID))
}

func TestParseAutoRedeemMode(t *testing.T) {
	tests := []struct {
		in      string
		want    benefits.AutoRedeemMode
		wantErr bool
	}{
		{in: "", want: benefits.AutoRedeemEager},
		{in: " Overlay ", want: benefits.AutoRedeemOverlay},
		{in: "eager", want: benefits.AutoRedeemEager},
		{in: "lazy", wantErr: true},
	}
	for _, tt := range tests {
		got, err := benefits.ParseAutoRedeemMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
