package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolve(t *testing.T) {
	open := d("2022-03-15")

	tests := []struct {
		name      string
		kind      Kind
		ref       time.Time
		anchor    time.Time
		wantKey   Key
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "calendar year",
			kind:      CalendarYear,
			ref:       d("2024-07-04"),
			anchor:    open,
			wantKey:   Key{Year: 2024},
			wantStart: d("2024-01-01"),
			wantEnd:   d("2025-01-01"),
		},
		{
			name:      "card year before anniversary",
			kind:      CardYear,
			ref:       d("2024-03-10"),
			anchor:    open,
			wantKey:   Key{Year: 2023},
			wantStart: d("2023-03-15"),
			wantEnd:   d("2024-03-15"),
		},
		{
			name:      "card year after anniversary",
			kind:      CardYear,
			ref:       d("2024-03-20"),
			anchor:    open,
			wantKey:   Key{Year: 2024},
			wantStart: d("2024-03-15"),
			wantEnd:   d("2025-03-15"),
		},
		{
			name:      "card year on anniversary",
			kind:      CardYear,
			ref:       d("2024-03-15"),
			anchor:    open,
			wantKey:   Key{Year: 2024},
			wantStart: d("2024-03-15"),
			wantEnd:   d("2025-03-15"),
		},
		{
			name:      "card year leap anchor in common year",
			kind:      CardYear,
			ref:       d("2023-03-01"),
			anchor:    d("2020-02-29"),
			wantKey:   Key{Year: 2023},
			wantStart: d("2023-02-28"),
			wantEnd:   d("2024-02-29"),
		},
		{
			name:      "monthly december",
			kind:      Monthly,
			ref:       d("2024-12-31"),
			anchor:    open,
			wantKey:   Key{Year: 2024, Month: 12},
			wantStart: d("2024-12-01"),
			wantEnd:   d("2025-01-01"),
		},
		{
			name:      "quarterly third quarter",
			kind:      Quarterly,
			ref:       d("2024-08-19"),
			anchor:    open,
			wantKey:   Key{Year: 2024, Quarter: 3},
			wantStart: d("2024-07-01"),
			wantEnd:   d("2024-10-01"),
		},
		{
			name:      "biannual first half",
			kind:      Biannual,
			ref:       d("2024-06-30"),
			anchor:    open,
			wantKey:   Key{Year: 2024, Half: 1},
			wantStart: d("2024-01-01"),
			wantEnd:   d("2024-07-01"),
		},
		{
			name:      "biannual second half",
			kind:      Biannual,
			ref:       d("2024-07-01"),
			anchor:    open,
			wantKey:   Key{Year: 2024, Half: 2},
			wantStart: d("2024-07-01"),
			wantEnd:   d("2025-01-01"),
		},
		{
			name:      "reference before open date",
			kind:      Monthly,
			ref:       d("2021-11-02"),
			anchor:    open,
			wantKey:   Key{Year: 2022, Month: 3},
			wantStart: d("2022-03-01"),
			wantEnd:   d("2022-04-01"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Resolve(tt.kind, tt.ref, tt.anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, p.Key)
			assert.Equal(t, tt.wantStart, p.Start)
			assert.Equal(t, tt.wantEnd, p.End)
			require.NotNil(t, p.ResetsAt)
			assert.Equal(t, tt.wantEnd, *p.ResetsAt)
			assert.True(t, p.Contains(tt.ref) || tt.ref.Before(tt.anchor))
		})
	}
}

func TestResolveOneTime(t *testing.T) {
	open := d("2022-03-15")

	for _, ref := range []time.Time{d("2020-01-01"), open, d("2031-09-09")} {
		p, err := Resolve(OneTime, ref, open)
		require.NoError(t, err)
		assert.Equal(t, Lifetime, p.Key)
		assert.Equal(t, open, p.Start)
		assert.True(t, p.Unbounded())
		assert.Nil(t, p.ResetsAt)

		_, ok := Next(p, open)
		assert.False(t, ok)
	}
}

func TestResolveUnknownKind(t *testing.T) {
	_, err := Resolve(Kind("weekly"), d("2024-01-01"), d("2024-01-01"))
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = ParseKind("fortnightly")
	require.ErrorIs(t, err, ErrUnknownKind)

	k, err := ParseKind(" Card_Year ")
	require.NoError(t, err)
	assert.Equal(t, CardYear, k)
}

func TestConsecutivePeriodsAreContiguous(t *testing.T) {
	anchors := []time.Time{d("2022-03-15"), d("2020-02-29"), d("2019-12-31"), d("2021-01-01")}

	for _, kind := range Kinds {
		if kind == OneTime {
			continue
		}
		for _, anchor := range anchors {
			t.Run(string(kind)+"/"+anchor.Format(time.DateOnly), func(t *testing.T) {
				p, err := Resolve(kind, anchor, anchor)
				require.NoError(t, err)
				require.True(t, p.Contains(anchor))

				for i := 0; i < 60; i++ {
					next, ok := Next(p, anchor)
					require.True(t, ok)
					assert.Equal(t, p.End, next.Start, "gap or overlap after %s", p.Key)
					assert.True(t, next.Start.Before(next.End))
					assert.NotEqual(t, p.Key, next.Key)

					// every day of the period resolves back to the same period
					for _, probe := range []time.Time{p.Start, p.End.AddDate(0, 0, -1)} {
						again, err := Resolve(kind, probe, anchor)
						require.NoError(t, err)
						assert.Equal(t, p.Key, again.Key)
					}
					p = next
				}
			})
		}
	}
}

func TestEnumerate(t *testing.T) {
	open := d("2024-05-20")

	tests := []struct {
		name string
		kind Kind
		from time.Time
		to   time.Time
		want int
	}{
		{name: "monthly partial first year", kind: Monthly, from: d("2024-01-01"), to: d("2024-12-31"), want: 8},
		{name: "monthly full year", kind: Monthly, from: d("2025-01-01"), to: d("2025-12-31"), want: 12},
		{name: "monthly year to date", kind: Monthly, from: d("2025-01-01"), to: d("2025-03-02"), want: 3},
		{name: "quarterly partial", kind: Quarterly, from: d("2024-01-01"), to: d("2024-12-31"), want: 3},
		{name: "biannual partial", kind: Biannual, from: d("2024-01-01"), to: d("2024-12-31"), want: 2},
		{name: "card year spans two cycles", kind: CardYear, from: d("2025-01-01"), to: d("2025-12-31"), want: 2},
		{name: "calendar year", kind: CalendarYear, from: d("2025-01-01"), to: d("2025-12-31"), want: 1},
		{name: "one time", kind: OneTime, from: d("2027-01-01"), to: d("2027-12-31"), want: 1},
		{name: "window before open date", kind: Monthly, from: d("2023-01-01"), to: d("2023-12-31"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods, err := Enumerate(tt.kind, open, tt.from, tt.to)
			require.NoError(t, err)
			assert.Len(t, periods, tt.want)
			for _, p := range periods {
				assert.True(t, p.Overlaps(tt.from, tt.to))
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "lifetime", Lifetime.String())
	assert.Equal(t, "2024-M03", Key{Year: 2024, Month: 3}.String())
	assert.Equal(t, "2024-Q4", Key{Year: 2024, Quarter: 4}.String())
	assert.Equal(t, "2024-H1", Key{Year: 2024, Half: 1}.String())
	assert.Equal(t, "2024", Key{Year: 2024}.String())
}
