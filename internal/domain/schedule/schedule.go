package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind is the reset schedule of a benefit.
type Kind string

const (
	CalendarYear Kind = "calendar_year"
	CardYear     Kind = "card_year"
	Monthly      Kind = "monthly"
	Quarterly    Kind = "quarterly"
	Biannual     Kind = "biannual"
	OneTime      Kind = "one_time"
)

var ErrUnknownKind = errors.New("unknown schedule kind")

// Kinds lists every supported schedule in display order.
var Kinds = []Kind{CalendarYear, CardYear, Monthly, Quarterly, Biannual, OneTime}

func (k Kind) Valid() bool {
	switch k {
	case CalendarYear, CardYear, Monthly, Quarterly, Biannual, OneTime:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind accepts the stored form of a schedule, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// PeriodsPerYear is the number of full periods a schedule has in one year.
// One-time benefits count as a single period.
func PeriodsPerYear(k Kind) int {
	switch k {
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Biannual:
		return 2
	default:
		return 1
	}
}

// Key identifies one period instance. Fields that do not apply to the
// schedule are zero. OneTime uses the zero Key.
type Key struct {
	Year    int
	Month   int
	Quarter int
	Half    int
}

// Lifetime is the key of the single one_time period.
var Lifetime = Key{}

func (k Key) String() string {
	switch {
	case k == Lifetime:
		return "lifetime"
	case k.Month != 0:
		return fmt.Sprintf("%04d-M%02d", k.Year, k.Month)
	case k.Quarter != 0:
		return fmt.Sprintf("%04d-Q%d", k.Year, k.Quarter)
	case k.Half != 0:
		return fmt.Sprintf("%04d-H%d", k.Year, k.Half)
	default:
		return fmt.Sprintf("%04d", k.Year)
	}
}

// Period is a resolved period instance with [Start, End) bounds.
// End is zero for periods that never reset.
type Period struct {
	Kind     Kind       `json:"kind"`
	Key      Key        `json:"-"`
	Start    time.Time  `json:"start"`
	End      time.Time  `json:"end,omitempty"`
	ResetsAt *time.Time `json:"resets_at"`
}

func (p Period) Unbounded() bool {
	return p.End.IsZero()
}

// Contains reports whether day d falls inside the period.
func (p Period) Contains(d time.Time) bool {
	d = Date(d)
	if d.Before(p.Start) {
		return false
	}
	return p.Unbounded() || d.Before(p.End)
}

// Overlaps reports whether the period intersects the closed day range [from, to].
func (p Period) Overlaps(from, to time.Time) bool {
	from, to = Date(from), Date(to)
	if to.Before(from) {
		return false
	}
	if to.Before(p.Start) {
		return false
	}
	return p.Unbounded() || from.Before(p.End)
}

// Date truncates t to a civil date at UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
