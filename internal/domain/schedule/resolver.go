package schedule

import (
	"fmt"
	"time"
)

// Resolve maps a schedule, a reference day and the card's open date to the
// period containing the reference day. A reference day before the open date
// resolves to the period containing the open date.
func Resolve(kind Kind, ref, anchor time.Time) (Period, error) {
	ref, anchor = Date(ref), Date(anchor)
	if ref.Before(anchor) {
		ref = anchor
	}

	year, month := ref.Year(), int(ref.Month())

	var p Period
	switch kind {
	case CalendarYear:
		p = Period{
			Key:   Key{Year: year},
			Start: day(year, 1, 1),
			End:   day(year+1, 1, 1),
		}
	case CardYear:
		start := anniversary(anchor, year)
		if start.After(ref) {
			start = anniversary(anchor, year-1)
		}
		p = Period{
			Key:   Key{Year: start.Year()},
			Start: start,
			End:   anniversary(anchor, start.Year()+1),
		}
	case Monthly:
		p = Period{
			Key:   Key{Year: year, Month: month},
			Start: day(year, month, 1),
			End:   day(year, month+1, 1),
		}
	case Quarterly:
		q := (month + 2) / 3
		first := (q-1)*3 + 1
		p = Period{
			Key:   Key{Year: year, Quarter: q},
			Start: day(year, first, 1),
			End:   day(year, first+3, 1),
		}
	case Biannual:
		h, first := 1, 1
		if month > 6 {
			h, first = 2, 7
		}
		p = Period{
			Key:   Key{Year: year, Half: h},
			Start: day(year, first, 1),
			End:   day(year, first+6, 1),
		}
	case OneTime:
		p = Period{Key: Lifetime, Start: anchor}
	default:
		return Period{}, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}

	p.Kind = kind
	if !p.Unbounded() {
		resets := p.End
		p.ResetsAt = &resets
	}
	return p, nil
}

// Next returns the period that follows p. Unbounded periods have no successor.
func Next(p Period, anchor time.Time) (Period, bool) {
	if p.Unbounded() {
		return Period{}, false
	}
	next, err := Resolve(p.Kind, p.End, anchor)
	if err != nil {
		return Period{}, false
	}
	return next, true
}

// Enumerate lists every period of the schedule that overlaps the closed day
// range [from, to], in order. Periods before the open date are never listed.
func Enumerate(kind Kind, anchor, from, to time.Time) ([]Period, error) {
	from, to, anchor = Date(from), Date(to), Date(anchor)
	if from.Before(anchor) {
		from = anchor
	}
	if to.Before(from) {
		return nil, nil
	}

	p, err := Resolve(kind, from, anchor)
	if err != nil {
		return nil, err
	}

	var periods []Period
	for {
		periods = append(periods, p)
		next, ok := Next(p, anchor)
		if !ok || next.Start.After(to) {
			return periods, nil
		}
		p = next
	}
}

// anniversary is the anchor's month and day in the given year. A Feb 29
// anchor falls on Feb 28 in non-leap years.
func anniversary(anchor time.Time, year int) time.Time {
	m, d := anchor.Month(), anchor.Day()
	if m == time.February && d == 29 && !isLeap(year) {
		d = 28
	}
	return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
}

// day normalizes month overflow, so day(2024, 13, 1) is 2025-01-01.
func day(year, month, d int) time.Time {
	return time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
}
