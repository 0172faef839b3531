package benefits

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/cardwise/perktrack/internal/domain/schedule"
)

func validYear(year int) error {
	if year < 1900 || year > 9999 {
		return invalid("year", "%d is out of range", year)
	}
	return nil
}

func (s *service) CardSummary(ctx context.Context, userID string, userCardID uuid.UUID, year int) (summary *CardSummary, err error) {
	ctx, span := s.startSpan(ctx, "CardSummary",
		attribute.String("user_card_id", userCardID.String()),
		attribute.Int("year", year))
	defer func() { endSpan(span, err) }()

	if err := validYear(year); err != nil {
		return nil, err
	}
	p, err := s.loadCard(ctx, userID, userCardID)
	if err != nil {
		return nil, err
	}
	return summarizeCard(p, p.cards[0], year, s.now(), s.autoRedeem), nil
}

// AnnualSummary totals every card the user holds for a calendar year. Hidden
// benefits are left out and each card's annual fee is counted once.
func (s *service) AnnualSummary(ctx context.Context, userID string, year int) (summary *AnnualSummary, err error) {
	ctx, span := s.startSpan(ctx, "AnnualSummary", attribute.Int("year", year))
	defer func() { endSpan(span, err) }()

	if err := validYear(year); err != nil {
		return nil, err
	}
	p, err := s.loadPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	cards := make([]*CardSummary, len(p.cards))
	var g errgroup.Group
	for i, uc := range p.cards {
		i, uc := i, uc
		g.Go(func() error {
			cards[i] = summarizeCard(p, uc, year, now, s.autoRedeem)
			return nil
		})
	}
	_ = g.Wait()

	summary = &AnnualSummary{
		Year:            year,
		TotalRedeemed:   decimal.Zero,
		TotalAvailable:  decimal.Zero,
		Outstanding:     decimal.Zero,
		TotalAnnualFees: decimal.Zero,
	}
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	for i, cs := range cards {
		uc := p.cards[i]
		if schedule.Date(uc.CardOpenDate).After(yearEnd) {
			continue
		}
		summary.Cards++
		summary.TotalAnnualFees = summary.TotalAnnualFees.Add(uc.Card.Fee())
		summary.TotalRedeemed = summary.TotalRedeemed.Add(cs.TotalRedeemed)
		summary.TotalAvailable = summary.TotalAvailable.Add(cs.TotalAvailable)
		summary.RedeemedCount += cs.RedeemedCount
		summary.TotalCount += cs.TotalCount
	}
	summary.Outstanding = summary.TotalAvailable.Sub(summary.TotalRedeemed)
	return summary, nil
}

// summarizeCard walks every period of every benefit that overlaps
// [max(open date, Jan 1), min(today, Dec 31)] of the year. A card_year
// period counts only in the calendar year it starts. It only reads;
// auto-redeem is applied as an overlay on a current period that has not been
// materialized.
func summarizeCard(p *portfolio, uc *UserCard, year int, now time.Time, mode AutoRedeemMode) *CardSummary {
	today := schedule.Date(now)
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	if open := schedule.Date(uc.CardOpenDate); open.After(from) {
		from = open
	}
	if today.Before(to) {
		to = today
	}

	summary := &CardSummary{
		UserCard:       uc,
		Year:           year,
		Benefits:       make([]*BenefitSummary, 0, len(uc.Card.Benefits)),
		TotalRedeemed:  decimal.Zero,
		TotalAvailable: decimal.Zero,
	}

	for _, b := range uc.Card.Benefits {
		bs := &BenefitSummary{
			Benefit:       b,
			RedeemedValue: decimal.Zero,
			TotalValue:    decimal.Zero,
		}
		pref := p.prefs.get(uc.ID, b.ID)
		if pref != nil {
			bs.Hidden = pref.Hidden
			bs.AutoRedeem = pref.AutoRedeem
		}

		periods, err := schedule.Enumerate(b.Schedule, uc.CardOpenDate, from, to)
		if err != nil {
			slog.Warn("Skipping benefit with unknown schedule in summary",
				slog.String("benefit_id", b.ID.String()),
				slog.String("schedule", string(b.Schedule)))
		}
		for _, period := range periods {
			if period.Kind == schedule.CardYear && period.Key.Year != year {
				continue
			}
			bs.TotalCount++
			bs.TotalValue = bs.TotalValue.Add(b.Value)

			redeemed := decimal.Zero
			if row := p.ledger.get(uc.ID, b.ID, period.Key); row != nil {
				redeemed = row.AmountRedeemed
			}
			if bs.AutoRedeem && period.Contains(today) &&
				(mode == AutoRedeemOverlay || pref.AutoRedeemedPeriod != period.Key.String()) {
				redeemed = b.Value
			}
			if redeemed.IsPositive() {
				bs.RedeemedCount++
				bs.RedeemedValue = bs.RedeemedValue.Add(redeemed)
			}
		}

		summary.Benefits = append(summary.Benefits, bs)
		if bs.Hidden {
			continue
		}
		summary.RedeemedCount += bs.RedeemedCount
		summary.TotalCount += bs.TotalCount
		summary.TotalRedeemed = summary.TotalRedeemed.Add(bs.RedeemedValue)
		summary.TotalAvailable = summary.TotalAvailable.Add(bs.TotalValue)
	}

	summary.Outstanding = summary.TotalAvailable.Sub(summary.TotalRedeemed)
	return summary
}
