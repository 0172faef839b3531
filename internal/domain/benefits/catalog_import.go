package benefits

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cardwise/perktrack/internal/domain/schedule"
)

// catalogNamespace derives stable ids for catalog entries that omit one, so
// importing the same file twice updates rows instead of duplicating them.
var catalogNamespace = uuid.MustParse("6f1c2a8e-4b1d-4f7e-9a51-0c3e5d2b7a90")

// DecodeCatalog reads a JSON array of cards with nested benefits and checks
// every entry before anything is written.
func DecodeCatalog(r io.Reader) ([]*Card, error) {
	var cards []*Card
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cards); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[uuid.UUID]string, len(cards))
	for i, c := range cards {
		if err := normalizeCard(c); err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		if prev, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("card %d: duplicate id %s (also %q)", i, c.ID, prev)
		}
		seen[c.ID] = c.Name
	}
	return cards, nil
}

func normalizeCard(c *Card) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Issuer = strings.TrimSpace(c.Issuer)
	if c.Name == "" {
		return invalid("name", "is required")
	}
	if c.Issuer == "" {
		return invalid("issuer", "is required")
	}
	if c.AnnualFee.Valid && (c.AnnualFee.Decimal.IsNegative() || !isMoney(c.AnnualFee.Decimal)) {
		return invalid("annual_fee", "must be a non-negative amount with at most %d decimals", MoneyPlaces)
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.NewSHA1(catalogNamespace, []byte("card:"+strings.ToLower(c.Issuer+"/"+c.Name)))
	}

	names := make(map[string]bool, len(c.Benefits))
	for j, b := range c.Benefits {
		b.Name = strings.TrimSpace(b.Name)
		if b.Name == "" {
			return fmt.Errorf("benefit %d: %w", j, invalid("name", "is required"))
		}
		if names[strings.ToLower(b.Name)] {
			return fmt.Errorf("benefit %d: %w", j, invalid("name", "%q appears twice", b.Name))
		}
		names[strings.ToLower(b.Name)] = true

		if b.Value.IsNegative() || !isMoney(b.Value) {
			return fmt.Errorf("benefit %q: %w", b.Name, invalid("value", "must be a non-negative amount with at most %d decimals", MoneyPlaces))
		}
		kind, err := schedule.ParseKind(string(b.Schedule))
		if err != nil {
			return fmt.Errorf("benefit %q: %w", b.Name, invalid("schedule", "%v", err))
		}
		b.Schedule = kind
		b.CardID = c.ID
		if b.ID == uuid.Nil {
			b.ID = uuid.NewSHA1(catalogNamespace, []byte("benefit:"+c.ID.String()+"/"+strings.ToLower(b.Name)))
		}
	}
	return nil
}

func isMoney(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyPlaces))
}
