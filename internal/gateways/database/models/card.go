package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/domain/schedule"
)

type Card struct {
	bun.BaseModel `bun:"table:cards,alias:c"`

	ID        uuid.UUID           `bun:"id,pk,type:uuid"`
	Name      string              `bun:"name,notnull"`
	Issuer    string              `bun:"issuer,notnull"`
	AnnualFee decimal.NullDecimal `bun:"annual_fee,type:numeric(10,2)"`
	ImageURL  string              `bun:"image_url,type:text,default:''"`
	CreatedAt time.Time           `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time           `bun:"updated_at,notnull,default:current_timestamp"`

	// Relations
	Benefits []*Benefit `bun:"rel:has-many,join:id=card_id"`
}

type Benefit struct {
	bun.BaseModel `bun:"table:benefits,alias:b"`

	ID          uuid.UUID       `bun:"id,pk,type:uuid"`
	CardID      uuid.UUID       `bun:"card_id,notnull,type:uuid"`
	Name        string          `bun:"name,notnull"`
	Description string          `bun:"description,type:text,default:''"`
	Value       decimal.Decimal `bun:"value,notnull,type:numeric(10,2)"`
	Schedule    string          `bun:"schedule,notnull"`
	SortOrder   int             `bun:"sort_order,notnull,default:0"`
	CreatedAt   time.Time       `bun:"created_at,notnull,default:current_timestamp"`
}

func (c *Card) ToDomain() *benefits.Card {
	out := &benefits.Card{
		ID:        c.ID,
		Name:      c.Name,
		Issuer:    c.Issuer,
		AnnualFee: c.AnnualFee,
		ImageURL:  c.ImageURL,
		Benefits:  make([]*benefits.Benefit, 0, len(c.Benefits)),
	}
	for _, b := range c.Benefits {
		out.Benefits = append(out.Benefits, b.ToDomain())
	}
	return out
}

func (b *Benefit) ToDomain() *benefits.Benefit {
	return &benefits.Benefit{
		ID:          b.ID,
		CardID:      b.CardID,
		Name:        b.Name,
		Description: b.Description,
		Value:       b.Value,
		Schedule:    schedule.Kind(b.Schedule),
	}
}

func CardFromDomain(c *benefits.Card) *Card {
	out := &Card{
		ID:        c.ID,
		Name:      c.Name,
		Issuer:    c.Issuer,
		AnnualFee: c.AnnualFee,
		ImageURL:  c.ImageURL,
	}
	for i, b := range c.Benefits {
		out.Benefits = append(out.Benefits, &Benefit{
			ID:          b.ID,
			CardID:      c.ID,
			Name:        b.Name,
			Description: b.Description,
			Value:       b.Value,
			Schedule:    string(b.Schedule),
			SortOrder:   i,
		})
	}
	return out
}
