package benefits

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
)

// cardSearchItems implements fuzzy.Source over card names and issuers.
type cardSearchItems []*Card

func (items cardSearchItems) Len() int {
	return len(items)
}

func (items cardSearchItems) String(i int) string {
	return strings.ToLower(items[i].Issuer + " " + items[i].Name)
}

// ListCatalog lists every card, or the fuzzy matches for query ranked by score.
func (s *service) ListCatalog(ctx context.Context, query string) ([]*Card, error) {
	cards, err := s.catalog.ListCards(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return cards, nil
	}

	matches := fuzzy.FindFrom(query, cardSearchItems(cards))
	results := make([]*Card, len(matches))
	for i, match := range matches {
		results[i] = cards[match.Index]
	}
	return results, nil
}

func (s *service) GetCatalogCard(ctx context.Context, id uuid.UUID) (*Card, error) {
	return s.catalog.GetCard(ctx, id)
}
