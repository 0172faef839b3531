package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"

	"github.com/cardwise/perktrack/internal/domain/benefits"
)

const (
	cardKeyPrefix = "card:"
	listKey       = "list:all"
)

type cachedEntry struct {
	value     any
	timestamp time.Time
}

// CachedCatalog fronts a catalog repository with an LRU whose entries expire
// after ttl. Catalog data is shared by every user, so cached cards must be
// treated as read-only.
type CachedCatalog struct {
	next  benefits.CatalogRepository
	cache *lru.Cache
	ttl   time.Duration
	now   func() time.Time
}

var _ benefits.CatalogRepository = (*CachedCatalog)(nil)

func NewCachedCatalog(next benefits.CatalogRepository, size int, ttl time.Duration) (*CachedCatalog, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog cache: %w", err)
	}
	return &CachedCatalog{next: next, cache: cache, ttl: ttl, now: time.Now}, nil
}

func (c *CachedCatalog) get(key string) (any, bool) {
	cached, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	entry, ok := cached.(cachedEntry)
	if !ok || c.now().Sub(entry.timestamp) >= c.ttl {
		c.cache.Remove(key)
		return nil, false
	}
	return entry.value, true
}

func (c *CachedCatalog) put(key string, value any) {
	c.cache.Add(key, cachedEntry{value: value, timestamp: c.now()})
}

func (c *CachedCatalog) ListCards(ctx context.Context) ([]*benefits.Card, error) {
	if v, ok := c.get(listKey); ok {
		return append([]*benefits.Card(nil), v.([]*benefits.Card)...), nil
	}
	cards, err := c.next.ListCards(ctx)
	if err != nil {
		return nil, err
	}
	c.put(listKey, cards)
	for _, card := range cards {
		c.put(cardKeyPrefix+card.ID.String(), card)
	}
	return append([]*benefits.Card(nil), cards...), nil
}

func (c *CachedCatalog) GetCard(ctx context.Context, id uuid.UUID) (*benefits.Card, error) {
	key := cardKeyPrefix + id.String()
	if v, ok := c.get(key); ok {
		return v.(*benefits.Card), nil
	}
	card, err := c.next.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}
	c.put(key, card)
	return card, nil
}

func (c *CachedCatalog) GetCardsByIDs(ctx context.Context, ids []uuid.UUID) ([]*benefits.Card, error) {
	out := make([]*benefits.Card, 0, len(ids))
	var missing []uuid.UUID
	for _, id := range ids {
		if v, ok := c.get(cardKeyPrefix + id.String()); ok {
			out = append(out, v.(*benefits.Card))
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return out, nil
	}

	loaded, err := c.next.GetCardsByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, card := range loaded {
		c.put(cardKeyPrefix+card.ID.String(), card)
	}
	return append(out, loaded...), nil
}

// InvalidatePrefix drops every cached entry whose key starts with prefix and
// returns how many were removed. An empty prefix clears the cache.
func (c *CachedCatalog) InvalidatePrefix(prefix string) int {
	if prefix == "" {
		n := c.cache.Len()
		c.cache.Purge()
		return n
	}
	removed := 0
	for _, k := range c.cache.Keys() {
		if key, ok := k.(string); ok && strings.HasPrefix(key, prefix) {
			c.cache.Remove(key)
			removed++
		}
	}
	return removed
}

// Refresh drops cached cards and list results so the next read goes to the
// database. It is called after catalog imports and on a timer.
func (c *CachedCatalog) Refresh() {
	cards := c.InvalidatePrefix(cardKeyPrefix)
	lists := c.InvalidatePrefix("list:")
	slog.Debug("Catalog cache refreshed",
		slog.Int("cards", cards),
		slog.Int("lists", lists))
}
