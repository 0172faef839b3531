package benefits_test

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/domain/schedule"
)

// memStore is an in-memory store with row locks that behave like
// SELECT ... FOR UPDATE: a row can only be locked by one transaction, and
// a period with no row yet is not locked at all.
type memStore struct {
	mu        sync.Mutex
	cards     map[uuid.UUID]*benefits.Card
	userCards map[uuid.UUID]*benefits.UserCard
	rows      map[rowKey]*memRow
	prefs     map[prefKey]*benefits.Preference
}

type rowKey struct {
	userCard uuid.UUID
	benefit  uuid.UUID
	period   schedule.Key
}

type prefKey struct {
	userCard uuid.UUID
	benefit  uuid.UUID
}

type memRow struct {
	lock sync.Mutex
	r    benefits.Redemption
}

func newMemStore() *memStore {
	return &memStore{
		cards:     map[uuid.UUID]*benefits.Card{},
		userCards: map[uuid.UUID]*benefits.UserCard{},
		rows:      map[rowKey]*memRow{},
		prefs:     map[prefKey]*benefits.Preference{},
	}
}

func (s *memStore) repositories() benefits.Repositories {
	return benefits.Repositories{
		Catalog:     memCatalog{s},
		UserCards:   memUserCards{s},
		Ledger:      memLedger{s},
		Preferences: memPrefs{s},
	}
}

func (s *memStore) addCard(c *benefits.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards[c.ID] = c
}

func (s *memStore) addUserCard(uc *benefits.UserCard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userCards[uc.ID] = uc
}

func (s *memStore) putRow(r benefits.Redemption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[rowKey{r.UserCardID, r.BenefitID, r.Period}] = &memRow{r: r}
}

func (s *memStore) rowsFor(userCardID, benefitID uuid.UUID) []benefits.Redemption {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []benefits.Redemption
	for k, row := range s.rows {
		if k.userCard == userCardID && k.benefit == benefitID {
			out = append(out, row.r)
		}
	}
	return out
}

type memCatalog struct{ s *memStore }

func (c memCatalog) ListCards(context.Context) ([]*benefits.Card, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	out := make([]*benefits.Card, 0, len(c.s.cards))
	for _, card := range c.s.cards {
		out = append(out, card)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (c memCatalog) GetCard(_ context.Context, id uuid.UUID) (*benefits.Card, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	card, ok := c.s.cards[id]
	if !ok {
		return nil, &benefits.NotFoundError{Entity: "card", ID: id}
	}
	return card, nil
}

func (c memCatalog) GetCardsByIDs(_ context.Context, ids []uuid.UUID) ([]*benefits.Card, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	var out []*benefits.Card
	for _, id := range ids {
		if card, ok := c.s.cards[id]; ok {
			out = append(out, card)
		}
	}
	return out, nil
}

type memUserCards struct{ s *memStore }

func (u memUserCards) Create(_ context.Context, uc *benefits.UserCard) error {
	u.s.addUserCard(uc)
	return nil
}

func (u memUserCards) Get(_ context.Context, userID string, id uuid.UUID) (*benefits.UserCard, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	uc, ok := u.s.userCards[id]
	if !ok || uc.UserID != userID {
		return nil, &benefits.NotFoundError{Entity: "user card", ID: id}
	}
	cp := *uc
	return &cp, nil
}

func (u memUserCards) ListByUser(_ context.Context, userID string) ([]*benefits.UserCard, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	var out []*benefits.UserCard
	for _, uc := range u.s.userCards {
		if uc.UserID == userID {
			cp := *uc
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (u memUserCards) Update(_ context.Context, uc *benefits.UserCard) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	cp := *uc
	cp.Card = nil
	u.s.userCards[uc.ID] = &cp
	return nil
}

func (u memUserCards) Delete(_ context.Context, userID string, id uuid.UUID) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	uc, ok := u.s.userCards[id]
	if !ok || uc.UserID != userID {
		return &benefits.NotFoundError{Entity: "user card", ID: id}
	}
	delete(u.s.userCards, id)
	for k := range u.s.rows {
		if k.userCard == id {
			delete(u.s.rows, k)
		}
	}
	for k := range u.s.prefs {
		if k.userCard == id {
			delete(u.s.prefs, k)
		}
	}
	return nil
}

type memLedger struct{ s *memStore }

func (l memLedger) InTx(ctx context.Context, fn func(context.Context, benefits.LedgerTx) error) error {
	tx := &memTx{s: l.s}
	err := fn(ctx, tx)
	if err != nil {
		l.s.mu.Lock()
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		l.s.mu.Unlock()
	}
	for _, row := range tx.held {
		row.lock.Unlock()
	}
	return err
}

func (l memLedger) ListByUserCards(_ context.Context, ids []uuid.UUID) ([]*benefits.Redemption, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*benefits.Redemption
	for k, row := range l.s.rows {
		if want[k.userCard] {
			r := row.r
			out = append(out, &r)
		}
	}
	return out, nil
}

func (l memLedger) ListByBenefit(_ context.Context, userCardID, benefitID uuid.UUID) ([]*benefits.Redemption, error) {
	var out []*benefits.Redemption
	for _, r := range l.s.rowsFor(userCardID, benefitID) {
		r := r
		out = append(out, &r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RedeemedAt.After(out[j].RedeemedAt) })
	return out, nil
}

type memTx struct {
	s    *memStore
	held []*memRow
	undo []func()
}

func (t *memTx) LockRedemption(_ context.Context, userCardID, benefitID uuid.UUID, key schedule.Key) (*benefits.Redemption, error) {
	k := rowKey{userCardID, benefitID, key}
	t.s.mu.Lock()
	row := t.s.rows[k]
	t.s.mu.Unlock()
	if row == nil {
		runtime.Gosched()
		return nil, nil
	}

	row.lock.Lock()
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.s.rows[k] != row {
		// deleted or rolled back while we waited
		row.lock.Unlock()
		return nil, nil
	}
	t.held = append(t.held, row)
	r := row.r
	return &r, nil
}

func (t *memTx) InsertRedemption(_ context.Context, r *benefits.Redemption) (bool, error) {
	k := rowKey{r.UserCardID, r.BenefitID, r.Period}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, exists := t.s.rows[k]; exists {
		return false, nil
	}
	row := &memRow{r: *r}
	row.lock.Lock()
	t.held = append(t.held, row)
	t.s.rows[k] = row
	t.undo = append(t.undo, func() { delete(t.s.rows, k) })
	return true, nil
}

func (t *memTx) IncrementRedemption(_ context.Context, id uuid.UUID, amount, limit decimal.Decimal) (bool, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, row := range t.s.rows {
		if row.r.ID != id {
			continue
		}
		next := row.r.AmountRedeemed.Add(amount)
		if next.GreaterThan(limit) {
			return false, nil
		}
		prev := row.r.AmountRedeemed
		row.r.AmountRedeemed = next
		t.undo = append(t.undo, func() { row.r.AmountRedeemed = prev })
		return true, nil
	}
	return false, nil
}

func (t *memTx) DeleteRedemption(_ context.Context, userCardID, benefitID uuid.UUID, key schedule.Key) (int64, error) {
	k := rowKey{userCardID, benefitID, key}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	row, ok := t.s.rows[k]
	if !ok {
		return 0, nil
	}
	delete(t.s.rows, k)
	t.undo = append(t.undo, func() { t.s.rows[k] = row })
	return 1, nil
}

type memPrefs struct{ s *memStore }

func (p memPrefs) Get(_ context.Context, userCardID, benefitID uuid.UUID) (*benefits.Preference, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	pref, ok := p.s.prefs[prefKey{userCardID, benefitID}]
	if !ok {
		return nil, nil
	}
	cp := *pref
	return &cp, nil
}

func (p memPrefs) ListByUserCards(_ context.Context, ids []uuid.UUID) ([]*benefits.Preference, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*benefits.Preference
	for k, pref := range p.s.prefs {
		if want[k.userCard] {
			cp := *pref
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (p memPrefs) Upsert(_ context.Context, userCardID, benefitID uuid.UUID, update benefits.PreferenceUpdate) (*benefits.Preference, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	k := prefKey{userCardID, benefitID}
	pref, ok := p.s.prefs[k]
	if !ok {
		pref = &benefits.Preference{UserCardID: userCardID, BenefitID: benefitID}
		p.s.prefs[k] = pref
	}
	if update.AutoRedeem != nil {
		pref.AutoRedeem = *update.AutoRedeem
	}
	if update.Hidden != nil {
		pref.Hidden = *update.Hidden
	}
	pref.UpdatedAt = time.Now()
	cp := *pref
	return &cp, nil
}

func (p memPrefs) MarkAutoRedeemed(_ context.Context, userCardID, benefitID uuid.UUID, period string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if pref, ok := p.s.prefs[prefKey{userCardID, benefitID}]; ok {
		pref.AutoRedeemedPeriod = period
	}
	return nil
}
