// Package cart owns the canonical cart state. The Store is the only
// component that touches the underlying storage keys; every consumer goes
// through its operations and, if it wants to stay fresh, through Subscribe.
//
// Storage failures never reach callers. A cart that cannot be read is an
// empty cart, a cart that cannot be written stays unwritten, and both get
// logged. Availability of the shopping flow wins over durability here;
// callers must not be forced into error branches for a broken slot.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/example/moldz3d/pkg/models"
	"github.com/example/moldz3d/pkg/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultCartKey       = "moldz3d_cart"
	DefaultLegacyCartKey = "polyforge_cart"
)

type Options struct {
	CartKey       string
	LegacyCartKey string
}

type Store struct {
	backend storage.Store
	logger  *zap.Logger
	opts    Options

	// origin identifies this store instance in cross-process change
	// notifications, so it can skip its own writes.
	origin string

	mu          sync.Mutex
	subscribers map[int]func([]models.CartLine)
	nextSub     int
}

func New(backend storage.Store, logger *zap.Logger, opts Options) *Store {
	if opts.CartKey == "" {
		opts.CartKey = DefaultCartKey
	}
	if opts.LegacyCartKey == "" {
		opts.LegacyCartKey = DefaultLegacyCartKey
	}

	return &Store{
		backend:     backend,
		logger:      logger,
		opts:        opts,
		origin:      uuid.New().String(),
		subscribers: make(map[int]func([]models.CartLine)),
	}
}

// migrateLegacy moves the deprecated slot forward when the current one is
// empty. It runs defensively before every read and write, so whichever
// operation touches the cart first heals the slot. Errors are ignored; the
// next access retries.
func (s *Store) migrateLegacy(ctx context.Context) {
	if _, err := s.backend.Get(ctx, s.opts.CartKey); err != storage.ErrNotFound {
		return
	}

	legacy, err := s.backend.Get(ctx, s.opts.LegacyCartKey)
	if err != nil {
		return
	}

	if err := s.backend.Set(ctx, s.opts.CartKey, legacy); err != nil {
		return
	}
	s.backend.Del(ctx, s.opts.LegacyCartKey)

	s.logger.Info("Migrated legacy cart",
		zap.String("from", s.opts.LegacyCartKey),
		zap.String("to", s.opts.CartKey))
}

// Items returns the persisted cart. A missing or unreadable slot and a
// corrupted payload all degrade to an empty cart.
func (s *Store) Items(ctx context.Context) []models.CartLine {
	s.migrateLegacy(ctx)

	raw, err := s.backend.Get(ctx, s.opts.CartKey)
	if err != nil {
		if err != storage.ErrNotFound {
			s.logger.Warn("Failed to read cart", zap.Error(err))
		}
		return nil
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		s.logger.Warn("Discarding corrupted cart payload", zap.Error(err))
		return nil
	}

	return lines
}

// Save persists the given lines, overwriting the slot. A failed write is
// logged and swallowed; the caller's view is not rolled back, which can
// leave memory and slot diverged until the next successful write.
func (s *Store) Save(ctx context.Context, lines []models.CartLine) {
	s.migrateLegacy(ctx)
	s.save(ctx, lines)
}

func (s *Store) save(ctx context.Context, lines []models.CartLine) {
	data, err := json.Marshal(lines)
	if err != nil {
		s.logger.Warn("Failed to serialize cart", zap.Error(err))
		return
	}

	if err := s.backend.Set(ctx, s.opts.CartKey, string(data)); err != nil {
		s.logger.Warn("Failed to save cart", zap.Error(err))
	}

	s.broadcast(ctx, lines)
}

// Add puts a product into the cart, incrementing the quantity of an
// existing line with the same key instead of duplicating it. There is no
// upper bound on quantity.
func (s *Store) Add(ctx context.Context, product models.Product, quantity int) []models.CartLine {
	return s.AddVariant(ctx, product, nil, quantity)
}

// AddVariant is Add with a selected variant. The variant's price and
// images are snapshotted into the line, and the line is keyed by the
// (product, variant) pair so two variants of one product stay distinct.
func (s *Store) AddVariant(ctx context.Context, product models.Product, variant *models.Variant, quantity int) []models.CartLine {
	if quantity < 1 {
		quantity = 1
	}

	lines := s.Items(ctx)
	added := models.NewCartLine(product, variant, quantity)

	found := false
	for i := range lines {
		if lines[i].Key() == added.Key() {
			lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, added)
	}

	s.save(ctx, lines)
	return lines
}

// Remove drops the line with the given key. Removing an absent key is a
// no-op: nothing is persisted and no notification fires.
func (s *Store) Remove(ctx context.Context, key string) []models.CartLine {
	lines := s.Items(ctx)

	kept := lines[:0]
	for _, line := range lines {
		if line.Key() != key {
			kept = append(kept, line)
		}
	}

	if len(kept) == len(lines) {
		return lines
	}

	s.save(ctx, kept)
	return kept
}

// UpdateQuantity sets a line's quantity to max(1, quantity). This path can
// never empty a line out of the cart; deletion goes through Remove. An
// absent key returns the cart unchanged.
func (s *Store) UpdateQuantity(ctx context.Context, key string, quantity int) []models.CartLine {
	lines := s.Items(ctx)

	for i := range lines {
		if lines[i].Key() == key {
			if quantity < 1 {
				quantity = 1
			}
			lines[i].Quantity = quantity
			s.save(ctx, lines)
			break
		}
	}

	return lines
}

// Clear deletes the persisted cart, current and legacy keys both.
func (s *Store) Clear(ctx context.Context) []models.CartLine {
	if err := s.backend.Del(ctx, s.opts.CartKey, s.opts.LegacyCartKey); err != nil {
		s.logger.Warn("Failed to clear cart", zap.Error(err))
	}

	s.broadcast(ctx, nil)
	return nil
}

// Total is the sum of price times quantity over all lines. Formatting and
// rounding are the caller's business.
func (s *Store) Total(ctx context.Context) float64 {
	var total float64
	for _, line := range s.Items(ctx) {
		total += line.Subtotal()
	}
	return total
}

// Count is the number of units in the cart, not the number of lines.
func (s *Store) Count(ctx context.Context) int {
	var count int
	for _, line := range s.Items(ctx) {
		count += line.Quantity
	}
	return count
}

// Subscribe registers a callback invoked synchronously after every
// mutation with the new cart contents. The returned func cancels the
// subscription.
func (s *Store) Subscribe(fn func([]models.CartLine)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Watch wires the store to the backend's cross-process change channel, if
// it has one. Foreign writes trigger a re-read and a fan-out to the
// subscribers; the store's own writes are filtered out by origin. Backends
// without a Notifier (single-process embeddings) make this a no-op.
func (s *Store) Watch(ctx context.Context) error {
	notifier, ok := s.backend.(storage.Notifier)
	if !ok {
		return nil
	}

	return notifier.WatchChanges(ctx, s.origin, func() {
		s.fanout(s.Items(ctx))
	})
}

func (s *Store) broadcast(ctx context.Context, lines []models.CartLine) {
	s.fanout(lines)

	if notifier, ok := s.backend.(storage.Notifier); ok {
		if err := notifier.NotifyChange(ctx, s.origin); err != nil {
			s.logger.Warn("Failed to publish cart change", zap.Error(err))
		}
	}
}

func (s *Store) fanout(lines []models.CartLine) {
	s.mu.Lock()
	subs := make([]func([]models.CartLine), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(lines)
	}
}
