package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ErrInvalidProduct is returned by AddItem for a snapshot without an id or
// with a negative price.
var ErrInvalidProduct = errors.New("cart: product needs an id and a non-negative price")

// ErrInvalidVariant is returned by AddItem when a variant selector contains
// the key separator "-".
var ErrInvalidVariant = errors.New("cart: variant options cannot contain \"-\"")

// Outcome describes what a mutation did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAdded
	OutcomeMerged
	OutcomeUpdated
	OutcomeRemoved
	OutcomeNotFound
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeMerged:
		return "merged"
	case OutcomeUpdated:
		return "updated"
	case OutcomeRemoved:
		return "removed"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeRejected:
		return "rejected"
	default:
		return "none"
	}
}

const (
	msgLoginRequired = "Please login to add items to cart"
	msgRemoved       = "Item removed from cart"
	msgCleared       = "Cart cleared"
	msgSaveFailed    = "We couldn't save your cart, please try again"
)

// Store owns the cart state of one session and the durable slot it is
// persisted to. Every mutation recomputes derived values and overwrites the
// slot before returning.
type Store struct {
	mu       sync.Mutex
	key      string
	storage  Storage
	auth     Authenticator
	notifier Notifier
	logger   *zap.Logger
	state    State
}

// Option configures a Store.
type Option func(*Store)

// WithAuthenticator sets who may add items. Without it every add is rejected.
func WithAuthenticator(a Authenticator) Option {
	return func(s *Store) {
		if a != nil {
			s.auth = a
		}
	}
}

// WithNotifier sets where shopper notifications go. They are dropped by default.
func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger sets the logger for storage failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open builds a store for the slot under key and seeds it from storage.
// An unreadable or malformed slot yields an empty cart.
func Open(ctx context.Context, storage Storage, key string, opts ...Option) *Store {
	s := &Store{
		key:      key,
		storage:  storage,
		auth:     denyAll{},
		notifier: nopNotifier{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = newState(s.load(ctx))
	return s
}

// Key is the storage key of the slot this store persists to.
func (s *Store) Key() string {
	return s.key
}

// Reload replaces the in-memory state with whatever the slot holds now.
func (s *Store) Reload(ctx context.Context) {
	items := s.load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = newState(items)
}

// State returns a copy of the current cart.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Items = cloneItems(s.state.Items)
	return st
}

// AddItem puts quantity units of the product variant in the cart, merging
// into an existing line with the same identity. A quantity below 1 adds one
// unit and a line never holds more than MaxLineQuantity. Callers without a
// session are rejected before any change.
func (s *Store) AddItem(ctx context.Context, p Product, quantity int, v Variant) (Outcome, error) {
	if strings.TrimSpace(p.ID) == "" || p.Price < 0 {
		return OutcomeNone, ErrInvalidProduct
	}
	if !v.Valid() {
		return OutcomeNone, ErrInvalidVariant
	}
	if !s.auth.Authenticated(ctx) {
		s.notify(ctx, LevelError, msgLoginRequired)
		return OutcomeRejected, nil
	}
	if quantity < 1 {
		quantity = 1
	}
	quantity = clampQuantity(quantity)

	s.mu.Lock()
	defer s.mu.Unlock()

	id := Key(p.ID, v)
	items := cloneItems(s.state.Items)
	outcome := OutcomeAdded
	if i := findItem(items, id); i >= 0 {
		items[i].Quantity = addQuantity(items[i].Quantity, quantity)
		outcome = OutcomeMerged
	} else {
		items = append(items, newLineItem(p, quantity, v))
	}

	if err := s.commit(ctx, items); err != nil {
		return OutcomeNone, err
	}
	s.notify(ctx, LevelSuccess, fmt.Sprintf("%s added to cart", p.Name))
	return outcome, nil
}

// RemoveItem deletes the line with the given id. Removing an absent line is
// a successful no-op.
func (s *Store) RemoveItem(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, id)
}

// UpdateQuantity sets the quantity of a line, capped at MaxLineQuantity.
// Zero or negative removes it.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		removed, err := s.removeLocked(ctx, id)
		if err != nil {
			return OutcomeNone, err
		}
		if !removed {
			return OutcomeNotFound, nil
		}
		return OutcomeRemoved, nil
	}

	items := cloneItems(s.state.Items)
	i := findItem(items, id)
	if i < 0 {
		return OutcomeNotFound, nil
	}
	items[i].Quantity = clampQuantity(quantity)

	if err := s.commit(ctx, items); err != nil {
		return OutcomeNone, err
	}
	return OutcomeUpdated, nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(ctx, []LineItem{}); err != nil {
		return err
	}
	s.notify(ctx, LevelInfo, msgCleared)
	return nil
}

// ItemQuantity returns how many units of the product variant are in the cart.
func (s *Store) ItemQuantity(productID string, v Variant) int {
	if !v.Valid() {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := findItem(s.state.Items, Key(productID, v)); i >= 0 {
		return s.state.Items[i].Quantity
	}
	return 0
}

// InCart reports whether the product variant has a line in the cart.
func (s *Store) InCart(productID string, v Variant) bool {
	return s.ItemQuantity(productID, v) > 0
}

func (s *Store) removeLocked(ctx context.Context, id string) (bool, error) {
	items := cloneItems(s.state.Items)
	removed := false
	if i := findItem(items, id); i >= 0 {
		items = append(items[:i], items[i+1:]...)
		removed = true
	}

	if err := s.commit(ctx, items); err != nil {
		return false, err
	}
	if removed {
		s.notify(ctx, LevelInfo, msgRemoved)
	}
	return removed, nil
}

// commit persists items and only then makes them the current state, so a
// failed save leaves the previous state in place.
func (s *Store) commit(ctx context.Context, items []LineItem) error {
	data, err := Encode(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.storage.Save(ctx, s.key, data); err != nil {
		s.logger.Error("❌ failed to persist cart", zap.String("key", s.key), zap.Error(err))
		s.notify(ctx, LevelError, msgSaveFailed)
		return fmt.Errorf("save cart %s: %w", s.key, err)
	}
	s.state = newState(items)
	return nil
}

func (s *Store) load(ctx context.Context) []LineItem {
	data, err := s.storage.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrSlotNotFound) {
			s.logger.Warn("⚠️ cart slot unreadable, starting empty", zap.String("key", s.key), zap.Error(err))
		}
		return []LineItem{}
	}
	return Decode(data)
}

func (s *Store) notify(ctx context.Context, level Level, msg string) {
	s.notifier.Notify(ctx, Notification{Level: level, Message: msg})
}
