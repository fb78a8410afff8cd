package cart

import "context"

type storeKey struct{}

// NewContext returns a copy of ctx carrying the store.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// FromContext returns the store attached to ctx. It panics when there is
// none: reaching for the cart outside a session is a wiring bug.
func FromContext(ctx context.Context) *Store {
	s, ok := ctx.Value(storeKey{}).(*Store)
	if !ok || s == nil {
		panic("cart: no store in context; is the cart session middleware installed?")
	}
	return s
}
