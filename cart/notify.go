package cart

import "context"

// Level of a user-facing notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is a transient message for the shopper. Emitting one never
// affects the outcome of the operation that produced it.
type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Notifier receives fire-and-forget notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Authenticator tells the store whether the current caller has a session.
type Authenticator interface {
	Authenticated(ctx context.Context) bool
}

// AuthFunc adapts a function to Authenticator.
type AuthFunc func(ctx context.Context) bool

func (f AuthFunc) Authenticated(ctx context.Context) bool { return f(ctx) }

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Notification) {}

// denyAll is the default authenticator: without one wired in, nobody can add.
type denyAll struct{}

func (denyAll) Authenticated(context.Context) bool { return false }
