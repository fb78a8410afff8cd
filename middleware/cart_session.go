package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/models"
	"github.com/mose868/fashionhouse-sub000/services"
	"go.uber.org/zap"
)

const (
	CartSessionCookie = "cart_session"
	cartSessionMaxAge = 30 * 24 * time.Hour
)

// CartSessionConfig wires the per-request cart store.
type CartSessionConfig struct {
	Storage      cart.Storage
	KeyPrefix    string
	CookieSecure bool
	Logger       *zap.Logger
}

// CartSession identifies the shopper's device by the cart_session cookie,
// issuing a new UUIDv7 when it is missing or unparsable, opens the cart
// store for that slot and attaches it to the request context.
func CartSession(cfg CartSessionConfig) gin.HandlerFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		sessionID := sessionFromCookie(c)
		if sessionID == uuid.Nil {
			sessionID = uuid.Must(uuid.NewV7())
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CartSessionCookie, sessionID.String(), int(cartSessionMaxAge.Seconds()), "/", "", cfg.CookieSecure, true)

		notes := services.NewNotificationCollector(logger)
		c.Set(models.NotificationsKey, notes)

		auth := cart.AuthFunc(func(context.Context) bool {
			_, ok := GetUserIDFromContext(c)
			return ok
		})

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		store := cart.Open(ctx, cfg.Storage, cfg.KeyPrefix+sessionID.String(),
			cart.WithAuthenticator(auth),
			cart.WithNotifier(notes),
			cart.WithLogger(logger.With(zap.String("cart_session", sessionID.String()))),
		)

		c.Request = c.Request.WithContext(cart.NewContext(c.Request.Context(), store))
		c.Next()
	}
}

func sessionFromCookie(c *gin.Context) uuid.UUID {
	raw, err := c.Cookie(CartSessionCookie)
	if err != nil || raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
