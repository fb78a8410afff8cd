package models

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/cart"
)

// NotificationsKey is the gin context key of the request's notification
// source (anything with Drain() []cart.Notification).
const NotificationsKey = "notifications"

type ApiResponse struct {
	Message         string       `json:"message"`
	Data            any          `json:"data,omitempty"`
	Error           bool         `json:"error,omitempty"`
	Rate            *RateLimiter `json:"rate_limit,omitempty"`
	RequestedEntity string       `json:"requested_entity,omitempty"`

	Notifications []cart.Notification `json:"notifications,omitempty"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

type notificationSource interface {
	Drain() []cart.Notification
}

// helper to fetch the notifications emitted while serving the request
func getNotificationsFromContext(c *gin.Context) []cart.Notification {
	if c == nil {
		return nil
	}
	if v, exists := c.Get(NotificationsKey); exists {
		if src, ok := v.(notificationSource); ok {
			return src.Drain()
		}
	}
	return nil
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Rate:            getRateFromContext(c),
		Notifications:   getNotificationsFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		Rate:            getRateFromContext(c),
		Notifications:   getNotificationsFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}
