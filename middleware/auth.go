package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/services"
	"go.uber.org/zap"
)

// OptionalAuth reads the customer JWT from the auth_token cookie or the
// Authorization header. A valid token sets userID, userEmail and userName;
// anything else lets the request through anonymously.
func OptionalAuth(jwtService *services.JWTService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := jwtService.VerifyCustomerJWT(token)
		if err != nil {
			logger.Debug("ignoring invalid customer token", zap.Error(err))
			c.Next()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userName", claims.Name)

		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookieToken, err := c.Cookie("auth_token"); err == nil && cookieToken != "" {
		return cookieToken
	}

	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}
