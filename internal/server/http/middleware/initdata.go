package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDContextKey holds the Telegram user id extracted from init data.
const UserIDContextKey = "telegramUserID"

// InitDataHeader carries the raw WebApp init data from the mini-app.
const InitDataHeader = "X-Telegram-Init-Data"

// InitDataValidator checks a signed Telegram WebApp payload.
type InitDataValidator interface {
	Validate(initData string) (int64, error)
}

// InitDataAuth rejects requests without a valid WebApp signature. When not
// required, a valid header still populates the user id for handlers.
func InitDataAuth(validator InitDataValidator, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(InitDataHeader)
		if raw == "" {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "init data required"})
				return
			}
			c.Next()
			return
		}

		telegramID, err := validator.Validate(raw)
		if err != nil {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid init data"})
				return
			}
			c.Next()
			return
		}

		c.Set(UserIDContextKey, telegramID)
		c.Next()
	}
}
