package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/pKa1/loveSonia/pkg/response"
)

// TelegramSecretHeader is set by Telegram on webhook calls when setWebhook had a secret_token.
const TelegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// TelegramSecret rejects webhook calls that do not carry the configured secret.
// With no secret configured every call passes.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramSecret == "" {
			c.Next()
			return
		}
		got := c.GetHeader(TelegramSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.telegramSecret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: bad secret from %s", clientIP(c.Request))
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
