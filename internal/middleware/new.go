package middleware

import (
	"github.com/pKa1/loveSonia/pkg/log"
)

// Config holds the middleware settings taken from the service config.
type Config struct {
	TelegramSecret  string
	RateLimitPerMin int
}

type Middleware struct {
	l              log.Logger
	telegramSecret string
	limiter        *RateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:              l,
		telegramSecret: cfg.TelegramSecret,
		limiter:        NewRateLimiter(cfg.RateLimitPerMin),
	}
}

// Limiter exposes the shared limiter so handlers can key it on values the
// middleware cannot see, such as a Telegram chat id.
func (m Middleware) Limiter() *RateLimiter {
	return m.limiter
}
