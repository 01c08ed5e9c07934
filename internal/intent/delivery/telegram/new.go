package telegram

import (
	"github.com/gin-gonic/gin"

	"github.com/pKa1/loveSonia/internal/intent"
	pkgLog "github.com/pKa1/loveSonia/pkg/log"
	pkgTelegram "github.com/pKa1/loveSonia/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Limiter throttles updates per chat. *middleware.RateLimiter implements it.
type Limiter interface {
	Allow(key string) bool
}

// Config holds the links shown in the bot menu.
type Config struct {
	WebAppURL string
	DonateURL string
	TimeZone  string // zone used for previews made from Telegram
}

// New creates a new Telegram delivery handler. limiter may be nil.
func New(
	l pkgLog.Logger,
	uc intent.UseCase,
	bot *pkgTelegram.Bot,
	limiter Limiter,
	cfg Config,
) Handler {
	if cfg.WebAppURL == "" {
		cfg.WebAppURL = defaultWebAppURL
	}
	if cfg.DonateURL == "" {
		cfg.DonateURL = defaultDonateURL
	}
	return &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		limiter: limiter,
		cfg:     cfg,
	}
}
