package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/pKa1/loveSonia/config"
	_ "github.com/pKa1/loveSonia/docs" // Swagger docs
	"github.com/pKa1/loveSonia/internal/httpserver"
	intentHTTP "github.com/pKa1/loveSonia/internal/intent/delivery/http"
	tgDelivery "github.com/pKa1/loveSonia/internal/intent/delivery/telegram"
	"github.com/pKa1/loveSonia/internal/intent/repository"
	googleRepo "github.com/pKa1/loveSonia/internal/intent/repository/google"
	memoryRepo "github.com/pKa1/loveSonia/internal/intent/repository/memory"
	"github.com/pKa1/loveSonia/internal/intent/usecase"
	"github.com/pKa1/loveSonia/internal/middleware"
	"github.com/pKa1/loveSonia/internal/realtime"
	"github.com/pKa1/loveSonia/pkg/aitunnel"
	"github.com/pKa1/loveSonia/pkg/gcalendar"
	"github.com/pKa1/loveSonia/pkg/llmprovider"
	"github.com/pKa1/loveSonia/pkg/log"
	"github.com/pKa1/loveSonia/pkg/telegram"
)

// @title       LoveSonia API
// @description Calendar and tasks for couples: Russian natural-language parsing, voice notes, Google Calendar and a Telegram bot.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting LoveSonia...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Default time zone: %s", cfg.Intent.DefaultTimeZone)

	// 3. Optional collaborators. Interfaces stay nil when a component is off.
	var classifier usecase.Classifier
	if manager := newClassifier(ctx, cfg, logger); manager != nil {
		classifier = manager
	}

	var transcriber usecase.Transcriber
	if cfg.Transcription.APIKey != "" {
		client, tErr := aitunnel.New(aitunnel.Config{
			APIKey:             cfg.Transcription.APIKey,
			BaseURL:            cfg.Transcription.BaseURL,
			TranscriptionModel: cfg.Transcription.Model,
			Language:           cfg.Transcription.Language,
		})
		if tErr != nil {
			logger.Warnf(ctx, "Voice transcription disabled: %v", tErr)
		} else {
			transcriber = client
			logger.Infof(ctx, "✅ Voice transcription via %s", cfg.Transcription.BaseURL)
		}
	} else {
		logger.Warn(ctx, "Voice transcription disabled: transcription.api_key is empty")
	}

	repo := newRepository(ctx, cfg, logger)

	// 4. Intent domain
	hub := realtime.NewHub(logger, cfg.Realtime.BufferSize)
	intentUC := usecase.New(logger, classifier, transcriber, repo, hub, usecase.Config{
		DefaultTimeZone: cfg.Intent.DefaultTimeZone,
		TrustRulesAbove: cfg.Intent.TrustRulesAbove,
		PreviewTTL:      cfg.Intent.PreviewTTL,
		PreviewCapacity: cfg.Intent.PreviewCapacity,
		Registerer:      prometheus.DefaultRegisterer,
	})

	mw := middleware.New(logger, middleware.Config{
		TelegramSecret:  cfg.Telegram.WebhookSecret,
		RateLimitPerMin: cfg.Telegram.RateLimitPerMin,
	})

	// 5. Telegram bot (optional)
	var telegramBot *telegram.Bot
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, intentUC, telegramBot, mw.Limiter(), tgDelivery.Config{
			WebAppURL: cfg.Telegram.WebAppURL,
			DonateURL: cfg.Telegram.DonateURL,
			TimeZone:  cfg.Intent.DefaultTimeZone,
		})
	} else {
		logger.Warn(ctx, "Telegram bot skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		IntentHandler:   intentHTTP.New(logger, intentUC),
		TelegramHandler: telegramHandler,
		RealtimeHandler: realtime.NewHandler(hub, cfg.Realtime.HeartbeatInterval),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	if telegramBot != nil {
		g.Go(func() error {
			registerWebhook(gctx, cfg.Telegram, telegramBot, logger)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newClassifier builds the LLM fallback chain, or returns nil when no provider is usable.
func newClassifier(ctx context.Context, cfg *config.Config, logger log.Logger) *llmprovider.Manager {
	if len(cfg.LLM.Providers) == 0 {
		logger.Warn(ctx, "LLM classifier disabled: no providers configured, rules only")
		return nil
	}

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Warnf(ctx, "LLM classifier disabled: %v", err)
		return nil
	}

	managerCfg := &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, 500*time.Millisecond),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 20*time.Second),
	}
	logger.Infof(ctx, "✅ LLM classifier with %d provider(s), primary %s", len(providers), providers[0].Name())
	return llmprovider.NewManager(providers, managerCfg, logger)
}

// newRepository uses Google Calendar + Tasks when credentials are present and
// falls back to the in-memory store otherwise.
func newRepository(ctx context.Context, cfg *config.Config, logger log.Logger) repository.Repository {
	if cfg.Google.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Google.CredentialsPath)
		if err == nil {
			logger.Info(ctx, "✅ Google Calendar initialized")
			return googleRepo.New(client, cfg.Google.CalendarID, cfg.Google.TaskListID, logger)
		}
		logger.Warnf(ctx, "Google Calendar not available: %v", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
	}
	logger.Warn(ctx, "Using in-memory storage: confirmed events and tasks are lost on restart")
	return memoryRepo.New()
}

// registerWebhook points Telegram at this service: the configured URL, or the
// ngrok tunnel when running locally.
func registerWebhook(ctx context.Context, cfg config.TelegramConfig, bot *telegram.Bot, logger log.Logger) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, "http://ngrok:4040")
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.WebhookSecret); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
