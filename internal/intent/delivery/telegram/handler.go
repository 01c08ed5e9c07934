package telegram

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pKa1/loveSonia/internal/intent"
	"github.com/pKa1/loveSonia/internal/model"
	pkgLog "github.com/pKa1/loveSonia/pkg/log"
	pkgResponse "github.com/pKa1/loveSonia/pkg/response"
	pkgTelegram "github.com/pKa1/loveSonia/pkg/telegram"
)

// processTimeout bounds the background work for one update.
const processTimeout = 60 * time.Second

type handler struct {
	l       pkgLog.Logger
	uc      intent.UseCase
	bot     *pkgTelegram.Bot
	limiter Limiter
	cfg     Config
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the update in a background
// goroutine: transcription and the classifier can take longer than Telegram waits.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil && update.CallbackQuery == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	if chatID := updateChatID(update); h.limiter != nil && chatID != 0 &&
		!h.limiter.Allow(fmt.Sprintf("chat_%d", chatID)) {
		h.l.Warnf(ctx, "telegram handler: chat %d over rate limit", chatID)
		pkgResponse.OK(c, map[string]string{"status": "throttled"})
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()
		if err := h.processUpdate(bgCtx, update); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processUpdate failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func updateChatID(u pkgTelegram.Update) int64 {
	switch {
	case u.Message != nil && u.Message.Chat != nil:
		return u.Message.Chat.ID
	case u.CallbackQuery != nil && u.CallbackQuery.Message != nil && u.CallbackQuery.Message.Chat != nil:
		return u.CallbackQuery.Message.Chat.ID
	}
	return 0
}

func (h *handler) processUpdate(ctx context.Context, u pkgTelegram.Update) error {
	if u.CallbackQuery != nil {
		return h.processCallback(ctx, u.CallbackQuery)
	}
	return h.processMessage(ctx, u.Message)
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Chat == nil || msg.From == nil {
		return nil
	}
	sc := scopeOf(msg.From, msg.Chat.ID)

	switch {
	case msg.Voice != nil:
		return h.previewVoice(ctx, sc, msg.Voice.FileID)
	case msg.Audio != nil:
		return h.previewVoice(ctx, sc, msg.Audio.FileID)
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	// ---- Built-in commands ----
	switch command(text) {
	case "/start":
		return h.sendStart(ctx, msg.Chat.ID, msg.From.FirstName)
	case "/help":
		return h.sendHelp(ctx, msg.Chat.ID)
	}
	if strings.Contains(strings.ToLower(text), "lovesonia") {
		return h.bot.SendMessageWithKeyboard(ctx, msg.Chat.ID, "Запускаю приложение:", h.mainMenu())
	}

	out, err := h.uc.Preview(ctx, sc, intent.PreviewInput{
		Text:     text,
		TimeZone: h.cfg.TimeZone,
		Channel:  intent.ChannelTelegram,
	})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: Preview failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, errorMessage(err))
	}
	return h.sendPreview(ctx, msg.Chat.ID, out)
}

func (h *handler) previewVoice(ctx context.Context, sc model.Scope, fileID string) error {
	file, err := h.bot.GetFile(ctx, fileID)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: GetFile failed: %v", err)
		return h.bot.SendMessage(ctx, sc.ChatID, errorMessage(intent.ErrTranscriptionFailed))
	}
	audio, err := h.bot.DownloadFile(ctx, file.FilePath)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: DownloadFile failed: %v", err)
		return h.bot.SendMessage(ctx, sc.ChatID, errorMessage(intent.ErrTranscriptionFailed))
	}

	out, err := h.uc.PreviewVoice(ctx, sc, intent.VoiceInput{
		Audio:    audio,
		Format:   audioFormat(file.FilePath),
		TimeZone: h.cfg.TimeZone,
		Channel:  intent.ChannelTelegram,
	})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: PreviewVoice failed: %v", err)
		return h.bot.SendMessage(ctx, sc.ChatID, errorMessage(err))
	}
	return h.sendPreview(ctx, sc.ChatID, out)
}

// processCallback handles inline button presses: help, confirm:<id>, cancel:<id>.
func (h *handler) processCallback(ctx context.Context, cb *pkgTelegram.CallbackQuery) error {
	if err := h.bot.AnswerCallbackQuery(ctx, cb.ID, ""); err != nil {
		h.l.Warnf(ctx, "telegram handler: AnswerCallbackQuery failed: %v", err)
	}
	if cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
		return nil
	}
	chatID := cb.Message.Chat.ID
	sc := scopeOf(cb.From, chatID)

	action, id, _ := strings.Cut(cb.Data, ":")
	switch action {
	case callbackHelp:
		return h.sendHelp(ctx, chatID)

	case callbackConfirm:
		out, err := h.uc.Confirm(ctx, sc, intent.ConfirmInput{PreviewID: id})
		if err != nil {
			h.l.Warnf(ctx, "telegram handler: Confirm failed: %v", err)
			return h.bot.SendMessage(ctx, chatID, errorMessage(err))
		}
		return h.sendConfirmed(ctx, chatID, out)

	case callbackCancel:
		if err := h.uc.Cancel(ctx, sc, id); err != nil {
			h.l.Warnf(ctx, "telegram handler: Cancel failed: %v", err)
			return h.bot.SendMessage(ctx, chatID, errorMessage(err))
		}
		return h.bot.SendMessage(ctx, chatID, "Отменено.")
	}

	h.l.Debugf(ctx, "telegram handler: unknown callback %q", cb.Data)
	return nil
}

func scopeOf(u *pkgTelegram.User, chatID int64) model.Scope {
	return model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", u.ID),
		Username: u.Username,
		ChatID:   chatID,
	}
}

// command returns the bot command in text without arguments or the @botname suffix.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd)
}

// audioFormat derives the upload format from a Telegram file path.
// Voice notes are stored as .oga, which is Ogg/Opus.
func audioFormat(filePath string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filePath)), ".")
	if ext == "oga" || ext == "" {
		return "ogg"
	}
	return ext
}
