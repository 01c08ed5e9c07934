package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.telegram.org"

// maxFileSize is the Bot API download limit.
const maxFileSize = 20 << 20

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	fileURL    string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("%s/bot%s", defaultAPIBase, token),
		fileURL:    fmt.Sprintf("%s/file/bot%s", defaultAPIBase, token),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetAPIURL overrides the Telegram API URL for testing purposes. Files are
// then served from <url>/file.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = strings.TrimRight(url, "/")
	b.fileURL = b.apiURL + "/file"
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secret is
// echoed back by Telegram in X-Telegram-Bot-Api-Secret-Token.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	return b.call(ctx, "setWebhook", setWebhookRequest{
		URL:         webhookURL,
		SecretToken: secret,
		Allowed:     []string{"message", "callback_query"},
	}, nil)
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.Send(ctx, SendMessageRequest{ChatID: chatID, Text: text})
}

// SendMessageWithKeyboard sends a message with an inline keyboard.
func (b *Bot) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard [][]InlineKeyboardButton) error {
	return b.Send(ctx, SendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: &InlineKeyboardMarkup{InlineKeyboard: keyboard},
	})
}

// Send posts a fully built sendMessage request.
func (b *Bot) Send(ctx context.Context, msg SendMessageRequest) error {
	return b.call(ctx, "sendMessage", msg, nil)
}

// AnswerCallbackQuery stops the loading indicator on the pressed button and
// optionally shows a toast.
func (b *Bot) AnswerCallbackQuery(ctx context.Context, callbackID, text string) error {
	return b.call(ctx, "answerCallbackQuery", answerCallbackRequest{CallbackQueryID: callbackID, Text: text}, nil)
}

// GetFile resolves a file id to a downloadable path.
func (b *Bot) GetFile(ctx context.Context, fileID string) (File, error) {
	var resp fileResponse
	if err := b.call(ctx, "getFile", map[string]string{"file_id": fileID}, &resp); err != nil {
		return File{}, err
	}
	if resp.Result.FilePath == "" {
		return File{}, fmt.Errorf("telegram getFile: empty file path for %s", fileID)
	}
	return resp.Result, nil
}

// DownloadFile fetches the content of a file returned by GetFile.
func (b *Bot) DownloadFile(ctx context.Context, filePath string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.fileURL+"/"+strings.TrimLeft(filePath, "/"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram file download error %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("telegram file exceeds %d bytes", maxFileSize)
	}
	return data, nil
}

// call posts payload to a Bot API method. When out is non-nil the whole
// response body is decoded into it.
func (b *Bot) call(ctx context.Context, method string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s failed: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", method, err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram %s failed: %s", method, apiResp.Description)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", method, err)
		}
	}
	return nil
}
