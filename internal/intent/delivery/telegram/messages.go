package telegram

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pKa1/loveSonia/internal/intent"
	"github.com/pKa1/loveSonia/pkg/datemath"
	"github.com/pKa1/loveSonia/pkg/nlp"
	pkgTelegram "github.com/pKa1/loveSonia/pkg/telegram"
)

const (
	defaultWebAppURL = "https://lovesonia.ru/tg"
	defaultDonateURL = "https://lovesonia.ru/"

	callbackHelp    = "help"
	callbackConfirm = "confirm"
	callbackCancel  = "cancel"

	displayLayout = "02.01.2006 15:04"
)

const helpText = `Как пользоваться:
1) Нажмите «Открыть LoveSonia», авторизация проходит автоматически.
2) В разделе «Пара» задайте тихие часы, календарь подстроится.
3) Добавляйте события и задачи, назначайте «я/ты/мы».
4) Или просто напишите сюда: «ужин в пятницу в 19:30» или «купить цветы до завтра». Голосовые тоже подойдут.`

func (h *handler) mainMenu() [][]pkgTelegram.InlineKeyboardButton {
	return [][]pkgTelegram.InlineKeyboardButton{
		{{Text: "Открыть LoveSonia", WebApp: &pkgTelegram.WebAppInfo{URL: h.cfg.WebAppURL}}},
		{{Text: "📖 Инструкция", CallbackData: callbackHelp}},
		{{Text: "❤️ Поддержать проект", URL: h.cfg.DonateURL}},
	}
}

func (h *handler) sendStart(ctx context.Context, chatID int64, firstName string) error {
	greeting := "Привет!"
	if firstName != "" {
		greeting = fmt.Sprintf("Привет, %s!", firstName)
	}
	text := strings.Join([]string{
		greeting,
		"Это LoveSonia: календарь и задачи для пары.",
		"Открой мини-приложение или посмотри короткую инструкцию.",
	}, "\n")
	return h.bot.SendMessageWithKeyboard(ctx, chatID, text, h.mainMenu())
}

func (h *handler) sendHelp(ctx context.Context, chatID int64) error {
	return h.bot.SendMessageWithKeyboard(ctx, chatID, helpText, h.mainMenu())
}

func (h *handler) sendPreview(ctx context.Context, chatID int64, out intent.PreviewOutput) error {
	keyboard := [][]pkgTelegram.InlineKeyboardButton{{
		{Text: "✅ Создать", CallbackData: callbackConfirm + ":" + out.ID},
		{Text: "✖️ Отмена", CallbackData: callbackCancel + ":" + out.ID},
	}}
	return h.bot.SendMessageWithKeyboard(ctx, chatID, previewText(out), keyboard)
}

func (h *handler) sendConfirmed(ctx context.Context, chatID int64, out intent.ConfirmOutput) error {
	label := "Событие создано"
	if out.Type == intent.TypeTask {
		label = "Задача создана"
	}
	text := fmt.Sprintf("✅ %s: %s", label, out.Title)
	if out.Link != "" {
		text += "\n" + out.Link
	}
	return h.bot.SendMessage(ctx, chatID, text)
}

// previewText renders the card shown before confirmation.
func previewText(out intent.PreviewOutput) string {
	loc, _ := datemath.LoadLocation(out.TimeZone)
	in := out.Intent

	var b strings.Builder
	if out.Transcript != "" {
		fmt.Fprintf(&b, "🎙 «%s»\n\n", out.Transcript)
	}
	if in.Kind == nlp.KindTask {
		fmt.Fprintf(&b, "📝 Задача: %s\n", in.Title)
		if in.Due != nil {
			fmt.Fprintf(&b, "⏰ До %s\n", in.Due.In(loc).Format(displayLayout))
		}
	} else {
		fmt.Fprintf(&b, "📅 Событие: %s\n", in.Title)
		switch {
		case in.Start != nil && in.End != nil:
			fmt.Fprintf(&b, "🕒 %s, %s\n", in.Start.In(loc).Format(displayLayout), spanText(in.Start.In(loc), in.End.In(loc)))
		case in.Start != nil:
			fmt.Fprintf(&b, "🕒 %s\n", in.Start.In(loc).Format(displayLayout))
		case in.Date != nil:
			fmt.Fprintf(&b, "🗓 %s\n", in.Date.In(loc).Format("02.01.2006"))
		}
		if in.Location != "" {
			fmt.Fprintf(&b, "📍 %s\n", in.Location)
		}
	}
	fmt.Fprintf(&b, "👥 %s\n", assigneeLabel(in.Assignee))
	fmt.Fprintf(&b, "Уверенность: %d%%", int(math.Round(out.Confidence*100)))
	return b.String()
}

func spanText(start, end time.Time) string {
	if start.YearDay() == end.YearDay() && start.Year() == end.Year() {
		return "до " + end.Format("15:04")
	}
	return "до " + end.Format(displayLayout)
}

func assigneeLabel(a nlp.Assignee) string {
	switch a {
	case nlp.AssigneeSelf:
		return "Я"
	case nlp.AssigneePartner:
		return "Партнёр"
	}
	return "Мы вместе"
}
