package telegram

import (
	"errors"

	"github.com/pKa1/loveSonia/internal/intent"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, intent.ErrEmptyInput), errors.Is(err, intent.ErrEmptyTranscript):
		return "Не расслышала 🙈 Попробуйте сказать или написать ещё раз."
	case errors.Is(err, intent.ErrEmptyAudio):
		return "Голосовое сообщение пустое."
	case errors.Is(err, intent.ErrTranscriberUnavailable):
		return "Голосовые сообщения пока не поддерживаются, напишите текстом."
	case errors.Is(err, intent.ErrTranscriptionFailed):
		return "Не получилось распознать голосовое сообщение. Попробуйте ещё раз."
	case errors.Is(err, intent.ErrPreviewNotFound):
		return "Черновик устарел. Отправьте сообщение заново."
	case errors.Is(err, intent.ErrPersistFailed):
		return "Не удалось сохранить в календарь. Попробуйте позже."
	default:
		return "Что-то пошло не так. Попробуйте ещё раз."
	}
}
