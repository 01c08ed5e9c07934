package http

import (
	"errors"
	"net/http"

	"github.com/pKa1/loveSonia/internal/intent"
)

var (
	errMissingID    = errors.New("id is required")
	errMissingAudio = errors.New("audio file is required")
	errAudioTooBig  = errors.New("audio file is too large")
)

// mapError translates use-case errors into an HTTP status and a client message.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, intent.ErrEmptyInput),
		errors.Is(err, intent.ErrEmptyAudio),
		errors.Is(err, intent.ErrEmptyTranscript),
		errors.Is(err, intent.ErrInvalidAssignee):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, intent.ErrPreviewNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, intent.ErrTranscriberUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, intent.ErrTranscriptionFailed):
		return http.StatusBadGateway, intent.ErrTranscriptionFailed.Error()
	case errors.Is(err, intent.ErrPersistFailed):
		return http.StatusBadGateway, intent.ErrPersistFailed.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
