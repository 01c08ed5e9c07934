package intent

import (
	"context"

	"github.com/pKa1/loveSonia/internal/model"
)

// UseCase turns free text or voice into previews and commits confirmed ones.
type UseCase interface {
	// Preview parses text into an intent and keeps it until it is confirmed or expires.
	Preview(ctx context.Context, sc model.Scope, input PreviewInput) (PreviewOutput, error)

	// PreviewVoice transcribes audio and previews the transcript.
	PreviewVoice(ctx context.Context, sc model.Scope, input VoiceInput) (PreviewOutput, error)

	// Confirm persists a stored preview as an event or a task.
	Confirm(ctx context.Context, sc model.Scope, input ConfirmInput) (ConfirmOutput, error)

	// Cancel drops a stored preview.
	Cancel(ctx context.Context, sc model.Scope, previewID string) error
}
