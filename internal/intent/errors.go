package intent

import "errors"

// Domain-specific errors for the intent package.
var (
	ErrEmptyInput             = errors.New("input text is empty")
	ErrEmptyAudio             = errors.New("audio is empty")
	ErrEmptyTranscript        = errors.New("transcription is empty")
	ErrTranscriberUnavailable = errors.New("voice transcription is not configured")
	ErrTranscriptionFailed    = errors.New("voice transcription failed")
	ErrPreviewNotFound        = errors.New("preview not found or expired")
	ErrInvalidAssignee        = errors.New("invalid assignee")
	ErrPersistFailed          = errors.New("failed to save intent")
)
