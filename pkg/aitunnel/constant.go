package aitunnel

const (
	// DefaultBaseURL is the default AITunnel (OpenAI-compatible) endpoint
	DefaultBaseURL = "https://api.aitunnel.ru/v1"

	// DefaultModel is the default chat model
	DefaultModel = "gpt-5-nano"

	// DefaultTranscriptionModel is the default speech-to-text model
	DefaultTranscriptionModel = "whisper-1"

	// DefaultLanguage is the transcription language hint
	DefaultLanguage = "ru"
)
