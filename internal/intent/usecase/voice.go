package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/pKa1/loveSonia/internal/intent"
	"github.com/pKa1/loveSonia/internal/model"
	"github.com/pKa1/loveSonia/pkg/aitunnel"
)

// Whisper answers silence with these phrases.
var silenceArtefacts = map[string]bool{
	"пожалуйста": true,
}

// PreviewVoice transcribes audio and previews the transcript.
func (uc *implUseCase) PreviewVoice(ctx context.Context, sc model.Scope, input intent.VoiceInput) (intent.PreviewOutput, error) {
	if uc.transcriber == nil {
		return intent.PreviewOutput{}, intent.ErrTranscriberUnavailable
	}
	if len(input.Audio) == 0 {
		return intent.PreviewOutput{}, intent.ErrEmptyAudio
	}

	text, err := uc.transcriber.Transcribe(ctx, &aitunnel.TranscriptionRequest{
		Audio:  input.Audio,
		Format: input.Format,
	})
	if err != nil {
		uc.l.Errorf(ctx, "intent.usecase.PreviewVoice: user=%s format=%s: %v", sc.UserID, input.Format, err)
		return intent.PreviewOutput{}, fmt.Errorf("%w: %v", intent.ErrTranscriptionFailed, err)
	}

	text = strings.TrimSpace(text)
	if text == "" || isSilence(text) {
		return intent.PreviewOutput{}, intent.ErrEmptyTranscript
	}
	uc.l.Infof(ctx, "intent.usecase.PreviewVoice: user=%s transcript_length=%d", sc.UserID, len([]rune(text)))

	channel := input.Channel
	if channel == "" {
		channel = intent.ChannelVoice
	}
	return uc.preview(ctx, sc, intent.PreviewInput{
		Text:     text,
		TimeZone: input.TimeZone,
		Channel:  channel,
	}, text)
}

func isSilence(text string) bool {
	word := strings.TrimFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSpace(r)
	})
	return word == "" || silenceArtefacts[word]
}
