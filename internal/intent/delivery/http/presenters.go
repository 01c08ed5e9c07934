package http

import (
	"time"

	"github.com/pKa1/loveSonia/internal/intent"
	"github.com/pKa1/loveSonia/pkg/nlp"
)

// --- Request DTOs ---

type parseReq struct {
	Text     string `json:"text"      binding:"required,max=2000"`
	TimeZone string `json:"time_zone" binding:"max=64"`
}

func (r parseReq) toInput() intent.PreviewInput {
	return intent.PreviewInput{
		Text:     r.Text,
		TimeZone: r.TimeZone,
		Channel:  intent.ChannelText,
	}
}

// ---

type voiceReq struct {
	Audio    []byte
	Format   string
	TimeZone string
}

func (r voiceReq) toInput() intent.VoiceInput {
	return intent.VoiceInput{
		Audio:    r.Audio,
		Format:   r.Format,
		TimeZone: r.TimeZone,
		Channel:  intent.ChannelVoice,
	}
}

// ---

type confirmReq struct {
	ID       string `json:"-"` // populated from URI param
	Title    string `json:"title"    binding:"max=255"`
	Assignee string `json:"assignee" binding:"omitempty,oneof=SELF PARTNER WE"`
}

func (r confirmReq) toInput() intent.ConfirmInput {
	return intent.ConfirmInput{
		PreviewID: r.ID,
		Title:     r.Title,
		Assignee:  r.Assignee,
	}
}

// --- Response DTOs ---

type previewResp struct {
	ID         string     `json:"id"`
	Intent     nlp.Intent `json:"intent"`
	Confidence float64    `json:"confidence"`
	Source     string     `json:"source"`
	Transcript string     `json:"transcript,omitempty"`
	TimeZone   string     `json:"time_zone"`
	ExpiresAt  time.Time  `json:"expires_at"`
}

func (h *handler) newPreviewResp(out intent.PreviewOutput) previewResp {
	return previewResp{
		ID:         out.ID,
		Intent:     out.Intent,
		Confidence: out.Confidence,
		Source:     out.Source,
		Transcript: out.Transcript,
		TimeZone:   out.TimeZone,
		ExpiresAt:  out.ExpiresAt.UTC(),
	}
}

type confirmResp struct {
	Type  string     `json:"type"`
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Link  string     `json:"link,omitempty"`
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
	Due   *time.Time `json:"due,omitempty"`
}

func (h *handler) newConfirmResp(out intent.ConfirmOutput) confirmResp {
	return confirmResp{
		Type:  out.Type,
		ID:    out.ID,
		Title: out.Title,
		Link:  out.Link,
		Start: out.Start,
		End:   out.End,
		Due:   out.Due,
	}
}
