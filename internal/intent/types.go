package intent

import (
	"time"

	"github.com/pKa1/loveSonia/pkg/nlp"
)

// Where a previewed intent came from.
const (
	SourceRules      = "rules"
	SourceClassifier = "classifier"
	SourceMerged     = "merged"
)

// Channels a request can arrive on.
const (
	ChannelText     = "text"
	ChannelVoice    = "voice"
	ChannelTelegram = "telegram"
)

// Result types returned by Confirm.
const (
	TypeEvent = "event"
	TypeTask  = "task"
)

// Realtime topics published after a successful Confirm.
const (
	TopicEvents = "events"
	TopicTasks  = "tasks"
)

// PreviewInput is the input for Preview.
type PreviewInput struct {
	Text     string
	TimeZone string // IANA name; empty means the configured default
	Channel  string
}

// VoiceInput is the input for PreviewVoice.
type VoiceInput struct {
	Audio    []byte
	Format   string // file extension as sent by the client: webm, ogg, mp3, wav...
	TimeZone string
	Channel  string
}

// PreviewOutput is a parsed intent waiting for confirmation.
type PreviewOutput struct {
	ID         string
	Intent     nlp.Intent
	Confidence float64
	Source     string
	Transcript string
	TimeZone   string
	ExpiresAt  time.Time
}

// ConfirmInput commits a preview. Empty overrides keep the parsed values.
type ConfirmInput struct {
	PreviewID string
	Title     string
	Assignee  string
}

// ConfirmOutput describes the created record.
type ConfirmOutput struct {
	Type  string
	ID    string
	Title string
	Link  string
	Start *time.Time
	End   *time.Time
	Due   *time.Time
}

// ChangeNotice is published on TopicEvents/TopicTasks after a record is created.
type ChangeNotice struct {
	Action string `json:"action"`
	ID     string `json:"id"`
	Title  string `json:"title"`
	UserID string `json:"user_id,omitempty"`
}
