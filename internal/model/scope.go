package model

// Scope identifies who a request acts for.
type Scope struct {
	UserID   string
	Username string
	ChatID   int64 // Telegram chat, 0 for HTTP callers
}

// AnonymousUserID is used when the caller did not identify itself.
const AnonymousUserID = "anonymous"

// Environment names accepted in config.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)
