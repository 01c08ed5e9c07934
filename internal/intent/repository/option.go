package repository

import (
	"time"

	"github.com/pKa1/loveSonia/internal/model"
)

// CreateEventOptions holds the parameters for creating an event.
type CreateEventOptions struct {
	Scope    model.Scope
	Title    string
	Start    time.Time
	End      time.Time
	Location string
	TimeZone string // IANA name the event was spoken in
}

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	Scope    model.Scope
	Title    string
	Assignee string
	Due      *time.Time
}
