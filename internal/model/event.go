package model

import "time"

// Event is a calendar event created from a confirmed intent.
type Event struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	Location string
	TimeZone string
	Link     string // deep link to the calendar UI, empty for the memory store
	OwnerID  string
	Created  time.Time
}
