package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Moscow"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// CreateTaskRequest is the input for creating a Google Tasks item.
type CreateTaskRequest struct {
	TaskListID string
	Title      string
	Notes      string
	Due        *time.Time
}

// Task is a simplified representation of a Google Tasks item.
type Task struct {
	ID       string
	Title    string
	Notes    string
	SelfLink string
	WebLink  string
	Due      *time.Time
}
