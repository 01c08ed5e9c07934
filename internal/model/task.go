package model

import "time"

// Task is a to-do item created from a confirmed intent.
type Task struct {
	ID       string
	Title    string
	Assignee string // SELF, PARTNER or WE
	Due      *time.Time
	Link     string
	OwnerID  string
	Created  time.Time
}
