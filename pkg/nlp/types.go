package nlp

import (
	"fmt"
	"time"
)

// Kind classifies a parsed intent.
type Kind string

const (
	KindTask  Kind = "task"
	KindEvent Kind = "event"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindTask || k == KindEvent
}

// Assignee says who an intent is for.
type Assignee string

const (
	AssigneeSelf    Assignee = "SELF"
	AssigneePartner Assignee = "PARTNER"
	AssigneeWe      Assignee = "WE"
)

// Valid reports whether a is a known assignee.
func (a Assignee) Valid() bool {
	switch a {
	case AssigneeSelf, AssigneePartner, AssigneeWe:
		return true
	}
	return false
}

// Date is a civil calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the civil date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Intent is the structured result of parsing free text.
// Start, End and Due are UTC. Date is set only for date-only events.
type Intent struct {
	Kind     Kind       `json:"kind"`
	Title    string     `json:"title"`
	Assignee Assignee   `json:"assignee,omitempty"`
	Start    *time.Time `json:"start,omitempty"`
	End      *time.Time `json:"end,omitempty"`
	Due      *time.Time `json:"due,omitempty"`
	Date     *Date      `json:"date,omitempty"`
	Location string     `json:"location,omitempty"`
}

// Clone returns a deep copy of the intent.
func (in *Intent) Clone() *Intent {
	if in == nil {
		return nil
	}
	out := *in
	out.Start = cloneTime(in.Start)
	out.End = cloneTime(in.End)
	out.Due = cloneTime(in.Due)
	if in.Date != nil {
		d := *in.Date
		out.Date = &d
	}
	return &out
}

// HasTime reports whether the intent carries any resolved instant.
func (in *Intent) HasTime() bool {
	return in.Start != nil || in.End != nil || in.Due != nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func timePtr(t time.Time) *time.Time {
	t = t.UTC()
	return &t
}
