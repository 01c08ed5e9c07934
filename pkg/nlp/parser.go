// Package nlp parses free-form Russian text into a task or event intent.
package nlp

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/pKa1/loveSonia/pkg/datemath"
)

const (
	defaultEventTitle   = "Событие"
	defaultMeetingTitle = "Встреча"
	defaultTaskTitle    = "Задача"

	defaultSpan = 60 * time.Minute
)

// Parse turns text into an intent relative to now in the given IANA zone.
// Unknown zones fall back to UTC. It returns nil only for blank text.
func Parse(text string, now time.Time, timeZone string) *Intent {
	s := newState(text, now, timeZone)
	if s == nil {
		return nil
	}
	for _, r := range rules {
		if in := r.apply(s); in != nil {
			return in
		}
	}
	return nil
}

// ParseWithConfidence is Parse plus the Confidence of the result.
func ParseWithConfidence(text string, now time.Time, timeZone string) (*Intent, float64) {
	in := Parse(text, now, timeZone)
	return in, Confidence(in)
}

// rule is one step of the pipeline. apply returns nil when it does not match.
type rule struct {
	name  string
	apply func(s *state) *Intent
}

// Order matters: earlier rules win over overlapping phrases.
var rules = []rule{
	{name: "fuzzy_period", apply: fuzzyPeriodRule},
	{name: "range", apply: rangeRule},
	{name: "start_duration", apply: startDurationRule},
	{name: "conversational", apply: conversationalRule},
	{name: "single_time", apply: singleTimeRule},
	{name: "relative_offset", apply: relativeOffsetRule},
	{name: "fallback", apply: fallbackRule},
}

type state struct {
	orig     []rune // input with flattened whitespace, source of the title
	norm     []rune // orig with ё folded, used for matching
	timeText []rune // norm with the explicit date blanked out
	now      time.Time
	loc      *time.Location
	base     time.Time // working calendar day, midnight local
	date     *explicitDate

	eventHint bool
	taskHint  bool
	evening   bool
}

func newState(text string, now time.Time, timeZone string) *state {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	loc, _ := datemath.LoadLocation(timeZone)
	s := &state{
		orig: normalize(text, false),
		norm: normalize(text, true),
		now:  now,
		loc:  loc,
	}

	today := datemath.StartOfDay(now, loc)
	s.base = datemath.ShiftDays(today, relativeDays(s.norm))
	s.timeText = s.norm
	if d, ok := findExplicitDate(s.norm, today); ok {
		s.date = &d
		s.base = d.day
		s.timeText = mask(s.norm, d.span)
	}

	s.eventHint = has(reEventNoun, s.norm)
	s.taskHint = has(reTaskNoun, s.norm)
	s.evening = has(reEvening, s.norm)
	return s
}

func (s *state) at(c clock) time.Time {
	return datemath.At(s.base, c.hour, c.minute, s.loc)
}

func (s *state) taskOnly() bool {
	return s.taskHint && !s.eventHint
}

func (s *state) event(start, end time.Time, fallbackTitle string, consumed ...span) *Intent {
	return s.finish(&Intent{Kind: KindEvent, Start: timePtr(start), End: timePtr(end)}, fallbackTitle, true, consumed)
}

func (s *state) task(due time.Time, consumed ...span) *Intent {
	return s.finish(&Intent{Kind: KindTask, Due: timePtr(due)}, defaultTaskTitle, false, consumed)
}

func (s *state) finish(in *Intent, fallbackTitle string, withLocation bool, consumed []span) *Intent {
	if s.date != nil {
		consumed = append(consumed, s.date.span)
	}
	title, location := cleanTitle(s.orig, consumed, withLocation)
	if title == "" {
		title = fallbackTitle
	}
	in.Title = title
	in.Location = location
	in.Assignee = AssigneeWe
	return in
}

var fuzzyPeriods = []struct {
	re  *regexp2.Regexp
	day func(base time.Time) time.Time
}{
	{re: mustCompile(`\bна\s+выходных\b`), day: func(base time.Time) time.Time {
		return datemath.UpcomingWeekday(base, time.Saturday)
	}},
	{re: mustCompile(`\bв\s+конце\s+месяца\b`), day: datemath.EndOfMonth},
	{re: mustCompile(`\bв\s+начале\s+следующей\s+недели\b`), day: datemath.NextMonday},
}

func fuzzyPeriodRule(s *state) *Intent {
	for _, p := range fuzzyPeriods {
		m := find(p.re, s.timeText)
		if m == nil {
			continue
		}
		noon := datemath.At(p.day(s.base), 12, 0, s.loc)
		in := &Intent{Kind: KindEvent, Start: timePtr(noon), End: timePtr(noon.Add(defaultSpan))}
		return s.finish(in, defaultEventTitle, false, []span{spanOf(m)})
	}
	return nil
}

func rangeRule(s *state) *Intent {
	r, ok := findRange(s.timeText, s.evening)
	if !ok {
		return nil
	}
	start, end := s.at(r.from), s.at(r.to)
	if end.Before(start) {
		// "с 22 до 2" ends on the next day
		end = datemath.At(datemath.ShiftDays(s.base, 1), r.to.hour, r.to.minute, s.loc)
	}
	return s.event(start, end, defaultEventTitle, r.span)
}

func startDurationRule(s *state) *Intent {
	sd, ok := findStartDuration(s.timeText)
	if !ok {
		return nil
	}
	start := s.at(sd.start)
	return s.event(start, start.Add(sd.duration), defaultEventTitle, sd.span)
}

func conversationalRule(s *state) *Intent {
	st, ok := findConversational(s.timeText)
	if !ok {
		return nil
	}
	return s.timed(st, defaultMeetingTitle)
}

func singleTimeRule(s *state) *Intent {
	st, ok := findSingleTime(s.timeText)
	if !ok {
		return nil
	}
	return s.timed(st, defaultMeetingTitle)
}

// timed builds the result for a resolved clock time, honouring a trailing
// "на N час/мин" duration. "через N дней" next to the time picks the day.
func (s *state) timed(st spokenTime, fallbackTitle string) *Intent {
	start := s.at(st.at)
	consumed := []span{st.span}
	if off, ok := findRelativeOffset(mask(s.timeText, st.span)); ok {
		consumed = append(consumed, off.span)
		if off.calendar() && s.date == nil {
			day := off.apply(datemath.StartOfDay(s.now, s.loc))
			start = datemath.At(day, st.at.hour, st.at.minute, s.loc)
		}
	}
	end := start.Add(defaultSpan)
	if d, sp, ok := findDuration(mask(s.timeText, st.span)); ok {
		end = start.Add(d)
		consumed = append(consumed, sp)
	}
	if s.taskOnly() {
		return s.task(start, consumed...)
	}
	return s.event(start, end, fallbackTitle, consumed...)
}

func relativeOffsetRule(s *state) *Intent {
	off, ok := findRelativeOffset(s.timeText)
	if !ok {
		return nil
	}
	t := off.apply(s.now.In(s.loc))
	t = datemath.At(t, t.Hour(), t.Minute(), s.loc)
	if s.taskOnly() {
		return s.task(t, off.span)
	}
	in := &Intent{Kind: KindEvent, Start: timePtr(t), End: timePtr(t.Add(defaultSpan))}
	return s.finish(in, defaultEventTitle, false, []span{off.span})
}

func fallbackRule(s *state) *Intent {
	if !s.eventHint {
		return s.finish(&Intent{Kind: KindTask}, defaultTaskTitle, false, nil)
	}
	in := &Intent{Kind: KindEvent}
	if s.date != nil {
		d := DateOf(s.date.day)
		in.Date = &d
	}
	return s.finish(in, defaultEventTitle, true, nil)
}
