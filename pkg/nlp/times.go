package nlp

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/pKa1/loveSonia/pkg/datemath"
)

// clock is a wall-clock time of day.
type clock struct {
	hour, minute int
}

var (
	// с H[:MM] [period] до|по H[:MM] [period]
	reRangeFromTo = mustCompile(`\bс\s*(?<![\d.:/-])(\d{1,2})(?:[:.](\d{2}))?` + hourWord + `(?:\s*(` + periodAlt + `)\b)?\s*(?:до|по)\s*(\d{1,2})(?:[:.](\d{2}))?(?!\d)` + hourWord + `(?:\s*(` + periodAlt + `)\b)?` + unitAhead)
	// H[:MM] [period] - H[:MM] [period]
	reRangeDash = mustCompile(`(?<![\d.:/-])(\d{1,2})(?:[:.](\d{2}))?(?:\s*(` + periodAlt + `)\b)?\s*[-–—]\s*(\d{1,2})(?:[:.](\d{2}))?(?!\d)(?:\s*(` + periodAlt + `)\b)?` + unitAhead)
	reEvening   = mustCompile(`\b(?:вечера|вечер|вечером|дня|днем)\b`)

	// с H[:MM] [period] на N час|мин
	reStartDuration = mustCompile(`\bс\s*(?<![\d.:/-])(\d{1,2})(?:[:.](\d{2}))?` + hourWord + `(?:\s*(` + periodAlt + `)\b)?\s*на\s*(\d{1,3})\s*(` + durUnitAlt + `)\b`)
	reDuration      = mustCompile(`\bна\s*(?:(\d{1,3})\s*)?(` + durUnitAlt + `|полчаса)\b`)

	reHalfPast     = mustCompile(`\bпол-?\s*(` + ordinalAlt + `)\b(?:\s*(` + periodAlt + `)\b)?`)
	reInHalf       = mustCompile(`\bв\s+половине\s+(` + ordinalAlt + `)\b(?:\s*(` + periodAlt + `)\b)?`)
	reQuarterTo    = mustCompile(`\bбез\s+четверти\s+(` + cardinalAlt + `)\b(?:\s*(` + periodAlt + `)\b)?`)
	reSingleTime   = mustCompile(`(?:\b(в|во|на|к|до)\s*)?(?<!через\s*)(?<![\d.:/,-])(\d{1,2})(?:[:.\s]?(\d{2}))?(?!\d)(?:\s*(час(?:ам|а|ов)?)\b)?(?:\s*(` + periodAlt + `)\b)?` + unitAhead)
	reRelativeTime = mustCompile(`\bчерез\s*(?:(\d{1,3})\s*)?(минут[уы]?|мин|час(?:а|ов)?|полчаса|день|дня|дней|недел[июь]|месяц(?:а|ев)?)\b`)
)

// withPeriod applies a period-of-day word to an hour. evening is the
// text-wide qualifier used when the token has no word of its own.
func withPeriod(hour int, period string, evening bool) int {
	switch fold(period) {
	case "вечера", "дня":
		if hour < 12 {
			hour += 12
		}
	case "ночи":
		if hour == 12 {
			hour = 0
		}
	case "":
		if evening && hour < 12 {
			hour += 12
		}
	}
	return hour % 24
}

// rangeHours resolves the period words of both ends of a range. An end
// without a word borrows the other end's word unless that puts the start
// after the end. The text-wide qualifier only applies when neither end has a
// word, and then to both ends or to none.
func rangeHours(h1 int, p1 string, h2 int, p2 string, evening bool) (int, int) {
	switch {
	case p1 == "" && p2 == "":
		if evening && h1 < 12 && h2 < 12 {
			return withPeriod(h1, "", true), withPeriod(h2, "", true)
		}
		return withPeriod(h1, "", false), withPeriod(h2, "", false)
	case p1 == "":
		to := withPeriod(h2, p2, false)
		if from := withPeriod(h1, p2, false); from <= to {
			return from, to
		}
		return withPeriod(h1, "", false), to
	case p2 == "":
		from := withPeriod(h1, p1, false)
		if to := withPeriod(h2, p1, false); to >= from {
			return from, to
		}
		return from, withPeriod(h2, "", false)
	}
	return withPeriod(h1, p1, false), withPeriod(h2, p2, false)
}

func validClock(hour, minute int) bool {
	return hour >= 0 && hour <= 24 && minute >= 0 && minute < 60
}

type timeRange struct {
	from, to clock
	span     span
}

func findRange(r []rune, evening bool) (timeRange, bool) {
	for _, re := range []*regexp2.Regexp{reRangeFromTo, reRangeDash} {
		for m := find(re, r); m != nil; m = findNext(re, m) {
			h1, _ := groupInt(m, 1)
			m1, _ := groupInt(m, 2)
			h2, _ := groupInt(m, 4)
			m2, _ := groupInt(m, 5)
			if !validClock(h1, m1) || !validClock(h2, m2) {
				continue
			}
			from, to := rangeHours(h1, group(m, 3), h2, group(m, 6), evening)
			return timeRange{
				from: clock{from, m1},
				to:   clock{to, m2},
				span: spanOf(m),
			}, true
		}
	}
	return timeRange{}, false
}

type startDuration struct {
	start    clock
	duration time.Duration
	span     span
}

func findStartDuration(r []rune) (startDuration, bool) {
	for m := find(reStartDuration, r); m != nil; m = findNext(reStartDuration, m) {
		h, _ := groupInt(m, 1)
		mm, _ := groupInt(m, 2)
		if !validClock(h, mm) {
			continue
		}
		n, _ := groupInt(m, 4)
		return startDuration{
			start:    clock{withPeriod(h, group(m, 3), false), mm},
			duration: unitDuration(n, group(m, 5)),
			span:     spanOf(m),
		}, true
	}
	return startDuration{}, false
}

// findDuration picks up a trailing "на N час/мин" (or "на час", "на полчаса").
func findDuration(r []rune) (time.Duration, span, bool) {
	m := find(reDuration, r)
	if m == nil {
		return 0, span{}, false
	}
	n, ok := groupInt(m, 1)
	if !ok {
		n = 1
	}
	d := unitDuration(n, group(m, 2))
	if d <= 0 {
		return 0, span{}, false
	}
	return d, spanOf(m), true
}

func unitDuration(n int, unit string) time.Duration {
	unit = fold(unit)
	switch {
	case unit == "полчаса":
		return 30 * time.Minute
	case strings.HasPrefix(unit, "час"):
		return time.Duration(n) * time.Hour
	}
	return time.Duration(n) * time.Minute
}

type spokenTime struct {
	at   clock
	span span
}

// findConversational handles "полчетвертого", "в половине шестого" and
// "без четверти пять".
func findConversational(r []rune) (spokenTime, bool) {
	for _, re := range []*regexp2.Regexp{reHalfPast, reInHalf} {
		if m := find(re, r); m != nil {
			hour := halfHours[fold(group(m, 1))]
			return spokenTime{at: clock{withPeriod(hour, group(m, 2), false), 30}, span: spanOf(m)}, true
		}
	}
	if m := find(reQuarterTo, r); m != nil {
		hour := (cardinalHours[fold(group(m, 1))] - 1 + 12) % 12
		return spokenTime{at: clock{withPeriod(hour, group(m, 2), false), 45}, span: spanOf(m)}, true
	}
	return spokenTime{}, false
}

// findSingleTime finds the first clock time such as "в 10", "к 19:30",
// "в 7 вечера" or "в 9 часов утра".
func findSingleTime(r []rune) (spokenTime, bool) {
	for m := find(reSingleTime, r); m != nil; m = findNext(reSingleTime, m) {
		prep := fold(group(m, 1))
		if group(m, 4) != "" && prep != "в" && prep != "во" && prep != "к" && prep != "до" {
			// "на 2 часа" is a duration, "2 часа" is a count
			continue
		}
		if prep == "на" && fold(group(m, 5)) == "дня" {
			// "на 3 дня" counts days
			continue
		}
		h, _ := groupInt(m, 2)
		mm, hasMinutes := groupInt(m, 3)
		if prep == "" && !hasMinutes && group(m, 4) == "" && group(m, 5) == "" {
			// a bare number counts things
			continue
		}
		if !validClock(h, mm) {
			continue
		}
		return spokenTime{at: clock{withPeriod(h, group(m, 5), false), mm}, span: spanOf(m)}, true
	}
	return spokenTime{}, false
}

type offset struct {
	n    int
	unit datemath.Unit
	span span
}

func findRelativeOffset(r []rune) (offset, bool) {
	m := find(reRelativeTime, r)
	if m == nil {
		return offset{}, false
	}
	n, ok := groupInt(m, 1)
	if !ok {
		n = 1
	}
	word := fold(group(m, 2))
	if word == "полчаса" {
		n = 30
	}
	return offset{n: n, unit: offsetUnit(word), span: spanOf(m)}, true
}

func offsetUnit(word string) datemath.Unit {
	switch {
	case word == "полчаса", strings.HasPrefix(word, "мин"):
		return datemath.Minute
	case strings.HasPrefix(word, "час"):
		return datemath.Hour
	case strings.HasPrefix(word, "недел"):
		return datemath.Week
	case strings.HasPrefix(word, "месяц"):
		return datemath.Month
	}
	return datemath.Day
}

// calendar reports whether the offset moves the date rather than the clock.
func (o offset) calendar() bool {
	return o.unit >= datemath.Day
}

func (o offset) apply(t time.Time) time.Time {
	return datemath.AddUnits(t, o.n, o.unit)
}

var (
	reStripDuration  = mustCompile(`\bна\s*\d{1,3}\s*(?:` + durUnitAlt + `)\b`)
	reStripRangeTo   = mustCompile(`\bс\s*\d{1,2}(?:[:.]\d{2})?(?:\s*(?:` + periodAlt + `)\b)?\s*(?:до|по)\s*\d{1,2}(?:[:.]\d{2})?(?:\s*(?:` + periodAlt + `)\b)?`)
	reStripRangeDash = mustCompile(`(?<![\d.:])\d{1,2}(?:[:.]\d{2})?\s*[-–—]\s*\d{1,2}(?:[:.]\d{2})?(?!\d)`)
	reStripPrepTime  = mustCompile(`\b(?:до|по|в|во|к|на)\s*\d{1,2}(?:[:.]\d{2})?(?!\d)(?:\s*(?:` + periodAlt + `)\b)?`)
	reStripClock     = mustCompile(`(?<![\d.:])\d{1,2}[:.]\d{2}(?!\d)`)
	reTrailingPunct  = mustCompile(`[\s,.;:]+$`)
)

// StripTimeTokens removes clock times, time ranges and durations from text.
func StripTimeTokens(text string) string {
	t := string(normalize(text, false))
	t = replace(reStripDuration, t, " ", -1)
	t = replace(reStripRangeTo, t, " ", -1)
	t = replace(reStripRangeDash, t, " ", -1)
	t = replace(reStripPrepTime, t, " ", -1)
	t = replace(reStripClock, t, " ", -1)
	t = replace(reTrailingPunct, t, "", -1)
	return collapse(t)
}
