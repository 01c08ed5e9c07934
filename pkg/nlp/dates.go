package nlp

import (
	"time"

	"github.com/pKa1/loveSonia/pkg/datemath"
)

var (
	reNumericDate = mustCompile(`(?<![\d.:/-])(\d{1,2})([./])(\d{1,2})(?:\2(\d{4}|\d{2}))?(?!\d|[.:/-]\d)`)
	reDashDate    = mustCompile(`(?<![\d.:/-])(\d{1,2})-(\d{1,2})(?:-(\d{4}|\d{2}))?(?!\d|[.:/-]\d)`)
	reMonthDate   = mustCompile(`(?<![\d.:/-])(\d{1,2})\s*(` + monthAlt + `)\b\.?(?:\s*(\d{4})(?!\d))?`)
	reWeekdayDate = mustCompile(`\b(?:в|во)\s+(` + weekdayAlt + `)\b`)
	reTimePrep    = mustCompile(`(?:^|[^\p{L}])(?:в|к|с|до|по|на)\s*$`)

	reRelAfterTomorrow = mustCompile(`\bпослезавтра\b`)
	reRelTomorrow      = mustCompile(`\bзавтра\b`)
)

type explicitDate struct {
	day  time.Time
	span span
}

// relativeDays returns the day shift of "завтра"/"послезавтра".
func relativeDays(r []rune) int {
	switch {
	case has(reRelAfterTomorrow, r):
		return 2
	case has(reRelTomorrow, r):
		return 1
	}
	return 0
}

// findExplicitDate looks for a numeric date, then "D <month>", then "в <weekday>".
// today is midnight of the current local day.
func findExplicitDate(r []rune, today time.Time) (explicitDate, bool) {
	for m := find(reNumericDate, r); m != nil; m = findNext(reNumericDate, m) {
		year, hasYear := groupInt(m, 4)
		if group(m, 2) == "." && !hasYear && has(reTimePrep, r[:m.Index]) {
			continue
		}
		day, _ := groupInt(m, 1)
		month, _ := groupInt(m, 3)
		if d, ok := resolveDate(today, year, month, day, hasYear); ok {
			return explicitDate{day: d, span: spanOf(m)}, true
		}
	}

	for m := find(reDashDate, r); m != nil; m = findNext(reDashDate, m) {
		day, _ := groupInt(m, 1)
		month, _ := groupInt(m, 2)
		year, hasYear := groupInt(m, 3)
		if !hasYear && day <= 24 {
			// "10-12" is a time range
			continue
		}
		if d, ok := resolveDate(today, year, month, day, hasYear); ok {
			return explicitDate{day: d, span: spanOf(m)}, true
		}
	}

	for m := find(reMonthDate, r); m != nil; m = findNext(reMonthDate, m) {
		month, ok := monthFor(group(m, 2))
		if !ok {
			continue
		}
		day, _ := groupInt(m, 1)
		year, hasYear := groupInt(m, 3)
		if d, ok := resolveDate(today, year, int(month), day, hasYear); ok {
			return explicitDate{day: d, span: spanOf(m)}, true
		}
	}

	if m := find(reWeekdayDate, r); m != nil {
		target := weekdayFor(group(m, 1))
		return explicitDate{day: datemath.UpcomingWeekday(today, target), span: spanOf(m)}, true
	}

	return explicitDate{}, false
}

func resolveDate(today time.Time, year, month, day int, hasYear bool) (time.Time, bool) {
	if !hasYear {
		year = today.Year()
	} else if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > datemath.DaysIn(year, time.Month(month)) {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location())
	if !hasYear && d.Before(today) {
		d = d.AddDate(1, 0, 0)
	}
	return d, true
}

var (
	reStripNumericDate = mustCompile(`(?<![\d.:/-])\d{1,2}[./-]\d{1,2}(?:[./-](?:\d{4}|\d{2}))?(?!\d)`)
	reStripMonthDate   = mustCompile(`(?<![\d.:/-])\d{1,2}\s*(?:` + monthAlt + `)\b\.?(?:\s*\d{4}(?!\d))?`)
	reStripWeekday     = mustCompile(`\b(?:в|во)\s+(?:` + weekdayAlt + `)\b`)
)

// StripDateTokens removes numeric dates, "D <month>" phrases and "в <weekday>"
// phrases from text and collapses whitespace.
func StripDateTokens(text string) string {
	t := string(normalize(text, false))
	t = replace(reStripNumericDate, t, " ", -1)
	t = replace(reStripMonthDate, t, " ", -1)
	t = replace(reStripWeekday, t, " ", -1)
	return collapse(t)
}
