package nlp

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Lexicons are keyed by lower-case words with ё folded to е.

var months = map[string]time.Month{
	"января": time.January, "янв": time.January,
	"февраля": time.February, "фев": time.February,
	"марта": time.March, "мар": time.March,
	"апреля": time.April, "апр": time.April,
	"мая": time.May, "май": time.May,
	"июня": time.June, "июн": time.June,
	"июля": time.July, "июл": time.July,
	"августа": time.August, "авг": time.August,
	"сентября": time.September, "сен": time.September, "сент": time.September,
	"октября": time.October, "окт": time.October,
	"ноября": time.November, "ноя": time.November,
	"декабря": time.December, "дек": time.December,
}

// Longer names first so alternation prefers the full genitive form.
const monthAlt = `января|янв|февраля|фев|марта|мар|апреля|апр|мая|май|июня|июн|июля|июл|августа|авг|сентября|сент|сен|октября|окт|ноября|ноя|декабря|дек`

const weekdayAlt = `понедельник|вторник|среду|среда|четверг|пятницу|пятница|субботу|суббота|воскресенье`

// halfHours maps the genitive ordinal of "пол<ordinal>" to the hour before it.
var halfHours = map[string]int{
	"первого": 0, "второго": 1, "третьего": 2, "четвертого": 3,
	"пятого": 4, "шестого": 5, "седьмого": 6, "восьмого": 7,
	"девятого": 8, "десятого": 9, "одиннадцатого": 10, "двенадцатого": 11,
}

const ordinalAlt = `первого|второго|третьего|четвертого|пятого|шестого|седьмого|восьмого|девятого|десятого|одиннадцатого|двенадцатого`

var cardinalHours = map[string]int{
	"час": 1, "два": 2, "три": 3, "четыре": 4, "пять": 5, "шесть": 6,
	"семь": 7, "восемь": 8, "девять": 9, "десять": 10, "одиннадцать": 11, "двенадцать": 12,
}

const cardinalAlt = `час|два|три|четыре|пять|шесть|семь|восемь|девять|десять|одиннадцать|двенадцать`

const (
	periodAlt  = `утра|дня|вечера|ночи`
	durUnitAlt = `час(?:а|ов)?|мин(?:ут[уаы]?)?`
	hourWord   = `(?:\s*час(?:ам|а|ов)?\b)?`
	// unitAhead rejects a number that counts something instead of naming a clock hour.
	unitAhead = `(?!\s*(?:мин|час|сек|дн|ден|недел|месяц|год|лет|(?:` + monthAlt + `)\b))`
)

const (
	eventNoun = `\b(?:встреч[аиуеы]|событи[еяю]|звон(?:ок|ка|ку)|созвон(?:а|у)?|митинг(?:а|у)?|совещани[еяю]|план[её]рк[аиуе])\b`
	taskNoun  = `\b(?:задач[аиуе]|напоминани[еяю])\b`
)

var (
	reEventNoun = mustCompile(eventNoun)
	reTaskNoun  = mustCompile(taskNoun)
)

func mustCompile(expr string) *regexp2.Regexp {
	return regexp2.MustCompile(expr, regexp2.IgnoreCase)
}

func fold(word string) string {
	return strings.ReplaceAll(strings.ToLower(word), "ё", "е")
}

func monthFor(word string) (time.Month, bool) {
	word = strings.TrimSuffix(fold(word), ".")
	m, ok := months[word]
	return m, ok
}

func weekdayFor(word string) time.Weekday {
	w := fold(word)
	switch {
	case strings.HasPrefix(w, "пон"):
		return time.Monday
	case strings.HasPrefix(w, "вто"):
		return time.Tuesday
	case strings.HasPrefix(w, "сре"):
		return time.Wednesday
	case strings.HasPrefix(w, "чет"):
		return time.Thursday
	case strings.HasPrefix(w, "пят"):
		return time.Friday
	case strings.HasPrefix(w, "суб"):
		return time.Saturday
	}
	return time.Sunday
}

// normalize folds ё and flattens whitespace rune for rune, so match offsets
// stay valid against the original text.
func normalize(s string, foldYo bool) []rune {
	r := []rune(s)
	for i, c := range r {
		switch c {
		case '\t', '\n', '\r', '\u00a0':
			r[i] = ' '
		case 'ё':
			if foldYo {
				r[i] = 'е'
			}
		case 'Ё':
			if foldYo {
				r[i] = 'Е'
			}
		}
	}
	return r
}
