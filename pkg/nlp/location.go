package nlp

import "strings"

// The last "в|на|у <phrase>" is a location unless the phrase is a clock time
// or starts with a temporal word or a topic word like "на тему".
var reLocation = mustCompile(`^(.*)(?<![\p{L}\d])(?:в|во|на|у)\s+` +
	`(?!\d{1,2}(?:\s*[.:]?\s*\d{2})?\b)` +
	`(?!(?:неделе|неделю|недели|выходных|выходные|утро|утром|вечер|вечером|ночь|ночью|день|дня|днем|днём|` +
	`этой|этот|эту|следующей|следующий|следующую|прошлой|конце|начале|половине|сегодня|завтра|послезавтра|` +
	`час|часа|часов|минут|минуту|месяц|месяца|` + weekdayAlt + `)\b)` +
	`(?!(?:тему|теме|темы|счет|счёт|счету|счёту|предмет|повестке|связи|случай)\b)` +
	`([\p{L}\d"«].*)$`)

var reEdgePunct = mustCompile(`^[\s,.;:!?-]+|[\s,.;:!?-]+$`)

// extractLocation splits a trailing location phrase off title.
func extractLocation(title string) (string, string) {
	t := trimPunct(title)
	m := findString(reLocation, t)
	if m == nil {
		return t, ""
	}
	loc := trimPunct(group(m, 2))
	if loc == "" {
		return t, ""
	}
	return trimPunct(group(m, 1)), loc
}

func trimPunct(s string) string {
	return strings.TrimSpace(replace(reEdgePunct, collapse(s), "", -1))
}
