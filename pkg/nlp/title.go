package nlp

import "github.com/dlclark/regexp2"

var (
	prefixExprs = []string{
		`^\s*давай(?:-ка)?(?:\s*,)?\s+`,
		`^\s*(?:пожалуйста|нужно|надо|можешь|сделай)(?:\s*,)?\s+`,
		`^\s*(?:добавь|добавим|создай|создать|создадим)\s+`,
	}
	reRelativeDay = mustCompile(`\b(?:сегодня|завтра|послезавтра)\b`)
	reDangling    = mustCompile(`(?:^|\s)(?:в|во|на|к|ко|с|со|до|по|у|через)$`)
)

var prefixPatterns = compileAll(prefixExprs)

func compileAll(exprs []string) []*regexp2.Regexp {
	out := make([]*regexp2.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, mustCompile(e))
	}
	return out
}

// stripPrefixes drops filler verbs and politeness markers from the head of s.
func stripPrefixes(s string) string {
	for {
		before := s
		for _, re := range prefixPatterns {
			s = replace(re, s, "", 1)
		}
		if s == before {
			return s
		}
	}
}

// cleanTitle removes consumed substrings, filler, relative-day words and the
// first kind noun of each class. Events also lose a trailing location.
func cleanTitle(orig []rune, consumed []span, withLocation bool) (title, location string) {
	t := string(mask(orig, consumed...))
	t = stripPrefixes(collapse(t))
	t = StripDateTokens(t)
	t = replace(reRelativeDay, t, " ", -1)
	t = replace(reEventNoun, t, " ", 1)
	t = replace(reTaskNoun, t, " ", 1)
	t = stripPrefixes(collapse(t))
	title = trimPunct(t)
	if withLocation {
		title, location = extractLocation(title)
	}
	for findString(reDangling, title) != nil {
		title = trimPunct(replace(reDangling, title, "", 1))
	}
	return title, location
}
