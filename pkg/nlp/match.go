package nlp

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// span is a half-open rune range of the input.
type span struct {
	start, end int
}

func spanOf(m *regexp2.Match) span {
	return span{start: m.Index, end: m.Index + m.Length}
}

func find(re *regexp2.Regexp, r []rune) *regexp2.Match {
	m, err := re.FindRunesMatch(r)
	if err != nil {
		return nil
	}
	return m
}

func findNext(re *regexp2.Regexp, m *regexp2.Match) *regexp2.Match {
	n, err := re.FindNextMatch(m)
	if err != nil {
		return nil
	}
	return n
}

func has(re *regexp2.Regexp, r []rune) bool {
	ok, err := re.MatchRunes(r)
	return err == nil && ok
}

func findString(re *regexp2.Regexp, s string) *regexp2.Match {
	m, err := re.FindStringMatch(s)
	if err != nil {
		return nil
	}
	return m
}

func group(m *regexp2.Match, n int) string {
	g := m.GroupByNumber(n)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

func groupInt(m *regexp2.Match, n int) (int, bool) {
	s := group(m, n)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func replace(re *regexp2.Regexp, s, repl string, count int) string {
	out, err := re.Replace(s, repl, -1, count)
	if err != nil {
		return s
	}
	return out
}

// mask blanks the given spans with spaces.
func mask(r []rune, spans ...span) []rune {
	out := make([]rune, len(r))
	copy(out, r)
	for _, sp := range spans {
		for i := max(sp.start, 0); i < sp.end && i < len(out); i++ {
			out[i] = ' '
		}
	}
	return out
}

var reSpaces = mustCompile(`\s{2,}`)

func collapse(s string) string {
	return strings.TrimSpace(replace(reSpaces, s, " ", -1))
}
