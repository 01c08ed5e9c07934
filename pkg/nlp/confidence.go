package nlp

import (
	"math"
	"unicode/utf8"
)

// Confidence scores how complete a parsed intent looks, in [0, 1].
func Confidence(in *Intent) float64 {
	if in == nil {
		return 0
	}
	score := 0.6
	if in.Kind == KindEvent {
		score += 0.1
	}
	if in.Start != nil && in.End != nil {
		score += 0.2
	}
	if in.Due != nil || in.Date != nil {
		score += 0.15
	}
	if in.Location != "" {
		score += 0.05
	}
	if utf8.RuneCountInString(in.Title) < 3 {
		score -= 0.2
	}
	return math.Round(min(max(score, 0), 1)*100) / 100
}
