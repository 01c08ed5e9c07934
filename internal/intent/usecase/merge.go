package usecase

import (
	"strings"
	"time"

	"github.com/pKa1/loveSonia/internal/intent"
	"github.com/pKa1/loveSonia/pkg/nlp"
)

const defaultEventSpan = 60 * time.Minute

// merge picks the rule result when its confidence reaches trust and the
// classifier result otherwise. Fields missing from the winner are taken from
// the other one.
func merge(rules *nlp.Intent, ruleConfidence float64, classified *nlp.Intent, trust float64) (*nlp.Intent, string) {
	switch {
	case classified == nil && rules == nil:
		return nil, ""
	case classified == nil:
		return normalize(rules.Clone()), intent.SourceRules
	case rules == nil:
		return normalize(classified.Clone()), intent.SourceClassifier
	}

	primary, secondary, source := classified.Clone(), rules, intent.SourceClassifier
	if ruleConfidence >= trust {
		primary, secondary, source = rules.Clone(), classified, intent.SourceRules
	}
	if fillMissing(primary, secondary) {
		source = intent.SourceMerged
	}
	return normalize(primary), source
}

// fillMissing copies fields that dst lacks from src and reports whether
// anything was copied. Temporal fields are copied only when dst has none.
// Assignee is left alone: rules always say WE.
func fillMissing(dst, src *nlp.Intent) bool {
	filled := false
	if dst.Title == "" && src.Title != "" {
		dst.Title, filled = src.Title, true
	}
	if dst.Location == "" && src.Location != "" {
		dst.Location, filled = src.Location, true
	}
	if dst.HasTime() || dst.Date != nil {
		return filled
	}

	switch {
	case dst.Kind == nlp.KindEvent && src.Start != nil:
		dst.Start, dst.End = clone(src.Start), clone(src.End)
	case dst.Kind == nlp.KindEvent && src.Due != nil:
		dst.Start = clone(src.Due)
	case dst.Kind == nlp.KindTask && src.Due != nil:
		dst.Due = clone(src.Due)
	case dst.Kind == nlp.KindTask && src.Start != nil:
		dst.Due = clone(src.Start)
	case src.Date != nil:
		d := *src.Date
		dst.Date = &d
	default:
		return filled
	}
	return true
}

// normalize enforces the intent invariants on a merged result.
func normalize(in *nlp.Intent) *nlp.Intent {
	if in.Assignee == "" {
		in.Assignee = nlp.AssigneeWe
	}
	switch in.Kind {
	case nlp.KindEvent:
		if in.Start == nil && in.Due != nil {
			in.Start = in.Due
		}
		in.Due = nil
		if in.Start != nil {
			if in.End == nil {
				end := in.Start.Add(defaultEventSpan)
				in.End = &end
			}
			in.Date = nil
		}
	case nlp.KindTask:
		if in.Due == nil && in.Start != nil {
			in.Due = in.Start
		}
		in.Start, in.End = nil, nil
	}
	return in
}

// cleanTitle strips leftover date and time tokens; a title made only of such
// tokens is kept as is.
func cleanTitle(title string) string {
	cleaned := strings.TrimSpace(nlp.StripTimeTokens(nlp.StripDateTokens(title)))
	if cleaned == "" {
		return strings.TrimSpace(title)
	}
	return cleaned
}

func clone(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
