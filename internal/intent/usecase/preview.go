package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pKa1/loveSonia/internal/intent"
	"github.com/pKa1/loveSonia/internal/model"
	"github.com/pKa1/loveSonia/pkg/datemath"
	"github.com/pKa1/loveSonia/pkg/nlp"
)

// Preview parses text with the rules and, when configured, the classifier,
// then stores the merged intent for confirmation.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input intent.PreviewInput) (intent.PreviewOutput, error) {
	return uc.preview(ctx, sc, input, "")
}

func (uc *implUseCase) preview(ctx context.Context, sc model.Scope, input intent.PreviewInput, transcript string) (intent.PreviewOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return intent.PreviewOutput{}, intent.ErrEmptyInput
	}

	loc := uc.location(input.TimeZone)
	now := uc.now()

	started := time.Now()
	rules, ruleConfidence := nlp.ParseWithConfidence(text, now, loc.String())
	uc.metrics.parseDuration.Observe(time.Since(started).Seconds())

	var classified *nlp.Intent
	if uc.classifier != nil {
		var err error
		classified, err = uc.classify(ctx, text, loc, now)
		if err != nil {
			reason := reasonRequest
			var ce *classifierError
			if errors.As(err, &ce) {
				reason = ce.reason
			}
			uc.metrics.classifierFailures.WithLabelValues(reason).Inc()
			uc.l.Warnf(ctx, "intent.usecase.Preview: classifier failed, using rules: %v", err)
		}
	}

	result, source := merge(rules, ruleConfidence, classified, uc.cfg.TrustRulesAbove)
	if result == nil {
		return intent.PreviewOutput{}, intent.ErrEmptyInput
	}
	result.Title = cleanTitle(result.Title)

	confidence := ruleConfidence
	if source != intent.SourceRules {
		confidence = nlp.Confidence(result)
	}

	id, stored := uc.previews.put(preview{
		ownerID:    sc.UserID,
		intent:     result,
		confidence: confidence,
		source:     source,
		transcript: transcript,
		timeZone:   loc.String(),
	})
	uc.metrics.previews.WithLabelValues(string(result.Kind), source).Inc()
	uc.l.Infof(ctx, "intent.usecase.Preview: user=%s channel=%s kind=%s source=%s confidence=%.2f id=%s",
		sc.UserID, input.Channel, result.Kind, source, confidence, id)

	return toOutput(id, stored), nil
}

// location resolves the caller's zone, falling back to the configured default.
func (uc *implUseCase) location(timeZone string) *time.Location {
	if timeZone != "" {
		if loc, ok := datemath.LoadLocation(timeZone); ok {
			return loc
		}
	}
	loc, _ := datemath.LoadLocation(uc.cfg.DefaultTimeZone)
	return loc
}

func toOutput(id string, p preview) intent.PreviewOutput {
	return intent.PreviewOutput{
		ID:         id,
		Intent:     *p.intent.Clone(),
		Confidence: p.confidence,
		Source:     p.source,
		Transcript: p.transcript,
		TimeZone:   p.timeZone,
		ExpiresAt:  p.expiresAt,
	}
}
