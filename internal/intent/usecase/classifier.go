package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pKa1/loveSonia/pkg/llmprovider"
	"github.com/pKa1/loveSonia/pkg/nlp"
)

const systemPromptTemplate = `Ты парсер текста. Верни ТОЛЬКО JSON по схеме:
{
  "kind": "task" | "event",
  "title": string,
  "assignee"?: "SELF" | "PARTNER" | "WE",
  "start"?: string (ISO),
  "end"?: string (ISO),
  "due"?: string (ISO),
  "date"?: string (YYYY-MM-DD),
  "location"?: string
}
Правила:
- Интерпретируй дату/время в таймзоне %s. Сейчас: %s.
- Удаляй служебные префиксы из title ("давай", "добавь", "создай", "нужно", "пожалуйста").
- Форматы времени: HH:MM, HH.MM, HH MM; диапазоны «с HH[:MM] до HH[:MM]» и «HH:MM–HH:MM». Учти «в 3 дня/вечера/утра/ночи».
- Если для события указан только start без end — ставь end = start + 60 минут.
- Если есть явная дата без времени — используй поле "date".
- Если указан временной диапазон и явная дата — оба времени внутри этой даты.`

const classifierMaxTokens = 1024

// Failure reasons reported in classifier_failures_total.
const (
	reasonRequest = "request"
	reasonDecode  = "decode"
	reasonInvalid = "invalid"
)

var (
	errClassifierEmpty   = errors.New("classifier returned no content")
	errClassifierInvalid = errors.New("classifier answer is invalid")
)

// classifierError carries the metric reason along with the cause.
type classifierError struct {
	reason string
	err    error
}

func (e *classifierError) Error() string { return fmt.Sprintf("classifier %s: %v", e.reason, e.err) }
func (e *classifierError) Unwrap() error { return e.err }

// classifierAnswer is the JSON shape the classifier is asked for.
type classifierAnswer struct {
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Assignee string `json:"assignee"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Due      string `json:"due"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

func buildSystemPrompt(timeZone string, now time.Time) string {
	return fmt.Sprintf(systemPromptTemplate, timeZone, now.UTC().Format(time.RFC3339))
}

// classify asks the classifier for an intent and validates the answer.
func (uc *implUseCase) classify(ctx context.Context, text string, loc *time.Location, now time.Time) (*nlp.Intent, error) {
	system := llmprovider.TextMessage("system", buildSystemPrompt(loc.String(), now))
	resp, err := uc.classifier.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          []llmprovider.Message{llmprovider.TextMessage("user", "Текст: "+text)},
		MaxTokens:         classifierMaxTokens,
		JSONOnly:          true,
	})
	if err != nil {
		return nil, &classifierError{reason: reasonRequest, err: err}
	}

	raw := strings.TrimSpace(resp.Content.Text())
	if raw == "" {
		return nil, &classifierError{reason: reasonDecode, err: errClassifierEmpty}
	}
	uc.l.Debugf(ctx, "intent.usecase.classify: provider=%s raw=%q", resp.ProviderName, raw)

	var answer classifierAnswer
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &answer); err != nil {
		return nil, &classifierError{reason: reasonDecode, err: err}
	}

	in, err := answer.toIntent(loc)
	if err != nil {
		return nil, &classifierError{reason: reasonInvalid, err: err}
	}
	return in, nil
}

var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFence.FindStringSubmatch(text); len(matches) > 1 {
		text = matches[1]
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return strings.TrimSpace(text)
	}
	return text[start : end+1]
}

// toIntent validates the answer. Instants without an offset are read as
// wall clock in loc.
func (a classifierAnswer) toIntent(loc *time.Location) (*nlp.Intent, error) {
	in := &nlp.Intent{
		Kind:     nlp.Kind(strings.ToLower(strings.TrimSpace(a.Kind))),
		Title:    strings.TrimSpace(a.Title),
		Location: strings.TrimSpace(a.Location),
	}
	if !in.Kind.Valid() {
		return nil, fmt.Errorf("%w: kind %q", errClassifierInvalid, a.Kind)
	}
	if in.Title == "" {
		return nil, fmt.Errorf("%w: empty title", errClassifierInvalid)
	}
	if a.Assignee != "" {
		in.Assignee = nlp.Assignee(strings.ToUpper(strings.TrimSpace(a.Assignee)))
		if !in.Assignee.Valid() {
			return nil, fmt.Errorf("%w: assignee %q", errClassifierInvalid, a.Assignee)
		}
	}

	var err error
	if in.Start, err = parseInstant(a.Start, loc); err != nil {
		return nil, fmt.Errorf("%w: start: %v", errClassifierInvalid, err)
	}
	if in.End, err = parseInstant(a.End, loc); err != nil {
		return nil, fmt.Errorf("%w: end: %v", errClassifierInvalid, err)
	}
	if in.Due, err = parseInstant(a.Due, loc); err != nil {
		return nil, fmt.Errorf("%w: due: %v", errClassifierInvalid, err)
	}
	if a.Date != "" {
		d, err := nlp.ParseDate(strings.TrimSpace(a.Date))
		if err != nil {
			return nil, fmt.Errorf("%w: date: %v", errClassifierInvalid, err)
		}
		in.Date = &d
	}
	if in.Start != nil && in.End != nil && in.End.Before(*in.Start) {
		return nil, fmt.Errorf("%w: end before start", errClassifierInvalid)
	}
	return in, nil
}

var localLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02 15:04"}

func parseInstant(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unsupported time %q", s)
}
