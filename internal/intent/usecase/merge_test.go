package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pKa1/loveSonia/internal/intent"
	"github.com/pKa1/loveSonia/pkg/nlp"
)

func at(s string) *time.Time {
	t := ts(s)
	return &t
}

func TestMerge(t *testing.T) {
	ruleTask := &nlp.Intent{Kind: nlp.KindTask, Title: "купить молоко", Assignee: nlp.AssigneeWe}
	llmEvent := &nlp.Intent{Kind: nlp.KindEvent, Title: "Ужин", Start: at("2025-10-13T16:00:00Z"), Location: "дома"}

	t.Run("rules only", func(t *testing.T) {
		got, source := merge(ruleTask, 0.6, nil, 0.9)
		assert.Equal(t, intent.SourceRules, source)
		assert.Equal(t, "купить молоко", got.Title)
	})

	t.Run("classifier preferred and completed", func(t *testing.T) {
		got, source := merge(ruleTask, 0.6, llmEvent, 0.9)
		assert.Equal(t, intent.SourceClassifier, source)
		assert.Equal(t, nlp.KindEvent, got.Kind)
		require.NotNil(t, got.End)
		assert.Equal(t, ts("2025-10-13T17:00:00Z"), *got.End, "end defaults to start + 1h")
		assert.Equal(t, nlp.AssigneeWe, got.Assignee)
	})

	t.Run("trusted rules borrow time", func(t *testing.T) {
		rules := &nlp.Intent{Kind: nlp.KindTask, Title: "позвонить маме", Assignee: nlp.AssigneeWe}
		classified := &nlp.Intent{Kind: nlp.KindTask, Title: "Позвонить маме", Due: at("2025-10-14T07:00:00Z")}
		got, source := merge(rules, 0.95, classified, 0.9)
		assert.Equal(t, intent.SourceMerged, source)
		assert.Equal(t, "позвонить маме", got.Title)
		assert.Equal(t, ts("2025-10-14T07:00:00Z"), *got.Due)
	})

	t.Run("trusted rules keep their own time", func(t *testing.T) {
		rules := &nlp.Intent{Kind: nlp.KindEvent, Title: "Встреча", Start: at("2025-10-14T07:00:00Z"), End: at("2025-10-14T08:00:00Z")}
		classified := &nlp.Intent{Kind: nlp.KindEvent, Title: "Встреча", Start: at("2025-10-14T09:00:00Z")}
		got, source := merge(rules, 0.9, classified, 0.9)
		assert.Equal(t, intent.SourceRules, source)
		assert.Equal(t, ts("2025-10-14T07:00:00Z"), *got.Start)
	})

	t.Run("task start becomes due", func(t *testing.T) {
		classified := &nlp.Intent{Kind: nlp.KindTask, Title: "Отчёт", Start: at("2025-10-14T07:00:00Z"), End: at("2025-10-14T08:00:00Z")}
		got, _ := merge(nil, 0, classified, 0.9)
		assert.Nil(t, got.Start)
		assert.Nil(t, got.End)
		assert.Equal(t, ts("2025-10-14T07:00:00Z"), *got.Due)
	})

	t.Run("event with time drops date", func(t *testing.T) {
		d := nlp.Date{Year: 2025, Month: time.October, Day: 14}
		classified := &nlp.Intent{Kind: nlp.KindEvent, Title: "Кино", Start: at("2025-10-14T16:00:00Z"), Date: &d}
		got, _ := merge(nil, 0, classified, 0.9)
		assert.Nil(t, got.Date)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		merge(ruleTask, 0.6, llmEvent, 0.9)
		assert.Nil(t, llmEvent.End)
		assert.Nil(t, ruleTask.Due)
	})
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := map[string]string{
		"```json\n{\"kind\":\"task\"}\n```":       `{"kind":"task"}`,
		"Вот ответ: {\"kind\":\"event\"} Готово.": `{"kind":"event"}`,
		`{"kind":"task","title":"a {b}"}`:         `{"kind":"task","title":"a {b}"}`,
		"нет json":                                "нет json",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeJSONResponse(in), in)
	}
}

func TestClassifierAnswer_ToIntent(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	in, err := classifierAnswer{Kind: "Event", Title: " Кино ", Assignee: "self", Start: "2025-10-14T19:00", Date: "2025-10-14"}.toIntent(moscow)
	require.NoError(t, err)
	assert.Equal(t, nlp.KindEvent, in.Kind)
	assert.Equal(t, "Кино", in.Title)
	assert.Equal(t, nlp.AssigneeSelf, in.Assignee)
	assert.Equal(t, ts("2025-10-14T16:00:00Z"), *in.Start, "wall clock is read in the user's zone")
	assert.Equal(t, "2025-10-14", in.Date.String())

	_, err = classifierAnswer{Kind: "task", Title: ""}.toIntent(moscow)
	assert.ErrorIs(t, err, errClassifierInvalid)

	_, err = classifierAnswer{Kind: "task", Title: "x", Assignee: "BOSS"}.toIntent(moscow)
	assert.ErrorIs(t, err, errClassifierInvalid)

	_, err = classifierAnswer{Kind: "event", Title: "x", Start: "2025-10-14T10:00:00Z", End: "2025-10-14T09:00:00Z"}.toIntent(moscow)
	assert.ErrorIs(t, err, errClassifierInvalid)

	_, err = classifierAnswer{Kind: "event", Title: "x", Date: "14.10.2025"}.toIntent(moscow)
	assert.ErrorIs(t, err, errClassifierInvalid)
}
