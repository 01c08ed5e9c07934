package nlp

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const moscow = "Europe/Moscow"

// Monday, 12:00 in Moscow.
var mondayMorning = time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return v
}

func TestParse_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantKind  Kind
		wantTitle string
		wantStart string
		wantEnd   string
		wantDue   string
		wantDate  string
	}{
		{
			name:      "tomorrow at ten",
			text:      "встреча завтра в 10",
			wantKind:  KindEvent,
			wantTitle: "Встреча",
			wantStart: "2025-10-14T07:00:00Z",
			wantEnd:   "2025-10-14T08:00:00Z",
		},
		{
			name:      "explicit duration",
			text:      "звонок в 15 на 30 минут",
			wantKind:  KindEvent,
			wantStart: "2025-10-13T12:00:00Z",
			wantEnd:   "2025-10-13T12:30:00Z",
		},
		{
			name:      "task noun wins over time",
			text:      "задача купить торт в 19",
			wantKind:  KindTask,
			wantTitle: "купить торт",
			wantDue:   "2025-10-13T16:00:00Z",
		},
		{
			name:      "from-to range",
			text:      "презентация с 14 до 16",
			wantKind:  KindEvent,
			wantTitle: "презентация",
			wantStart: "2025-10-13T11:00:00Z",
			wantEnd:   "2025-10-13T13:00:00Z",
		},
		{
			name:      "weekday same day",
			text:      "планёрка в понедельник с 9 до 10",
			wantKind:  KindEvent,
			wantTitle: "Событие",
			wantStart: "2025-10-13T06:00:00Z",
			wantEnd:   "2025-10-13T07:00:00Z",
		},
		{
			name:      "date without time",
			text:      "26 октября встреча",
			wantKind:  KindEvent,
			wantTitle: "Событие",
			wantDate:  "2025-10-26",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text, mondayMorning, moscow)
			require.NotNil(t, got)
			assertIntent(t, got, tt.wantKind, tt.wantTitle, tt.wantStart, tt.wantEnd, tt.wantDue, tt.wantDate)
			assert.Equal(t, AssigneeWe, got.Assignee)
		})
	}
}

func assertIntent(t *testing.T, got *Intent, kind Kind, title, start, end, due, date string) {
	t.Helper()
	assert.Equal(t, kind, got.Kind)
	if title != "" {
		assert.Equal(t, title, got.Title)
	}
	assertInstant(t, "start", start, got.Start)
	assertInstant(t, "end", end, got.End)
	assertInstant(t, "due", due, got.Due)
	if date == "" {
		assert.Nil(t, got.Date, "date")
	} else if assert.NotNil(t, got.Date, "date") {
		assert.Equal(t, date, got.Date.String())
	}
}

func assertInstant(t *testing.T, field, want string, got *time.Time) {
	t.Helper()
	if want == "" {
		assert.Nil(t, got, field)
		return
	}
	if assert.NotNil(t, got, field) {
		assert.True(t, ts(t, want).Equal(*got), "%s: want %s, got %s", field, want, got.Format(time.RFC3339))
		assert.Equal(t, time.UTC, got.Location(), "%s must be UTC", field)
	}
}

func TestParse_Blank(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n", " "} {
		assert.Nil(t, Parse(text, mondayMorning, moscow), "%q", text)
	}
}

func TestParse_Idempotent(t *testing.T) {
	inputs := []string{
		"встреча завтра в 10",
		"26 октября встреча",
		"давай добавим задачу купить хлеб",
		"через 2 часа позвонить маме",
		"встреча с Машей в кафе завтра в 19",
	}
	for _, text := range inputs {
		first, err := json.Marshal(Parse(text, mondayMorning, moscow))
		require.NoError(t, err)
		second, err := json.Marshal(Parse(text, mondayMorning, moscow))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second), text)
	}
}

func TestParse_DefaultEnd(t *testing.T) {
	inputs := []string{
		"встреча завтра в 10",
		"созвон в 18:30",
		"встреча в полчетвертого",
		"на выходных сходить в кино",
		"через 2 часа созвон",
		"митинг в 7 вечера",
	}
	for _, text := range inputs {
		got := Parse(text, mondayMorning, moscow)
		require.NotNil(t, got, text)
		require.Equal(t, KindEvent, got.Kind, text)
		require.NotNil(t, got.Start, text)
		require.NotNil(t, got.End, text)
		assert.Equal(t, time.Hour, got.End.Sub(*got.Start), text)
	}
}

func TestParse_ClockClosure(t *testing.T) {
	loc, err := time.LoadLocation(moscow)
	require.NoError(t, err)

	inputs := []string{
		"встреча в 24",
		"встреча в 12 ночи",
		"встреча с 11 до 12 вечера",
		"без четверти час дня созвон",
		"встреча в 23:59",
	}
	for _, text := range inputs {
		got := Parse(text, mondayMorning, moscow)
		require.NotNil(t, got, text)
		require.NotNil(t, got.Start, text)
		local := got.Start.In(loc)
		assert.True(t, local.Hour() >= 0 && local.Hour() < 24, text)
		assert.True(t, local.Minute() >= 0 && local.Minute() < 60, text)
	}

	got := Parse("встреча в 24", mondayMorning, moscow)
	assertInstant(t, "start", "2025-10-12T21:00:00Z", got.Start)

	got = Parse("встреча в 12 ночи", mondayMorning, moscow)
	assertInstant(t, "start", "2025-10-12T21:00:00Z", got.Start)

	got = Parse("без четверти час дня созвон", mondayMorning, moscow)
	assertInstant(t, "start", "2025-10-13T09:45:00Z", got.Start)
}

func TestParse_DatePrecedence(t *testing.T) {
	got := Parse("встреча завтра 20.10 в 15", mondayMorning, moscow)
	require.NotNil(t, got)
	assertIntent(t, got, KindEvent, "Встреча", "2025-10-20T12:00:00Z", "2025-10-20T13:00:00Z", "", "")

	got = Parse("послезавтра 26 октября созвон в 10", mondayMorning, moscow)
	require.NotNil(t, got)
	assertInstant(t, "start", "2025-10-26T07:00:00Z", got.Start)
}

func TestParse_EveningShift(t *testing.T) {
	tests := []struct {
		text  string
		start string
		end   string
	}{
		{"встреча с 2 до 4 вечера", "2025-10-13T11:00:00Z", "2025-10-13T13:00:00Z"},
		{"вечером созвон с 7 до 8", "2025-10-13T16:00:00Z", "2025-10-13T17:00:00Z"},
		{"прогулка с 9 утра до 6 вечера", "2025-10-13T06:00:00Z", "2025-10-13T15:00:00Z"},
		{"встреча с 14 до 16 дня", "2025-10-13T11:00:00Z", "2025-10-13T13:00:00Z"},
		{"сегодня с 9 до 10 уборка", "2025-10-13T06:00:00Z", "2025-10-13T07:00:00Z"},
		{"с 10 до 11 утра, вечером ужин", "2025-10-13T07:00:00Z", "2025-10-13T08:00:00Z"},
		{"с 11 до 1 дня обед", "2025-10-13T08:00:00Z", "2025-10-13T10:00:00Z"},
		{"с 10 вечера до 2 кино", "2025-10-13T19:00:00Z", "2025-10-13T23:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := Parse(tt.text, mondayMorning, moscow)
			require.NotNil(t, got)
			assert.Equal(t, KindEvent, got.Kind)
			assertInstant(t, "start", tt.start, got.Start)
			assertInstant(t, "end", tt.end, got.End)
		})
	}
}

func TestParse_Ranges(t *testing.T) {
	tests := []struct {
		text  string
		title string
		start string
		end   string
	}{
		{"встреча 10:30-12", "Встреча", "2025-10-13T07:30:00Z", "2025-10-13T09:00:00Z"},
		{"йога 18–19", "йога", "2025-10-13T15:00:00Z", "2025-10-13T16:00:00Z"},
		{"задача отчет с 10 по 12", "отчет", "2025-10-13T07:00:00Z", "2025-10-13T09:00:00Z"},
		{"вечеринка с 22 до 2", "вечеринка", "2025-10-13T19:00:00Z", "2025-10-13T23:00:00Z"},
		{"созвон с 10 до 12 часов", "Встреча", "2025-10-13T07:00:00Z", "2025-10-13T09:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := Parse(tt.text, mondayMorning, moscow)
			require.NotNil(t, got)
			assert.Equal(t, KindEvent, got.Kind)
			if tt.title != "Встреча" {
				assert.Equal(t, tt.title, got.Title)
			}
			assertInstant(t, "start", tt.start, got.Start)
			assertInstant(t, "end", tt.end, got.End)
		})
	}
}

func TestParse_StartWithDuration(t *testing.T) {
	got := Parse("созвон с 10 на 2 часа", mondayMorning, moscow)
	require.NotNil(t, got)
	assertIntent(t, got, KindEvent, "", "2025-10-13T07:00:00Z", "2025-10-13T09:00:00Z", "", "")

	got = Parse("тренировка с 19:30 на 45 минут", mondayMorning, moscow)
	require.NotNil(t, got)
	assertIntent(t, got, KindEvent, "тренировка", "2025-10-13T16:30:00Z", "2025-10-13T17:15:00Z", "", "")
}

func TestParse_ConversationalIdioms(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kind  Kind
		title string
		start string
		end   string
		due   string
	}{
		{"half past with afternoon", "встреча в полчетвёртого дня", KindEvent, "Встреча", "2025-10-13T12:30:00Z", "2025-10-13T13:30:00Z", ""},
		{"quarter to with evening", "созвон без четверти пять вечера", KindEvent, "Встреча", "2025-10-13T13:45:00Z", "2025-10-13T14:45:00Z", ""},
		{"in half of", "задача в половине шестого позвонить", KindTask, "позвонить", "", "", "2025-10-13T02:30:00Z"},
		{"half past with duration", "обед полпервого дня на 40 минут", KindEvent, "обед", "2025-10-13T09:30:00Z", "2025-10-13T10:10:00Z", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text, mondayMorning, moscow)
			require.NotNil(t, got)
			assertIntent(t, got, tt.kind, tt.title, tt.start, tt.end, tt.due, "")
		})
	}
}

func TestParse_SingleTime(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kind  Kind
		title string
		start string
		due   string
	}{
		{"evening qualifier", "митинг в 7 вечера", KindEvent, "Встреча", "2025-10-13T16:00:00Z", ""},
		{"afternoon qualifier", "врач в 3 дня", KindEvent, "врач", "2025-10-13T12:00:00Z", ""},
		{"hour word", "к 9 часам утра сдать отчет", KindEvent, "сдать отчет", "2025-10-13T06:00:00Z", ""},
		{"dotted clock after preposition", "в 10.05 созвон", KindEvent, "Встреча", "2025-10-13T07:05:00Z", ""},
		{"task with deadline", "задача отправить документы к 18:00", KindTask, "отправить документы", "", "2025-10-13T15:00:00Z"},
		{"time without nouns is an event", "купить торт в 19", KindEvent, "купить торт", "2025-10-13T16:00:00Z", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text, mondayMorning, moscow)
			require.NotNil(t, got)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.title, got.Title)
			assertInstant(t, "start", tt.start, got.Start)
			assertInstant(t, "due", tt.due, got.Due)
		})
	}
}

func TestParse_ExplicitDates(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start string
		date  string
	}{
		{"day and month", "встреча 26.10 в 10", "2025-10-26T07:00:00Z", ""},
		{"past date rolls to next year", "встреча 5/1 в 10", "2026-01-05T07:00:00Z", ""},
		{"dashed date with year", "встреча 01-02-2026 в 10", "2026-02-01T07:00:00Z", ""},
		{"two digit year", "встреча 15.11.25 в 10", "2025-11-15T07:00:00Z", ""},
		{"month abbreviation with year", "встреча 3 янв 2026", "", "2026-01-03"},
		{"month name is a day not an hour", "встреча 5 ноября", "", "2025-11-05"},
		{"dashed day and month", "встреча 26-10 в 10", "2025-10-26T07:00:00Z", ""},
		{"dashed day and month without time", "встреча 26-10", "", "2025-10-26"},
		{"weekday", "в пятницу созвон в 18", "2025-10-17T15:00:00Z", ""},
		{"weekday with во", "во вторник встреча в 9", "2025-10-14T06:00:00Z", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text, mondayMorning, moscow)
			require.NotNil(t, got)
			assert.Equal(t, KindEvent, got.Kind)
			assertInstant(t, "start", tt.start, got.Start)
			if tt.date != "" {
				require.NotNil(t, got.Date)
				assert.Equal(t, tt.date, got.Date.String())
				assert.Nil(t, got.End)
			} else {
				assert.Nil(t, got.Date)
			}
		})
	}
}

func TestParse_FuzzyPeriods(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		title string
		start string
	}{
		{"weekend", "на выходных сходить в кино", "сходить в кино", "2025-10-18T09:00:00Z"},
		{"weekend with task noun", "задача на выходных убраться", "убраться", "2025-10-18T09:00:00Z"},
		{"end of month with task noun", "в конце месяца задача оплатить счета", "оплатить счета", "2025-10-31T09:00:00Z"},
		{"start of next week", "в начале следующей недели созвон", "Событие", "2025-10-20T09:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text, mondayMorning, moscow)
			require.NotNil(t, got)
			assert.Equal(t, KindEvent, got.Kind)
			assert.Equal(t, tt.title, got.Title)
			assert.Empty(t, got.Location)
			assert.Nil(t, got.Due)
			start := ts(t, tt.start)
			assertInstant(t, "start", tt.start, got.Start)
			assertInstant(t, "end", start.Add(time.Hour).Format(time.RFC3339), got.End)
		})
	}
}

func TestParse_RelativeOffset(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kind  Kind
		title string
		at    string
	}{
		{"hours", "через 2 часа позвонить маме", KindEvent, "позвонить маме", "2025-10-13T11:00:00Z"},
		{"days as task", "задача через 3 дня оплатить интернет", KindTask, "оплатить интернет", "2025-10-16T09:00:00Z"},
		{"implicit one hour", "через час созвон", KindEvent, "Событие", "2025-10-13T10:00:00Z"},
		{"half an hour", "через полчаса выйти", KindEvent, "выйти", "2025-10-13T09:30:00Z"},
		{"week", "через неделю задача продлить страховку", KindTask, "продлить страховку", "2025-10-20T09:00:00Z"},
		{"ignores tomorrow", "завтра через 10 минут чай", KindEvent, "чай", "2025-10-13T09:10:00Z"},
		{"keeps place in title", "через час забрать посылку на почте", KindEvent, "забрать посылку на почте", "2025-10-13T10:00:00Z"},
		{"days with a clock time", "созвон через 2 дня в 10", KindEvent, "Встреча", "2025-10-15T07:00:00Z"},
		{"week with a clock time", "через неделю в 18 ужин", KindEvent, "ужин", "2025-10-20T15:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text, mondayMorning, moscow)
			require.NotNil(t, got)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.title, got.Title)
			if tt.kind == KindTask {
				assertInstant(t, "due", tt.at, got.Due)
				return
			}
			assertInstant(t, "start", tt.at, got.Start)
		})
	}
}

func TestParse_TitleAndLocation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		kind     Kind
		title    string
		location string
	}{
		{"location after time", "встреча с Машей в кафе завтра в 19", KindEvent, "с Машей", "кафе"},
		{"topic is not a place", "встреча на тему бюджета в 10", KindEvent, "на тему бюджета", ""},
		{"location guard keeps temporal phrase", "встреча на следующей неделе", KindEvent, "на следующей неделе", ""},
		{"task keeps phrase", "сходить в магазин", KindTask, "сходить в магазин", ""},
		{"filler prefixes", "давай добавим задачу купить хлеб", KindTask, "купить хлеб", ""},
		{"politeness prefix", "Пожалуйста, создай напоминание полить цветы", KindTask, "полить цветы", ""},
		{"bare numbers are not times", "купить 2 молока", KindTask, "купить 2 молока", ""},
		{"empty event title falls back", "созвон", KindEvent, "Событие", ""},
		{"empty task title falls back", "задача", KindTask, "Задача", ""},
		{"relative words removed", "завтра купить подарок", KindTask, "купить подарок", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text, mondayMorning, moscow)
			require.NotNil(t, got)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.title, got.Title)
			assert.Equal(t, tt.location, got.Location)
		})
	}
}

func TestParse_TimeZones(t *testing.T) {
	friday := time.Date(2025, 10, 24, 9, 0, 0, 0, time.UTC)

	got := Parse("встреча завтра в 10", friday, "Europe/Berlin")
	require.NotNil(t, got)
	assertInstant(t, "start", "2025-10-25T08:00:00Z", got.Start)

	// Daylight saving ends on 2025-10-26 in Berlin.
	got = Parse("встреча в понедельник в 10", friday, "Europe/Berlin")
	require.NotNil(t, got)
	assertInstant(t, "start", "2025-10-27T09:00:00Z", got.Start)

	got = Parse("встреча в 10", mondayMorning, "Mars/Olympus")
	require.NotNil(t, got)
	assertInstant(t, "start", "2025-10-13T10:00:00Z", got.Start)
}

func TestParseWithConfidence(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"встреча завтра в 10", 0.9},
		{"задача купить торт в 19", 0.75},
		{"26 октября встреча", 0.85},
		{"встреча с Машей в кафе завтра в 19", 0.95},
		{"купить хлеб", 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			in, score := ParseWithConfidence(tt.text, mondayMorning, moscow)
			require.NotNil(t, in)
			assert.InDelta(t, tt.want, score, 1e-9)
		})
	}

	in, score := ParseWithConfidence("  ", mondayMorning, moscow)
	assert.Nil(t, in)
	assert.Zero(t, score)
}

func TestConfidence_ShortTitle(t *testing.T) {
	assert.InDelta(t, 0.4, Confidence(&Intent{Kind: KindTask, Title: "ок"}), 1e-9)
	assert.InDelta(t, 1.0, Confidence(&Intent{
		Kind:     KindEvent,
		Title:    "ужин",
		Start:    timePtr(mondayMorning),
		End:      timePtr(mondayMorning.Add(time.Hour)),
		Due:      timePtr(mondayMorning),
		Location: "дома",
	}), 1e-9)
}

func TestStripTokens(t *testing.T) {
	assert.Equal(t, "купить торт", StripTimeTokens("купить торт в 19:00"))
	assert.Equal(t, "созвон по проекту", StripTimeTokens("созвон с 10 до 12 по проекту"))
	assert.Equal(t, "встреча", StripTimeTokens("встреча 10:00-11:30"))
	assert.Equal(t, "звонок", StripTimeTokens("звонок на 30 минут."))

	assert.Equal(t, "встреча", StripDateTokens("встреча 26 октября"))
	assert.Equal(t, "купить хлеб", StripDateTokens("купить хлеб 12.10.2025"))
	assert.Equal(t, "созвон", StripDateTokens("созвон в пятницу"))
}

func TestIntentJSON(t *testing.T) {
	got := Parse("26 октября встреча", mondayMorning, moscow)
	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"event","title":"Событие","assignee":"WE","date":"2025-10-26"}`, string(b))

	got = Parse("встреча завтра в 10", mondayMorning, moscow)
	b, err = json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"event","title":"Встреча","assignee":"WE","start":"2025-10-14T07:00:00Z","end":"2025-10-14T08:00:00Z"}`, string(b))
}
