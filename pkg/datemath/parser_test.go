package datemath_test

import (
	"testing"
	"time"

	"github.com/pKa1/loveSonia/pkg/datemath"
)

func TestLoadLocation(t *testing.T) {
	loc, ok := datemath.LoadLocation("Europe/Moscow")
	if !ok || loc.String() != "Europe/Moscow" {
		t.Fatalf("expected Europe/Moscow, got %v (ok=%v)", loc, ok)
	}

	loc, ok = datemath.LoadLocation("Invalid/Timezone")
	if ok || loc != time.UTC {
		t.Fatalf("expected UTC fallback for invalid zone, got %v (ok=%v)", loc, ok)
	}

	if _, ok := datemath.LoadLocation(""); ok {
		t.Fatalf("expected empty zone to report false")
	}
}

func TestAt(t *testing.T) {
	msk, _ := datemath.LoadLocation("Europe/Moscow")
	day := time.Date(2025, 10, 13, 0, 0, 0, 0, msk)

	got := datemath.At(day, 10, 0, msk)
	want := time.Date(2025, 10, 13, 7, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() = %v, want %v", got.UTC(), want)
	}

	got = datemath.At(day, 25, 61, msk)
	want = time.Date(2025, 10, 12, 22, 1, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() with overflow = %v, want %v", got.UTC(), want)
	}
}

func TestAtAcrossDST(t *testing.T) {
	berlin, _ := datemath.LoadLocation("Europe/Berlin")
	summer := datemath.At(time.Date(2025, 7, 1, 0, 0, 0, 0, berlin), 12, 0, berlin)
	winter := datemath.At(time.Date(2025, 12, 1, 0, 0, 0, 0, berlin), 12, 0, berlin)

	if summer.UTC().Hour() != 10 {
		t.Errorf("summer noon in Berlin should be 10:00Z, got %v", summer.UTC())
	}
	if winter.UTC().Hour() != 11 {
		t.Errorf("winter noon in Berlin should be 11:00Z, got %v", winter.UTC())
	}
}

func TestWeekdays(t *testing.T) {
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"Upcoming Monday from Monday", datemath.UpcomingWeekday(monday, time.Monday), monday},
		{"Upcoming Friday from Monday", datemath.UpcomingWeekday(monday, time.Friday), monday.AddDate(0, 0, 4)},
		{"Upcoming Sunday from Monday", datemath.UpcomingWeekday(monday, time.Sunday), monday.AddDate(0, 0, 6)},
		{"Next Monday from Monday", datemath.NextWeekday(monday, time.Monday), monday.AddDate(0, 0, 7)},
		{"Next Wednesday from Monday", datemath.NextWeekday(monday, time.Wednesday), monday.AddDate(0, 0, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		day  time.Time
		want int
	}{
		{time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC), 30},
	}
	for _, tt := range tests {
		got := datemath.EndOfMonth(tt.day)
		if got.Day() != tt.want || got.Month() != tt.day.Month() {
			t.Errorf("EndOfMonth(%v) = %v, want day %d", tt.day, got, tt.want)
		}
	}
	if datemath.DaysIn(2025, time.February) != 28 {
		t.Errorf("DaysIn(2025, Feb) should be 28")
	}
}

func TestAddUnits(t *testing.T) {
	base := time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		n    int
		unit datemath.Unit
		want time.Time
	}{
		{"30 minutes", 30, datemath.Minute, base.Add(30 * time.Minute)},
		{"2 hours", 2, datemath.Hour, base.Add(2 * time.Hour)},
		{"3 days", 3, datemath.Day, base.AddDate(0, 0, 3)},
		{"1 week", 1, datemath.Week, base.AddDate(0, 0, 7)},
		{"1 month", 1, datemath.Month, base.AddDate(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.AddUnits(base, tt.n, tt.unit); !got.Equal(tt.want) {
				t.Errorf("AddUnits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	msk, _ := datemath.LoadLocation("Europe/Moscow")
	now := time.Date(2025, 10, 13, 22, 30, 0, 0, time.UTC) // 01:30 on the 14th in Moscow

	start := datemath.StartOfDay(now, msk)
	if start.Day() != 14 || start.Hour() != 0 {
		t.Fatalf("StartOfDay() = %v, want 2025-10-14 00:00 MSK", start)
	}

	shifted := datemath.ShiftDays(start, 2)
	if shifted.Day() != 16 {
		t.Errorf("ShiftDays() = %v, want the 16th", shifted)
	}
}
