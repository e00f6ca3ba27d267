package calendar

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: "", wantErr: false},
		{name: "Local returns local", timezone: "Local", wantErr: false},
		{name: "valid timezone UTC", timezone: "UTC", wantErr: false},
		{name: "valid timezone Europe/London", timezone: "Europe/London", wantErr: false},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, 3, 14, 23, 59, 59, 999, time.UTC)
	got := StartOfDay(in)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay() = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day different hours",
			a:    time.Date(2026, 1, 5, 1, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 1, 5, 23, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "one day forward",
			a:    time.Date(2026, 1, 5, 23, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 1, 6, 1, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "backwards across month",
			a:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC),
			want: -2,
		},
		{
			name: "across spring DST transition",
			a:    time.Date(2026, 3, 7, 0, 0, 0, 0, ny),
			b:    time.Date(2026, 3, 9, 0, 0, 0, 0, ny),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	in := time.Date(2026, 12, 31, 15, 30, 0, 0, time.UTC)
	got := AddDays(in, 1)
	want := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddDays() = %v, want %v", got, want)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "monday is its own week start",
			in:   time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the previous monday",
			in:   time.Date(2026, 1, 11, 10, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "thursday",
			in:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.in); !got.Equal(tt.want) {
				t.Errorf("WeekStart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		in   time.Time
		want int
	}{
		{time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2028, 2, 10, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.in); got != tt.want {
			t.Errorf("DaysInMonth(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2026-07-04", time.UTC)
	if err != nil {
		t.Fatalf("ParseDay() error = %v", err)
	}
	if FormatDay(got) != "2026-07-04" {
		t.Errorf("FormatDay(ParseDay()) = %s", FormatDay(got))
	}

	if _, err := ParseDay("2026/07/04", time.UTC); err == nil {
		t.Error("ParseDay() expected error for wrong layout")
	}
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	c := NewFixedClock(start)
	c.AdvanceDays(2)
	if want := time.Date(2026, 5, 3, 9, 0, 0, 0, time.UTC); !c.Now().Equal(want) {
		t.Errorf("Now() = %v, want %v", c.Now(), want)
	}
}
