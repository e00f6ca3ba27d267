package models

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

func TestSkill_IsActive(t *testing.T) {
	tests := []struct {
		name  string
		skill Skill
		date  time.Time
		want  bool
	}{
		{
			name:  "fixed inside window",
			skill: Skill{TimeFrame: FixedTimeFrame(day(2026, 1, 1), day(2026, 1, 31))},
			date:  day(2026, 1, 15),
			want:  true,
		},
		{
			name:  "fixed on last day is inclusive",
			skill: Skill{TimeFrame: FixedTimeFrame(day(2026, 1, 1), day(2026, 1, 31))},
			date:  time.Date(2026, 1, 31, 22, 0, 0, 0, time.UTC),
			want:  true,
		},
		{
			name:  "fixed after window",
			skill: Skill{TimeFrame: FixedTimeFrame(day(2026, 1, 1), day(2026, 1, 31))},
			date:  day(2026, 2, 1),
			want:  false,
		},
		{
			name:  "recurring before start",
			skill: Skill{TimeFrame: RecurringTimeFrame(FrequencyWeekly), StartDate: day(2026, 3, 1)},
			date:  day(2026, 2, 28),
			want:  false,
		},
		{
			name:  "recurring same day as start with later time",
			skill: Skill{TimeFrame: RecurringTimeFrame(FrequencyDaily), StartDate: day(2026, 3, 1)},
			date:  time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC),
			want:  true,
		},
		{
			name:  "recurring past end date",
			skill: Skill{TimeFrame: RecurringTimeFrame(FrequencyDaily), StartDate: day(2026, 3, 1), EndDate: ptrTime(day(2026, 3, 10))},
			date:  day(2026, 3, 11),
			want:  false,
		},
		{
			name:  "open ended without end date",
			skill: Skill{TimeFrame: OpenEndedTimeFrame(), StartDate: day(2030, 1, 1)},
			date:  day(2026, 1, 1),
			want:  true,
		},
		{
			name:  "open ended with end date passed",
			skill: Skill{TimeFrame: OpenEndedTimeFrame(), EndDate: ptrTime(day(2026, 1, 1))},
			date:  day(2026, 1, 2),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.skill.IsActive(tt.date); got != tt.want {
				t.Errorf("Skill.IsActive() = %v, want %v", got, tt.want)
			}
			if got := tt.skill.IsArchived(tt.date); got == tt.want {
				t.Errorf("Skill.IsArchived() = %v, want %v", got, !tt.want)
			}
		})
	}
}

func TestSkill_Validate(t *testing.T) {
	tests := []struct {
		name    string
		skill   Skill
		wantErr bool
	}{
		{name: "valid default", skill: NewSkill("Coding", CategoryLearning, "code", day(2026, 1, 1)), wantErr: false},
		{name: "empty name", skill: Skill{TimeFrame: OpenEndedTimeFrame()}, wantErr: true},
		{name: "fixed reversed", skill: Skill{Name: "x", TimeFrame: FixedTimeFrame(day(2026, 2, 1), day(2026, 1, 1))}, wantErr: true},
		{name: "unknown frame", skill: Skill{Name: "x", TimeFrame: TimeFrame{Kind: "weird"}}, wantErr: true},
		{name: "end before start", skill: Skill{Name: "x", TimeFrame: OpenEndedTimeFrame(), StartDate: day(2026, 2, 1), EndDate: ptrTime(day(2026, 1, 1))}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.skill.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Skill.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseFrequency(t *testing.T) {
	for _, in := range []string{"Daily", "daily", "Weekly", "monthly", "Open-ended", "open-ended"} {
		if _, err := ParseFrequency(in); err != nil {
			t.Errorf("ParseFrequency(%q) error = %v", in, err)
		}
	}
	if _, err := ParseFrequency("hourly"); err == nil {
		t.Error("ParseFrequency(hourly) expected error")
	}
}
