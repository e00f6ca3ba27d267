package models

import (
	"testing"
	"time"
)

func TestWeightEntry_Retained(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		entry WeightEntry
		want  bool
	}{
		{name: "recent and in range", entry: NewWeightEntry(70, now.AddDate(0, 0, -7)), want: true},
		{name: "three years old", entry: NewWeightEntry(70, now.AddDate(-3, 0, 0)), want: false},
		{name: "exactly two years old", entry: NewWeightEntry(70, now.AddDate(-2, 0, 0)), want: true},
		{name: "too heavy", entry: NewWeightEntry(500, now), want: false},
		{name: "too light", entry: NewWeightEntry(19.9, now), want: false},
		{name: "lower bound", entry: NewWeightEntry(20, now), want: true},
		{name: "upper bound", entry: NewWeightEntry(300, now), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Retained(now); got != tt.want {
				t.Errorf("Retained() = %v, want %v", got, tt.want)
			}
		})
	}
}
