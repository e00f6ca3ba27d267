package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/constants"
)

// WeightEntry is one weigh-in in kilograms, unique per calendar day.
type WeightEntry struct {
	ID     uuid.UUID
	Date   time.Time // local midnight
	Weight float64
}

func NewWeightEntry(weight float64, date time.Time) WeightEntry {
	return WeightEntry{
		ID:     uuid.New(),
		Date:   calendar.StartOfDay(date),
		Weight: weight,
	}
}

// WeightInRange reports whether w lies within the accepted bounds.
func WeightInRange(w float64) bool {
	return w >= constants.MinWeightKg && w <= constants.MaxWeightKg
}

// Retained reports whether the entry survives a cleanup pass run at now: the weight is
// in range and the entry is no older than the retention age.
func (e WeightEntry) Retained(now time.Time) bool {
	if !WeightInRange(e.Weight) {
		return false
	}
	cutoff := calendar.StartOfDay(now).AddDate(-constants.WeightRetentionAge, 0, 0)
	return !e.Date.Before(cutoff)
}
