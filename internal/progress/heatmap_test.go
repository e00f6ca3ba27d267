package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/skilltrack/internal/models"
)

func TestHeatMap_Week(t *testing.T) {
	cells, err := HeatMap(history(today, F, P), WindowWeek, today)
	require.NoError(t, err)
	require.Len(t, cells, 7)

	last := cells[6]
	assert.True(t, last.IsToday)
	assert.Equal(t, models.CompletionPartial, last.Level)
	assert.Equal(t, models.CompletionFull, cells[5].Level)
	assert.Equal(t, models.CompletionNone, cells[0].Level)
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), cells[0].Day)
}

func TestHeatMap_Month(t *testing.T) {
	cells, err := HeatMap(nil, WindowMonth, today)
	require.NoError(t, err)
	require.Len(t, cells, 42)

	// October 2026 starts on a Thursday, so the grid opens on Monday 28 September.
	assert.Equal(t, time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC), cells[0].Day)
	assert.Equal(t, time.Monday, cells[0].Day.Weekday())
	assert.False(t, cells[0].InRange)
	assert.True(t, cells[3].InRange)

	future := 0
	for _, c := range cells {
		if c.Future {
			future++
		}
	}
	// 19 Oct .. 8 Nov
	assert.Equal(t, 21, future)
}

func TestHeatMap_Year(t *testing.T) {
	cells, err := HeatMap(history(today, F), WindowYear, today)
	require.NoError(t, err)
	require.Len(t, cells, 12)

	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), cells[0].Day)
	assert.True(t, cells[11].IsToday)
	assert.InDelta(t, 100.0/31, cells[11].Intensity, 1e-9)
}

func TestParseWindow(t *testing.T) {
	_, err := ParseWindow("decade")
	assert.Error(t, err)

	w, err := ParseWindow("month")
	require.NoError(t, err)
	assert.Equal(t, WindowMonth, w)
}
