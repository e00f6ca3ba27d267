package snapshot

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/models"
)

// Wire records. Calendar days travel as YYYY-MM-DD so a document means the same thing
// in every timezone; moments keep their instant as RFC 3339.

type categoryRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	ColorName string `json:"colorName"`
	IsCustom  bool   `json:"isCustom"`
}

type timeFrameRecord struct {
	Type      string `json:"type"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
	Frequency string `json:"frequency,omitempty"`
}

type trackingMetricsRecord struct {
	DailyGoal  string `json:"dailyGoal,omitempty"`
	WeeklyGoal string `json:"weeklyGoal,omitempty"`
}

type skillRecord struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Category        categoryRecord         `json:"category"`
	Frequency       string                 `json:"frequency"`
	TaskDescription string                 `json:"taskDescription"`
	TimeFrame       timeFrameRecord        `json:"timeFrame"`
	TrackingMetrics *trackingMetricsRecord `json:"trackingMetrics,omitempty"`
	StartDate       string                 `json:"startDate"`
	EndDate         string                 `json:"endDate,omitempty"`
	AllowsRollover  bool                   `json:"allowsRollover"`
}

type completionRecord struct {
	ID              string `json:"id"`
	SkillID         string `json:"skillId"`
	Date            string `json:"date"`
	IsCompleted     bool   `json:"isCompleted"`
	CompletionLevel string `json:"completionLevel"`
}

type habitRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Goal  string `json:"goal"`
	Order int    `json:"order"`
}

type momentRecord struct {
	ID          string `json:"id"`
	SkillID     string `json:"skillId,omitempty"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type weightRecord struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

func toCategoryRecord(c models.SkillCategory) categoryRecord {
	return categoryRecord{ID: c.ID, Name: c.Name, Icon: c.Icon, ColorName: c.ColorName, IsCustom: c.IsCustom}
}

func (r categoryRecord) model() (models.SkillCategory, error) {
	if r.Name == "" {
		return models.SkillCategory{}, fmt.Errorf("category %q has no name", r.ID)
	}
	return models.SkillCategory{ID: r.ID, Name: r.Name, Icon: r.Icon, ColorName: r.ColorName, IsCustom: r.IsCustom}, nil
}

func toSkillRecord(s models.Skill) skillRecord {
	r := skillRecord{
		ID:              s.ID.String(),
		Name:            s.Name,
		Category:        toCategoryRecord(s.Category),
		Frequency:       string(s.Frequency),
		TaskDescription: s.TaskDescription,
		TimeFrame:       timeFrameRecord{Type: string(s.TimeFrame.Kind)},
		StartDate:       calendar.FormatDay(s.StartDate),
		AllowsRollover:  s.AllowsRollover,
	}

	switch s.TimeFrame.Kind {
	case models.TimeFrameFixed:
		r.TimeFrame.Start = calendar.FormatDay(s.TimeFrame.Start)
		r.TimeFrame.End = calendar.FormatDay(s.TimeFrame.End)
	case models.TimeFrameRecurring:
		r.TimeFrame.Frequency = string(s.TimeFrame.Frequency)
	}

	if s.TrackingMetrics != (models.TrackingMetrics{}) {
		r.TrackingMetrics = &trackingMetricsRecord{
			DailyGoal:  s.TrackingMetrics.DailyGoal,
			WeeklyGoal: s.TrackingMetrics.WeeklyGoal,
		}
	}
	if s.EndDate != nil {
		r.EndDate = calendar.FormatDay(*s.EndDate)
	}
	return r
}

func (r skillRecord) model(loc *time.Location) (models.Skill, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return models.Skill{}, fmt.Errorf("skill id %q: %w", r.ID, err)
	}
	category, err := r.Category.model()
	if err != nil {
		return models.Skill{}, err
	}
	frequency, err := models.ParseFrequency(r.Frequency)
	if err != nil {
		return models.Skill{}, err
	}
	start, err := calendar.ParseDay(r.StartDate, loc)
	if err != nil {
		return models.Skill{}, fmt.Errorf("skill %s start date: %w", r.ID, err)
	}

	s := models.Skill{
		ID:              id,
		Name:            r.Name,
		Category:        category,
		Frequency:       frequency,
		TaskDescription: r.TaskDescription,
		StartDate:       start,
		AllowsRollover:  r.AllowsRollover,
	}

	switch models.TimeFrameKind(r.TimeFrame.Type) {
	case models.TimeFrameFixed:
		from, err := calendar.ParseDay(r.TimeFrame.Start, loc)
		if err != nil {
			return models.Skill{}, fmt.Errorf("skill %s time frame start: %w", r.ID, err)
		}
		to, err := calendar.ParseDay(r.TimeFrame.End, loc)
		if err != nil {
			return models.Skill{}, fmt.Errorf("skill %s time frame end: %w", r.ID, err)
		}
		s.TimeFrame = models.FixedTimeFrame(from, to)
	case models.TimeFrameRecurring:
		f, err := models.ParseFrequency(r.TimeFrame.Frequency)
		if err != nil {
			return models.Skill{}, fmt.Errorf("skill %s time frame: %w", r.ID, err)
		}
		s.TimeFrame = models.RecurringTimeFrame(f)
	case models.TimeFrameOpenEnded:
		s.TimeFrame = models.OpenEndedTimeFrame()
	default:
		return models.Skill{}, fmt.Errorf("skill %s: unknown time frame %q", r.ID, r.TimeFrame.Type)
	}

	if r.TrackingMetrics != nil {
		s.TrackingMetrics = models.TrackingMetrics{
			DailyGoal:  r.TrackingMetrics.DailyGoal,
			WeeklyGoal: r.TrackingMetrics.WeeklyGoal,
		}
	}
	if r.EndDate != "" {
		end, err := calendar.ParseDay(r.EndDate, loc)
		if err != nil {
			return models.Skill{}, fmt.Errorf("skill %s end date: %w", r.ID, err)
		}
		s.EndDate = &end
	}

	if err := s.Validate(); err != nil {
		return models.Skill{}, err
	}
	return s, nil
}

func toCompletionRecord(c models.DailyCompletion) completionRecord {
	return completionRecord{
		ID:              c.ID.String(),
		SkillID:         c.SkillID.String(),
		Date:            calendar.FormatDay(c.Date),
		IsCompleted:     c.CompletionLevel == models.CompletionFull,
		CompletionLevel: string(c.CompletionLevel),
	}
}

// model trusts completionLevel over the legacy isCompleted flag, except that records
// predating graded levels carry only the flag.
func (r completionRecord) model(loc *time.Location) (models.DailyCompletion, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return models.DailyCompletion{}, fmt.Errorf("completion id %q: %w", r.ID, err)
	}
	skillID, err := uuid.Parse(r.SkillID)
	if err != nil {
		return models.DailyCompletion{}, fmt.Errorf("completion %s skill id: %w", r.ID, err)
	}
	day, err := calendar.ParseDay(r.Date, loc)
	if err != nil {
		return models.DailyCompletion{}, fmt.Errorf("completion %s: %w", r.ID, err)
	}

	level, err := models.ParseCompletionLevel(r.CompletionLevel)
	if err != nil {
		return models.DailyCompletion{}, err
	}
	if r.CompletionLevel == "" && r.IsCompleted {
		level = models.CompletionFull
	}

	c := models.DailyCompletion{ID: id, SkillID: skillID, Date: day}
	c.SetLevel(level)
	return c, nil
}

func toHabitRecord(h models.MorningHabit) habitRecord {
	return habitRecord{ID: h.ID.String(), Name: h.Name, Icon: h.Icon, Color: h.Color, Goal: h.Goal, Order: h.Order}
}

func (r habitRecord) model() (models.MorningHabit, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return models.MorningHabit{}, fmt.Errorf("habit id %q: %w", r.ID, err)
	}
	return models.MorningHabit{ID: id, Name: r.Name, Icon: r.Icon, Color: r.Color, Goal: r.Goal, Order: r.Order}, nil
}

func toMomentRecord(m models.MemorableMoment) momentRecord {
	r := momentRecord{
		ID:          m.ID.String(),
		Date:        m.Date.UTC().Format(time.RFC3339),
		Title:       m.Title,
		Description: m.Description,
		Category:    string(m.Category),
	}
	if m.SkillID != nil {
		r.SkillID = m.SkillID.String()
	}
	return r
}

func (r momentRecord) model(loc *time.Location) (models.MemorableMoment, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return models.MemorableMoment{}, fmt.Errorf("moment id %q: %w", r.ID, err)
	}
	date, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return models.MemorableMoment{}, fmt.Errorf("moment %s date: %w", r.ID, err)
	}
	category, err := models.ParseMomentCategory(r.Category)
	if err != nil {
		return models.MemorableMoment{}, err
	}

	m := models.MemorableMoment{
		ID:          id,
		Date:        date.In(loc),
		Title:       r.Title,
		Description: r.Description,
		Category:    category,
	}
	if r.SkillID != "" {
		skillID, err := uuid.Parse(r.SkillID)
		if err != nil {
			return models.MemorableMoment{}, fmt.Errorf("moment %s skill id: %w", r.ID, err)
		}
		m.SkillID = &skillID
	}
	return m, nil
}

func toWeightRecord(w models.WeightEntry) weightRecord {
	return weightRecord{ID: w.ID.String(), Date: calendar.FormatDay(w.Date), Weight: w.Weight}
}

func (r weightRecord) model(loc *time.Location) (models.WeightEntry, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return models.WeightEntry{}, fmt.Errorf("weight entry id %q: %w", r.ID, err)
	}
	day, err := calendar.ParseDay(r.Date, loc)
	if err != nil {
		return models.WeightEntry{}, fmt.Errorf("weight entry %s: %w", r.ID, err)
	}
	return models.WeightEntry{ID: id, Date: day, Weight: r.Weight}, nil
}
