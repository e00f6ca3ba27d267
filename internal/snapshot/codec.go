// Package snapshot converts tracker state to and from JSON, one value per persisted
// key for storage and one sorted document for export and import.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/constants"
	"github.com/julianstephens/skilltrack/internal/models"
)

// State is the full tracker state in model form.
type State struct {
	Skills           []models.Skill
	Completions      []models.DailyCompletion
	CustomCategories []models.SkillCategory
	CompletedTaskIDs map[uuid.UUID]struct{}
	Routine          map[models.RoutineKey]models.CompletionLevel
	Habits           []models.MorningHabit
	Moments          []models.MemorableMoment
	Rollovers        map[uuid.UUID]time.Time
	// RolloverCarried holds rollovers already carried forward once by a load.
	RolloverCarried  map[uuid.UUID]struct{}
	Weights          []models.WeightEntry
}

// NewState returns a State with every collection empty and non-nil.
func NewState() *State {
	return &State{
		Skills:           []models.Skill{},
		Completions:      []models.DailyCompletion{},
		CustomCategories: []models.SkillCategory{},
		CompletedTaskIDs: map[uuid.UUID]struct{}{},
		Routine:          map[models.RoutineKey]models.CompletionLevel{},
		Habits:           []models.MorningHabit{},
		Moments:          []models.MemorableMoment{},
		Rollovers:        map[uuid.UUID]time.Time{},
		RolloverCarried:  map[uuid.UUID]struct{}{},
		Weights:          []models.WeightEntry{},
	}
}

// document is the export layout. CompletedTaskIds is left out because import rebuilds
// it from the completion history; the carried-rollover marks are load bookkeeping.
type document struct {
	Skills                    []skillRecord      `json:"skills"`
	DailyCompletions          []completionRecord `json:"dailyCompletions"`
	CustomCategories          []categoryRecord   `json:"customCategories"`
	MorningRoutineCompletions map[string]string  `json:"morningRoutineCompletions"`
	MorningHabits             []habitRecord      `json:"morningHabits"`
	MemorableMoments          []momentRecord     `json:"memorableMoments"`
	RolloverTasks             map[string]string  `json:"rolloverTasks"`
	WeightEntries             []weightRecord     `json:"weightEntries"`
}

var documentSections = []string{
	"skills",
	"dailyCompletions",
	"customCategories",
	"morningRoutineCompletions",
	"morningHabits",
	"memorableMoments",
	"rolloverTasks",
	"weightEntries",
}

// Codec interprets calendar days in one location.
type Codec struct {
	loc *time.Location
}

func NewCodec(loc *time.Location) *Codec {
	if loc == nil {
		loc = time.Local
	}
	return &Codec{loc: loc}
}

// Encode serialises the part of st stored under key.
func (c *Codec) Encode(key string, st *State) ([]byte, error) {
	var v any
	switch key {
	case constants.KeySkills:
		v = skillRecords(st.Skills)
	case constants.KeyDailyCompletions:
		v = completionRecords(st.Completions)
	case constants.KeyCustomCategories:
		v = categoryRecords(st.CustomCategories)
	case constants.KeyCompletedTaskIDs:
		v = idList(st.CompletedTaskIDs)
	case constants.KeyMorningRoutineCompletions:
		v = routineRecords(st.Routine)
	case constants.KeyMorningHabits:
		v = habitRecords(st.Habits)
	case constants.KeyMemorableMoments:
		v = momentRecords(st.Moments)
	case constants.KeyRolloverTasks:
		v = rolloverRecords(st.Rollovers)
	case constants.KeyRolloverCarried:
		v = idList(st.RolloverCarried)
	case constants.KeyWeightEntries:
		v = weightRecords(st.Weights)
	default:
		return nil, encodeError(key, errors.New("unknown key"))
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, encodeError(key, err)
	}
	return data, nil
}

// Decode parses data stored under key into the matching field of st. On error st is
// left untouched.
func (c *Codec) Decode(key string, data []byte, st *State) error {
	if !utf8.Valid(data) {
		return decodeError(key, errors.New("value is not valid UTF-8"))
	}

	var err error
	switch key {
	case constants.KeySkills:
		var recs []skillRecord
		if err = strictUnmarshal(data, &recs); err == nil {
			var skills []models.Skill
			if skills, err = c.skills(recs); err == nil {
				st.Skills = skills
			}
		}
	case constants.KeyDailyCompletions:
		var recs []completionRecord
		if err = strictUnmarshal(data, &recs); err == nil {
			var completions []models.DailyCompletion
			if completions, err = c.completions(recs); err == nil {
				st.Completions = lastCompletionPerDay(completions)
			}
		}
	case constants.KeyCustomCategories:
		var recs []categoryRecord
		if err = strictUnmarshal(data, &recs); err == nil {
			var categories []models.SkillCategory
			if categories, err = c.categories(recs); err == nil {
				st.CustomCategories = categories
			}
		}
	case constants.KeyCompletedTaskIDs:
		var recs []string
		if err = strictUnmarshal(data, &recs); err == nil {
			var ids map[uuid.UUID]struct{}
			if ids, err = parseIDSet(recs); err == nil {
				st.CompletedTaskIDs = ids
			}
		}
	case constants.KeyMorningRoutineCompletions:
		var recs map[string]string
		if err = strictUnmarshal(data, &recs); err == nil {
			var routine map[models.RoutineKey]models.CompletionLevel
			if routine, err = c.routine(recs); err == nil {
				st.Routine = routine
			}
		}
	case constants.KeyMorningHabits:
		var recs []habitRecord
		if err = strictUnmarshal(data, &recs); err == nil {
			var habits []models.MorningHabit
			if habits, err = c.habits(recs); err == nil {
				st.Habits = habits
			}
		}
	case constants.KeyMemorableMoments:
		var recs []momentRecord
		if err = strictUnmarshal(data, &recs); err == nil {
			var moments []models.MemorableMoment
			if moments, err = c.moments(recs); err == nil {
				st.Moments = moments
			}
		}
	case constants.KeyRolloverTasks:
		var recs map[string]string
		if err = strictUnmarshal(data, &recs); err == nil {
			var rollovers map[uuid.UUID]time.Time
			if rollovers, err = c.rollovers(recs); err == nil {
				st.Rollovers = rollovers
			}
		}
	case constants.KeyRolloverCarried:
		var recs []string
		if err = strictUnmarshal(data, &recs); err == nil {
			var ids map[uuid.UUID]struct{}
			if ids, err = parseIDSet(recs); err == nil {
				st.RolloverCarried = ids
			}
		}
	case constants.KeyWeightEntries:
		var recs []weightRecord
		if err = strictUnmarshal(data, &recs); err == nil {
			var weights []models.WeightEntry
			if weights, err = c.weights(recs); err == nil {
				st.Weights = lastWeightPerDay(weights)
			}
		}
	default:
		err = errors.New("unknown key")
	}

	if err != nil {
		return decodeError(key, err)
	}
	return nil
}

// EncodeDocument renders st as a pretty-printed export document with every object's
// keys sorted, so equal states always produce identical bytes.
func (c *Codec) EncodeDocument(st *State) ([]byte, error) {
	doc := document{
		Skills:                    skillRecords(st.Skills),
		DailyCompletions:          completionRecords(st.Completions),
		CustomCategories:          categoryRecords(st.CustomCategories),
		MorningRoutineCompletions: routineRecords(st.Routine),
		MorningHabits:             habitRecords(st.Habits),
		MemorableMoments:          momentRecords(st.Moments),
		RolloverTasks:             rolloverRecords(st.Rollovers),
		WeightEntries:             weightRecords(st.Weights),
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, encodeError("", err)
	}

	// Struct fields marshal in declaration order; maps marshal sorted. Round-tripping
	// through a generic value sorts everything.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, encodeError("", err)
	}

	out, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return nil, encodeError("", err)
	}
	return append(out, '\n'), nil
}

// DecodeDocument parses an export document. Every section must be present and every
// record must be valid; any failure returns a *FormatError and no State.
func (c *Codec) DecodeDocument(data []byte) (*State, error) {
	if !utf8.Valid(data) {
		return nil, &FormatError{Op: "import", Err: errors.New("document is not valid UTF-8")}
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, &FormatError{Op: "import", Err: err}
	}
	for _, name := range documentSections {
		if _, ok := sections[name]; !ok {
			return nil, &FormatError{Op: "import", Key: name, Err: errors.New("missing section")}
		}
	}

	var doc document
	if err := strictUnmarshal(data, &doc); err != nil {
		return nil, &FormatError{Op: "import", Err: err}
	}

	st := NewState()
	var err error
	fail := func(section string, err error) (*State, error) {
		return nil, &FormatError{Op: "import", Key: section, Err: err}
	}

	if st.Skills, err = c.skills(doc.Skills); err != nil {
		return fail("skills", err)
	}
	if st.Completions, err = c.completions(doc.DailyCompletions); err != nil {
		return fail("dailyCompletions", err)
	}
	if err := uniqueCompletionDays(st.Completions); err != nil {
		return fail("dailyCompletions", err)
	}
	if st.CustomCategories, err = c.categories(doc.CustomCategories); err != nil {
		return fail("customCategories", err)
	}
	if st.Routine, err = c.routine(doc.MorningRoutineCompletions); err != nil {
		return fail("morningRoutineCompletions", err)
	}
	if st.Habits, err = c.habits(doc.MorningHabits); err != nil {
		return fail("morningHabits", err)
	}
	if st.Moments, err = c.moments(doc.MemorableMoments); err != nil {
		return fail("memorableMoments", err)
	}
	if st.Rollovers, err = c.rollovers(doc.RolloverTasks); err != nil {
		return fail("rolloverTasks", err)
	}
	if st.Weights, err = c.weights(doc.WeightEntries); err != nil {
		return fail("weightEntries", err)
	}
	if err := uniqueWeightDays(st.Weights); err != nil {
		return fail("weightEntries", err)
	}
	return st, nil
}

func completionDay(dc models.DailyCompletion) string {
	return dc.SkillID.String() + "_" + calendar.FormatDay(dc.Date)
}

// uniqueCompletionDays enforces one record per skill per day.
func uniqueCompletionDays(completions []models.DailyCompletion) error {
	seen := make(map[string]struct{}, len(completions))
	for _, dc := range completions {
		k := completionDay(dc)
		if _, dup := seen[k]; dup {
			return fmt.Errorf("duplicate completion for skill %s on %s", dc.SkillID, calendar.FormatDay(dc.Date))
		}
		seen[k] = struct{}{}
	}
	return nil
}

// lastCompletionPerDay collapses records sharing a skill and day, keeping the last one
// in the position of the first.
func lastCompletionPerDay(completions []models.DailyCompletion) []models.DailyCompletion {
	index := make(map[string]int, len(completions))
	out := completions[:0:0]
	for _, dc := range completions {
		k := completionDay(dc)
		if i, ok := index[k]; ok {
			out[i] = dc
			continue
		}
		index[k] = len(out)
		out = append(out, dc)
	}
	return out
}

func uniqueWeightDays(weights []models.WeightEntry) error {
	seen := make(map[string]struct{}, len(weights))
	for _, w := range weights {
		day := calendar.FormatDay(w.Date)
		if _, dup := seen[day]; dup {
			return fmt.Errorf("duplicate weight entry on %s", day)
		}
		seen[day] = struct{}{}
	}
	return nil
}

func lastWeightPerDay(weights []models.WeightEntry) []models.WeightEntry {
	index := make(map[string]int, len(weights))
	out := weights[:0:0]
	for _, w := range weights {
		day := calendar.FormatDay(w.Date)
		if i, ok := index[day]; ok {
			out[i] = w
			continue
		}
		index[day] = len(out)
		out = append(out, w)
	}
	return out
}

func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after JSON value")
	}
	return nil
}

func skillRecords(skills []models.Skill) []skillRecord {
	out := make([]skillRecord, 0, len(skills))
	for _, s := range skills {
		out = append(out, toSkillRecord(s))
	}
	return out
}

func completionRecords(completions []models.DailyCompletion) []completionRecord {
	out := make([]completionRecord, 0, len(completions))
	for _, c := range completions {
		out = append(out, toCompletionRecord(c))
	}
	return out
}

func categoryRecords(categories []models.SkillCategory) []categoryRecord {
	out := make([]categoryRecord, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryRecord(c))
	}
	return out
}

func habitRecords(habits []models.MorningHabit) []habitRecord {
	out := make([]habitRecord, 0, len(habits))
	for _, h := range habits {
		out = append(out, toHabitRecord(h))
	}
	return out
}

func momentRecords(moments []models.MemorableMoment) []momentRecord {
	out := make([]momentRecord, 0, len(moments))
	for _, m := range moments {
		out = append(out, toMomentRecord(m))
	}
	return out
}

func weightRecords(weights []models.WeightEntry) []weightRecord {
	out := make([]weightRecord, 0, len(weights))
	for _, w := range weights {
		out = append(out, toWeightRecord(w))
	}
	return out
}

func idList(ids map[uuid.UUID]struct{}) []string {
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id.String())
	}
	sort.Strings(out)
	return out
}

func routineRecords(routine map[models.RoutineKey]models.CompletionLevel) map[string]string {
	out := make(map[string]string, len(routine))
	for k, level := range routine {
		out[k.String()] = string(level)
	}
	return out
}

func rolloverRecords(rollovers map[uuid.UUID]time.Time) map[string]string {
	out := make(map[string]string, len(rollovers))
	for id, day := range rollovers {
		out[id.String()] = calendar.FormatDay(day)
	}
	return out
}

func (c *Codec) skills(recs []skillRecord) ([]models.Skill, error) {
	out := make([]models.Skill, 0, len(recs))
	for _, r := range recs {
		s, err := r.model(c.loc)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (c *Codec) completions(recs []completionRecord) ([]models.DailyCompletion, error) {
	out := make([]models.DailyCompletion, 0, len(recs))
	for _, r := range recs {
		dc, err := r.model(c.loc)
		if err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, nil
}

func (c *Codec) categories(recs []categoryRecord) ([]models.SkillCategory, error) {
	out := make([]models.SkillCategory, 0, len(recs))
	for _, r := range recs {
		cat, err := r.model()
		if err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, nil
}

func (c *Codec) habits(recs []habitRecord) ([]models.MorningHabit, error) {
	out := make([]models.MorningHabit, 0, len(recs))
	for _, r := range recs {
		h, err := r.model()
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (c *Codec) moments(recs []momentRecord) ([]models.MemorableMoment, error) {
	out := make([]models.MemorableMoment, 0, len(recs))
	for _, r := range recs {
		m, err := r.model(c.loc)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (c *Codec) weights(recs []weightRecord) ([]models.WeightEntry, error) {
	out := make([]models.WeightEntry, 0, len(recs))
	for _, r := range recs {
		w, err := r.model(c.loc)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (c *Codec) routine(recs map[string]string) (map[models.RoutineKey]models.CompletionLevel, error) {
	out := make(map[models.RoutineKey]models.CompletionLevel, len(recs))
	for k, v := range recs {
		key, err := models.ParseRoutineKey(k)
		if err != nil {
			return nil, err
		}
		level, err := models.ParseCompletionLevel(v)
		if err != nil {
			return nil, fmt.Errorf("routine key %s: %w", k, err)
		}
		out[key] = level
	}
	return out, nil
}

// rollovers drops entries whose key is not a skill id.
func (c *Codec) rollovers(recs map[string]string) (map[uuid.UUID]time.Time, error) {
	out := make(map[uuid.UUID]time.Time, len(recs))
	for k, v := range recs {
		id, err := uuid.Parse(k)
		if err != nil {
			continue
		}
		day, err := calendar.ParseDay(v, c.loc)
		if err != nil {
			return nil, fmt.Errorf("rollover for %s: %w", k, err)
		}
		out[id] = day
	}
	return out, nil
}

func parseIDSet(recs []string) (map[uuid.UUID]struct{}, error) {
	out := make(map[uuid.UUID]struct{}, len(recs))
	for _, s := range recs {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("id %q: %w", s, err)
		}
		out[id] = struct{}{}
	}
	return out, nil
}
