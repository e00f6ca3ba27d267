// Package tracker is the completion and progress engine. A Tracker owns every
// collection in memory, serialises all access behind one mutex and persists changed
// collections to a storage.KeyValueStore, one key per collection.
package tracker

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/constants"
	"github.com/julianstephens/skilltrack/internal/logger"
	"github.com/julianstephens/skilltrack/internal/models"
	"github.com/julianstephens/skilltrack/internal/snapshot"
	"github.com/julianstephens/skilltrack/internal/storage"
)

var (
	ErrSkillNotFound  = errors.New("skill not found")
	ErrHabitNotFound  = errors.New("habit not found")
	ErrMomentNotFound = errors.New("moment not found")
	ErrInvalidWeight  = errors.New("weight must be a positive number")
	ErrDerivedHabit   = errors.New("the track weight habit is completed by recording a weight")
	ErrCategoryExists = errors.New("category already exists")
)

type Tracker struct {
	mu       sync.Mutex
	store    storage.KeyValueStore
	clock    calendar.Clock
	codec    *snapshot.Codec
	state    *snapshot.State
	dirty    map[string]struct{}
	autoSave bool
}

// New returns an empty tracker with auto-save enabled. Call Load to read persisted
// state.
func New(store storage.KeyValueStore, clock calendar.Clock) *Tracker {
	return &Tracker{
		store:    store,
		clock:    clock,
		codec:    snapshot.NewCodec(clock.Now().Location()),
		state:    snapshot.NewState(),
		dirty:    make(map[string]struct{}),
		autoSave: true,
	}
}

// SetAutoSave controls whether mutators write their keys immediately. With it off,
// changes accumulate until Flush.
func (t *Tracker) SetAutoSave(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.autoSave = enabled
}

// Load replaces in-memory state with the persisted values. A key that is missing or
// fails to decode falls back to its empty default; that is logged, not returned. Stale
// rollovers are then aged out and the completed-today set is rebuilt.
func (t *Tracker) Load() {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := snapshot.NewState()
	for _, key := range constants.AllKeys {
		data, err := t.store.Get(key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			logger.Warn("Failed to read persisted key, using default", "key", key, "error", err)
			continue
		}
		if err := t.codec.Decode(key, data, st); err != nil {
			logger.Warn("Failed to decode persisted key, using default", "key", key, "error", err)
		}
	}

	t.state = st
	t.dirty = make(map[string]struct{})

	today := t.today()
	t.processRollovers(today)
	t.rebuildCompletedTaskIDs(today)
	t.persist(constants.KeyRolloverTasks, constants.KeyRolloverCarried, constants.KeyCompletedTaskIDs)
}

// SeedDefaults adds the starter skills and morning habits when those collections are
// empty. It reports whether anything was added.
func (t *Tracker) SeedDefaults() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	seeded := false
	if len(t.state.Skills) == 0 {
		t.state.Skills = models.DefaultSkills(t.today())
		t.persist(constants.KeySkills)
		seeded = true
	}
	if len(t.state.Habits) == 0 {
		t.state.Habits = models.DefaultMorningHabits()
		t.persist(constants.KeyMorningHabits)
		seeded = true
	}
	return seeded
}

// Flush writes every changed key. Unlike the auto-save path it returns the failure.
func (t *Tracker) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.flush()
}

// Pending returns the keys changed since the last successful write.
func (t *Tracker) Pending() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pendingKeys()
}

// Today is the current calendar day in the tracker's location.
func (t *Tracker) Today() time.Time {
	return t.today()
}

func (t *Tracker) today() time.Time {
	return calendar.StartOfDay(t.clock.Now())
}

// persist marks keys dirty and, with auto-save on, writes them. Write failures are
// logged and the keys stay dirty for the next attempt.
func (t *Tracker) persist(keys ...string) {
	for _, key := range keys {
		t.dirty[key] = struct{}{}
	}
	if !t.autoSave {
		return
	}
	if err := t.flush(); err != nil {
		logger.Warn("Failed to persist tracker state", "error", err)
	}
}

func (t *Tracker) flush() error {
	var errs []error
	for _, key := range t.pendingKeys() {
		data, err := t.codec.Encode(key, t.state)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := t.store.Set(key, data); err != nil {
			errs = append(errs, err)
			continue
		}
		delete(t.dirty, key)
	}
	return errors.Join(errs...)
}

func (t *Tracker) pendingKeys() []string {
	keys := make([]string, 0, len(t.dirty))
	for k := range t.dirty {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
