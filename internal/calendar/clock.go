package calendar

import "time"

// Clock supplies the current instant. Every "today" decision in the tracker is made
// against a Clock so tests can pin the calendar.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

// NewSystemClock returns a SystemClock for the given IANA timezone ("" or "Local" for
// the system zone).
func NewSystemClock(timezone string) (SystemClock, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return SystemClock{}, err
	}
	return SystemClock{Location: loc}, nil
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always reports the same instant until moved.
type FixedClock struct {
	t time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

func (c *FixedClock) Now() time.Time {
	return c.t
}

// Set moves the clock to t.
func (c *FixedClock) Set(t time.Time) {
	c.t = t
}

// AdvanceDays moves the clock n calendar days, keeping the wall-clock time of day.
func (c *FixedClock) AdvanceDays(n int) {
	c.t = c.t.AddDate(0, 0, n)
}
