package clock

import "time"

// Clock supplies "now" to date-dependent logic so checkout reports and
// default booking ranges stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now in UTC.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock pinned to a single instant, for tests.
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

// Today formats the clock's current day as a YYYY-MM-DD date.
func Today(c Clock) string {
	return c.Now().Format("2006-01-02")
}
