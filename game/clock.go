package game

import "time"

// Clock supplies the time used to gate moves
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Headless runs and tests use it so the
// move cadence does not depend on wall time.
type ManualClock struct {
	current time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

func (m *ManualClock) Now() time.Time { return m.current }

func (m *ManualClock) Set(t time.Time) { m.current = t }

func (m *ManualClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
