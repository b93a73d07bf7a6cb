package clock

import "time"

// Mongo stores BSON datetimes with millisecond precision, so every clock
// hands out UTC instants already truncated to the millisecond. That keeps a
// freshly stamped lead equal to the one read back from the store.
const precision = time.Millisecond

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(precision)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t.UTC().Truncate(precision)}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t.UTC().Truncate(precision)
}

// Add advances the clock; handy for ordering leads by createdAt in tests.
func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d).Truncate(precision)
}
