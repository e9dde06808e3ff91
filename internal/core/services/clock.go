package services

import "time"

// Clock supplies the current time so tests can pin "now" instead of depending
// on wall-clock execution time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewRealClock returns a Clock backed by time.Now.
func NewRealClock() Clock { return realClock{} }

// DateOf truncates a timestamp to its calendar date at midnight UTC. All
// attendance and roster keys use this normalization.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
