package engine

import "time"

// Clock provides time for frame deltas. Tests inject a fake clock through
// Options to control timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
