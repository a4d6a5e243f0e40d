package clock

import "time"

// Clock implements the clock port with the wall clock.
type Clock struct{}

// Now returns the current time.
func (Clock) Now() time.Time { return time.Now() }
