// Package admission holds the time-windowed gate for interview room
// access. It is a pure predicate over two timestamps with no I/O, so it
// can be tested directly against its boundary behavior.
package admission

import (
	"errors"
	"fmt"
	"time"
)

// Window is how long after the scheduled start a room stays joinable.
const Window = 60 * time.Minute

var (
	ErrTooEarly = errors.New("room not open yet")
	ErrExpired  = errors.New("room access window expired")
)

// Check decides whether a participant may retrieve the room identifier
// at the given moment. The delta is measured in whole minutes from the
// scheduled start; both edges of the window are joinable: a caller at
// exactly the start or exactly 60 minutes past it is admitted.
func Check(scheduledStart, now time.Time) error {
	mins := int64(now.Sub(scheduledStart) / time.Minute)

	if mins < 0 {
		return ErrTooEarly
	}
	if mins > int64(Window/time.Minute) {
		return ErrExpired
	}
	return nil
}

// ScheduledStart combines a day-level date with a 24-hour "HH:MM" wall
// time into the start instant, in the date's location.
func ScheduledStart(date time.Time, wallTime string) (time.Time, error) {
	t, err := time.Parse("15:04", wallTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid interview time %q: %w", wallTime, err)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}
