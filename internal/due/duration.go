package due

import (
	"fmt"
	"time"
)

// Duration is a normalized relative time span used while composing a task's
// due date. After every mutation Minutes < 60 and Hours < 24; Days is
// unbounded. The zero value means "no due date set yet".
type Duration struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Add returns a copy of d with the given increments applied and units carried
// upward (60 minutes become an hour, 24 hours become a day). Negative
// increments are clamped to zero, so the carry invariant holds for any input.
func (d Duration) Add(days, hours, minutes int) Duration {
	if days > 0 {
		d.Days += days
	}
	if hours > 0 {
		d.Hours += hours
	}
	if minutes > 0 {
		d.Minutes += minutes
	}

	if d.Minutes >= 60 {
		d.Hours += d.Minutes / 60
		d.Minutes %= 60
	}
	if d.Hours >= 24 {
		d.Days += d.Hours / 24
		d.Hours %= 24
	}

	return d
}

// IsZero reports whether no time has been accumulated.
func (d Duration) IsZero() bool {
	return d.Days == 0 && d.Hours == 0 && d.Minutes == 0
}

// TotalMinutes returns the whole span expressed in minutes.
func (d Duration) TotalMinutes() int {
	return d.Days*24*60 + d.Hours*60 + d.Minutes
}

// String renders the countdown label shown while composing a task, zero
// padded per field: "01:02:30" for one day, two hours, thirty minutes.
func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Days, d.Hours, d.Minutes)
}

// DueAt converts the relative span into an absolute due timestamp.
func (d Duration) DueAt(now time.Time) time.Time {
	return now.Add(time.Duration(d.TotalMinutes()) * time.Minute)
}
