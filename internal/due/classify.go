package due

import (
	"fmt"
	"time"
)

// Tier is the urgency-driven display color for a task row.
type Tier int

const (
	TierNone Tier = iota // no due date, neutral color
	TierGreen
	TierYellow
	TierRed
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierGreen:
		return "green"
	case TierYellow:
		return "yellow"
	case TierRed:
		return "red"
	default:
		return "none"
	}
}

// Bucket thresholds, in seconds.
const (
	minuteSeconds = 60
	hourSeconds   = 3600
	daySeconds    = 86400
	weekSeconds   = 7 * daySeconds
)

// Classify maps a task's due timestamp to its display label and color tier
// relative to now. A nil due date yields an empty label and TierNone.
//
// The label buckets (day/hour/minute) and the tier buckets (week/hour) run on
// different scales on purpose: a task due in 30 minutes reads "30 minute(s)
// left" but is already red. Between 0 and 60 seconds left no label rule
// matches and the label is empty while the tier is red; that gap is part of
// the product's behavior.
//
// Pure function of its inputs; safe to call concurrently.
func Classify(dueAt *time.Time, now time.Time) (string, Tier) {
	if dueAt == nil {
		return "", TierNone
	}

	secondsLeft := dueAt.Sub(now).Seconds()

	var label string
	switch {
	case secondsLeft >= daySeconds:
		label = fmt.Sprintf("%d day(s) left", int(secondsLeft/daySeconds))
	case secondsLeft >= hourSeconds:
		label = fmt.Sprintf("%d hour(s) left", int(secondsLeft/hourSeconds))
	case secondsLeft >= minuteSeconds:
		label = fmt.Sprintf("%d minute(s) left", int(secondsLeft/minuteSeconds))
	case secondsLeft <= 0:
		label = "Due date has passed!"
	}

	var tier Tier
	switch {
	case secondsLeft >= weekSeconds:
		tier = TierGreen
	case secondsLeft >= hourSeconds:
		tier = TierYellow
	default:
		tier = TierRed
	}

	return label, tier
}
