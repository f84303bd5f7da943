package due

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestAddCarriesMinutesIntoHours(t *testing.T) {
	var d Duration
	for i := 0; i < 90; i++ {
		d = d.Add(0, 0, 1)
	}

	if d.Hours != 1 || d.Minutes != 30 || d.Days != 0 {
		t.Fatalf("expected 00:01:30, got %s", d)
	}
}

func TestAddCarriesHoursIntoDays(t *testing.T) {
	var d Duration
	d = d.Add(0, 23, 0)
	d = d.Add(0, 2, 0)

	if d.Days != 1 || d.Hours != 1 || d.Minutes != 0 {
		t.Fatalf("expected 01:01:00, got %s", d)
	}
}

func TestAddDoubleCarry(t *testing.T) {
	// One more minute at 23:59 cascades through both units.
	d := Duration{Hours: 23, Minutes: 59}
	d = d.Add(0, 0, 1)

	if d.Days != 1 || d.Hours != 0 || d.Minutes != 0 {
		t.Fatalf("expected 01:00:00, got %s", d)
	}

	// A large minute delta carries as far as it needs to.
	d = Duration{Hours: 23, Minutes: 59}
	d = d.Add(0, 0, 61)

	if d.Days != 1 || d.Hours != 1 || d.Minutes != 0 {
		t.Fatalf("expected 01:01:00, got %s", d)
	}
}

func TestAddClampsNegativeDeltas(t *testing.T) {
	d := Duration{Days: 1, Hours: 2, Minutes: 30}
	got := d.Add(-1, -5, -10)

	if got != d {
		t.Fatalf("negative deltas should be no-ops, got %s", got)
	}
}

func TestStringZeroPadding(t *testing.T) {
	tests := []struct {
		d    Duration
		want string
	}{
		{Duration{}, "00:00:00"},
		{Duration{Days: 1, Hours: 2, Minutes: 30}, "01:02:30"},
		{Duration{Days: 10, Hours: 23, Minutes: 59}, "10:23:59"},
	}

	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("%+v: got %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestDueAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	d := Duration{Days: 1, Hours: 2, Minutes: 30}

	want := now.Add(26*time.Hour + 30*time.Minute)
	if got := d.DueAt(now); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestIsZero(t *testing.T) {
	if !(Duration{}).IsZero() {
		t.Error("zero duration should report IsZero")
	}
	if (Duration{Minutes: 1}).IsZero() {
		t.Error("non-zero duration should not report IsZero")
	}
}

// Property: however increments are applied, the result stays normalized and
// the total in minutes equals the sum of all inputs.
func TestProperty_AccumulationIsLosslessAndNormalized(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 50).Draw(rt, "n")

		var d Duration
		total := 0
		for i := 0; i < n; i++ {
			days := rapid.IntRange(0, 5).Draw(rt, "days")
			hours := rapid.IntRange(0, 48).Draw(rt, "hours")
			minutes := rapid.IntRange(0, 200).Draw(rt, "minutes")

			d = d.Add(days, hours, minutes)
			total += days*24*60 + hours*60 + minutes

			if d.Minutes < 0 || d.Minutes >= 60 {
				rt.Fatalf("minutes out of range after add: %s", d)
			}
			if d.Hours < 0 || d.Hours >= 24 {
				rt.Fatalf("hours out of range after add: %s", d)
			}
		}

		if d.TotalMinutes() != total {
			rt.Fatalf("accumulation lost time: got %d minutes, want %d", d.TotalMinutes(), total)
		}
	})
}
