package due

import (
	"testing"
	"time"
)

func TestClassifyNoDueDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

	label, tier := Classify(nil, now)
	if label != "" || tier != TierNone {
		t.Fatalf("got (%q, %s), want (\"\", none)", label, tier)
	}
}

func TestClassify(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		offset    time.Duration
		wantLabel string
		wantTier  Tier
	}{
		{"two weeks out", 14 * 24 * time.Hour, "14 day(s) left", TierGreen},
		{"exactly one week", 7 * 24 * time.Hour, "7 day(s) left", TierGreen},
		{"two days out", 48 * time.Hour, "2 day(s) left", TierYellow},
		{"just under a week", 7*24*time.Hour - time.Second, "6 day(s) left", TierYellow},
		{"five hours out", 5 * time.Hour, "5 hour(s) left", TierYellow},
		{"exactly one hour", time.Hour, "1 hour(s) left", TierYellow},
		// 30 minutes gets a minute-level label but already sits in the
		// red tier: the label and color scales are independent.
		{"thirty minutes out", 30 * time.Minute, "30 minute(s) left", TierRed},
		{"one minute out", time.Minute, "1 minute(s) left", TierRed},
		// Under a minute but not yet due no label rule matches.
		{"thirty seconds out", 30 * time.Second, "", TierRed},
		{"due right now", 0, "Due date has passed!", TierRed},
		{"one second late", -time.Second, "Due date has passed!", TierRed},
		{"a week late", -7 * 24 * time.Hour, "Due date has passed!", TierRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dueAt := now.Add(tt.offset)
			label, tier := Classify(&dueAt, now)

			if label != tt.wantLabel {
				t.Errorf("label: got %q, want %q", label, tt.wantLabel)
			}
			if tier != tt.wantTier {
				t.Errorf("tier: got %s, want %s", tier, tt.wantTier)
			}
		})
	}
}

func TestTierString(t *testing.T) {
	tests := map[Tier]string{
		TierNone:   "none",
		TierGreen:  "green",
		TierYellow: "yellow",
		TierRed:    "red",
	}
	for tier, want := range tests {
		if got := tier.String(); got != want {
			t.Errorf("Tier(%d): got %q, want %q", tier, got, want)
		}
	}
}
