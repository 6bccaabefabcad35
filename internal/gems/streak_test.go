package gems

import "testing"

func TestNextStreakThreshold_NamedMilestones(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 5},
		{4, 5},
		{5, 10},
		{9, 10},
		{10, 15},
		{15, 20},
		{19, 20},
	}

	for _, tt := range tests {
		if got := NextStreakThreshold(tt.current); got != tt.want {
			t.Errorf("NextStreakThreshold(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestNextStreakThreshold_EveryFiveBeyondTwenty(t *testing.T) {
	for current := 20; current <= 60; current++ {
		got := NextStreakThreshold(current)
		if got <= current {
			t.Fatalf("NextStreakThreshold(%d) = %d, not above current", current, got)
		}
		if got%5 != 0 {
			t.Fatalf("NextStreakThreshold(%d) = %d, not a multiple of five", current, got)
		}
		if got-current > 5 {
			t.Fatalf("NextStreakThreshold(%d) = %d, skipped a milestone", current, got)
		}
	}
}

func TestBaseStreakThreshold_IsFirstMilestone(t *testing.T) {
	if got := NextStreakThreshold(0); got != BaseStreakThreshold {
		t.Errorf("first milestone = %d, want BaseStreakThreshold %d", got, BaseStreakThreshold)
	}
}
