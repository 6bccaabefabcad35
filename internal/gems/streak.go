package gems

// BaseStreakThreshold is the first streak length that awards a gem.
const BaseStreakThreshold = 5

// streakMilestones are the named streak lengths that award gems.
var streakMilestones = []int{5, 10, 15, 20}

// NextStreakThreshold returns the next streak milestone above the
// current streak length. Beyond the last named milestone a gem lands
// every five.
func NextStreakThreshold(current int) int {
	for _, m := range streakMilestones {
		if m > current {
			return m
		}
	}
	return ((current / 5) + 1) * 5
}
