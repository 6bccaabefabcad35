package gems

// GemType identifies the category of achievement.
type GemType string

const (
	GemStreak  GemType = "streak"
	GemSession GemType = "session"
	GemClimb   GemType = "climb"
)

// AllGemTypes returns all gem types in display order.
func AllGemTypes() []GemType {
	return []GemType{GemClimb, GemStreak, GemSession}
}

// DisplayName returns a human-readable label for the gem type.
func (t GemType) DisplayName() string {
	switch t {
	case GemStreak:
		return "Streak"
	case GemSession:
		return "Session"
	case GemClimb:
		return "Climb"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the gem type.
func (t GemType) Icon() string {
	switch t {
	case GemStreak:
		return "⚡"
	case GemSession:
		return "🏆"
	case GemClimb:
		return "⛰️"
	default:
		return "✦"
	}
}
