package gems

import "time"

// GemAward represents a single gem earned.
type GemAward struct {
	Type      GemType
	Rarity    Rarity
	Level     int // the level climbed onto; zero for streak/session gems
	SessionID string
	Reason    string // human-readable reason, e.g. "Climbed to Ten Town"
	AwardedAt time.Time
}
