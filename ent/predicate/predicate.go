// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// DefectEvent is the predicate function for defectevent builders.
type DefectEvent func(*sql.Selector)

// GemEvent is the predicate function for gemevent builders.
type GemEvent func(*sql.Selector)

// LevelEvent is the predicate function for levelevent builders.
type LevelEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
