// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldRoundsServed holds the string denoting the rounds_served field in the database.
	FieldRoundsServed = "rounds_served"
	// FieldCorrectRounds holds the string denoting the correct_rounds field in the database.
	FieldCorrectRounds = "correct_rounds"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldLevelStart holds the string denoting the level_start field in the database.
	FieldLevelStart = "level_start"
	// FieldLevelEnd holds the string denoting the level_end field in the database.
	FieldLevelEnd = "level_end"
	// FieldSlipCounts holds the string denoting the slip_counts field in the database.
	FieldSlipCounts = "slip_counts"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldRoundsServed,
	FieldCorrectRounds,
	FieldDurationSecs,
	FieldLevelStart,
	FieldLevelEnd,
	FieldSlipCounts,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultRoundsServed holds the default value on creation for the "rounds_served" field.
	DefaultRoundsServed int
	// DefaultCorrectRounds holds the default value on creation for the "correct_rounds" field.
	DefaultCorrectRounds int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
	// DefaultLevelStart holds the default value on creation for the "level_start" field.
	DefaultLevelStart int
	// DefaultLevelEnd holds the default value on creation for the "level_end" field.
	DefaultLevelEnd int
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByRoundsServed orders the results by the rounds_served field.
func ByRoundsServed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundsServed, opts...).ToFunc()
}

// ByCorrectRounds orders the results by the correct_rounds field.
func ByCorrectRounds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectRounds, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByLevelStart orders the results by the level_start field.
func ByLevelStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelStart, opts...).ToFunc()
}

// ByLevelEnd orders the results by the level_end field.
func ByLevelEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelEnd, opts...).ToFunc()
}
