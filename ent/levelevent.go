// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/bondten/ent/levelevent"
)

// LevelEvent is the model entity for the LevelEvent schema.
type LevelEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// FromLevel holds the value of the "from_level" field.
	FromLevel int `json:"from_level,omitempty"`
	// ToLevel holds the value of the "to_level" field.
	ToLevel int `json:"to_level,omitempty"`
	// promotion or demotion
	Reason string `json:"reason,omitempty"`
	// Windowed accuracy that triggered the change
	Accuracy float64 `json:"accuracy,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LevelEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case levelevent.FieldAccuracy:
			values[i] = new(sql.NullFloat64)
		case levelevent.FieldID, levelevent.FieldSequence, levelevent.FieldFromLevel, levelevent.FieldToLevel:
			values[i] = new(sql.NullInt64)
		case levelevent.FieldReason, levelevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case levelevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LevelEvent fields.
func (_m *LevelEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case levelevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case levelevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case levelevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case levelevent.FieldFromLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field from_level", values[i])
			} else if value.Valid {
				_m.FromLevel = int(value.Int64)
			}
		case levelevent.FieldToLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field to_level", values[i])
			} else if value.Valid {
				_m.ToLevel = int(value.Int64)
			}
		case levelevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case levelevent.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case levelevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LevelEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LevelEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LevelEvent.
// Note that you need to call LevelEvent.Unwrap() before calling this method if this LevelEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LevelEvent) Update() *LevelEventUpdateOne {
	return NewLevelEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LevelEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LevelEvent) Unwrap() *LevelEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LevelEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LevelEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LevelEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("from_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromLevel))
	builder.WriteString(", ")
	builder.WriteString("to_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToLevel))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// LevelEvents is a parsable slice of LevelEvent.
type LevelEvents []*LevelEvent
