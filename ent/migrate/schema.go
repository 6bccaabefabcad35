// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "problem_key", Type: field.TypeString},
		{Name: "operation", Type: field.TypeString},
		{Name: "strategy", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "wrong_guesses", Type: field.TypeInt, Default: 0},
		{Name: "time_ms", Type: field.TypeInt},
		{Name: "slip", Type: field.TypeString, Nullable: true},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_level",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[7]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[8]},
			},
		},
	}
	// DefectEventsColumns holds the columns for the "defect_events" table.
	DefectEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "source", Type: field.TypeString},
		{Name: "message", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "level", Type: field.TypeInt, Nullable: true},
	}
	// DefectEventsTable holds the schema information for the "defect_events" table.
	DefectEventsTable = &schema.Table{
		Name:       "defect_events",
		Columns:    DefectEventsColumns,
		PrimaryKey: []*schema.Column{DefectEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "defectevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DefectEventsColumns[1]},
			},
			{
				Name:    "defectevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DefectEventsColumns[2]},
			},
			{
				Name:    "defectevent_source",
				Unique:  false,
				Columns: []*schema.Column{DefectEventsColumns[3]},
			},
		},
	}
	// GemEventsColumns holds the columns for the "gem_events" table.
	GemEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "gem_type", Type: field.TypeString},
		{Name: "rarity", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
	}
	// GemEventsTable holds the schema information for the "gem_events" table.
	GemEventsTable = &schema.Table{
		Name:       "gem_events",
		Columns:    GemEventsColumns,
		PrimaryKey: []*schema.Column{GemEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gemevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[1]},
			},
			{
				Name:    "gemevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[2]},
			},
			{
				Name:    "gemevent_gem_type",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[3]},
			},
			{
				Name:    "gemevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[6]},
			},
			{
				Name:    "gemevent_rarity",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[4]},
			},
		},
	}
	// LevelEventsColumns holds the columns for the "level_events" table.
	LevelEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "from_level", Type: field.TypeInt},
		{Name: "to_level", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "accuracy", Type: field.TypeFloat64},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// LevelEventsTable holds the schema information for the "level_events" table.
	LevelEventsTable = &schema.Table{
		Name:       "level_events",
		Columns:    LevelEventsColumns,
		PrimaryKey: []*schema.Column{LevelEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "levelevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LevelEventsColumns[1]},
			},
			{
				Name:    "levelevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LevelEventsColumns[2]},
			},
			{
				Name:    "levelevent_to_level",
				Unique:  false,
				Columns: []*schema.Column{LevelEventsColumns[4]},
			},
			{
				Name:    "levelevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{LevelEventsColumns[7]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "rounds_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_rounds", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "level_start", Type: field.TypeInt, Default: 0},
		{Name: "level_end", Type: field.TypeInt, Default: 0},
		{Name: "slip_counts", Type: field.TypeJSON, Nullable: true},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		DefectEventsTable,
		GemEventsTable,
		LevelEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
