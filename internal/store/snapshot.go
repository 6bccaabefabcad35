package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/bondten/ent"
	"github.com/abhisek/bondten/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	dataMap, err := snapshotDataToMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	snap, ok := entSnapshotToSnapshot(s)
	if !ok {
		// Corrupt or schema-incompatible data. Report the snapshot as
		// missing so the caller falls back to the event log.
		return nil, nil
	}
	return snap, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the ID threshold: get the Nth most recent snapshot.
	snapshots, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// snapshotDataToMap converts SnapshotData to map[string]any for ent JSON storage.
func snapshotDataToMap(data SnapshotData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSnapshotToSnapshot converts an ent Snapshot to a store Snapshot.
// Returns ok=false when the stored data fails schema validation or
// cannot be decoded, which callers treat as no snapshot at all.
func entSnapshotToSnapshot(s *ent.Snapshot) (*Snapshot, bool) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, false
	}
	if err := validateSnapshotJSON(b); err != nil {
		return nil, false
	}
	var data SnapshotData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, false
	}
	return &Snapshot{
		ID:        s.ID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      data,
	}, true
}

// snapshotSchemaDef is the JSON Schema guarding stored snapshot data.
// It checks structure, not business rules: level range clamping is the
// caller's concern.
var snapshotSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"version", "level"},
	"properties": map[string]any{
		"version":       map[string]any{"type": "integer", "minimum": 1},
		"level":         map[string]any{"type": "integer", "minimum": 1},
		"best_streak":   map[string]any{"type": "integer", "minimum": 0},
		"total_rounds":  map[string]any{"type": "integer", "minimum": 0},
		"total_correct": map[string]any{"type": "integer", "minimum": 0},
		"gem_totals": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "integer", "minimum": 0},
		},
	},
}

var (
	snapshotSchemaOnce sync.Once
	snapshotSchema     *jsonschema.Schema
	snapshotSchemaErr  error
)

// validateSnapshotJSON checks raw snapshot JSON against the snapshot schema.
func validateSnapshotJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSnapshotSchema()
	if err != nil {
		return fmt.Errorf("compile snapshot schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSnapshotSchema compiles the snapshot schema once and caches it.
func compiledSnapshotSchema() (*jsonschema.Schema, error) {
	snapshotSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(snapshotSchemaDef)
		if err != nil {
			snapshotSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			snapshotSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://snapshot.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			snapshotSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}

		snapshotSchema, snapshotSchemaErr = c.Compile(schemaURL)
	})
	return snapshotSchema, snapshotSchemaErr
}
