// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/bondten/ent/attemptevent"
	"github.com/abhisek/bondten/ent/defectevent"
	"github.com/abhisek/bondten/ent/gemevent"
	"github.com/abhisek/bondten/ent/levelevent"
	"github.com/abhisek/bondten/ent/schema"
	"github.com/abhisek/bondten/ent/sessionevent"
	"github.com/abhisek/bondten/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescProblemKey is the schema descriptor for problem_key field.
	attempteventDescProblemKey := attempteventFields[1].Descriptor()
	// attemptevent.ProblemKeyValidator is a validator for the "problem_key" field. It is called by the builders before save.
	attemptevent.ProblemKeyValidator = attempteventDescProblemKey.Validators[0].(func(string) error)
	// attempteventDescOperation is the schema descriptor for operation field.
	attempteventDescOperation := attempteventFields[2].Descriptor()
	// attemptevent.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	attemptevent.OperationValidator = attempteventDescOperation.Validators[0].(func(string) error)
	// attempteventDescStrategy is the schema descriptor for strategy field.
	attempteventDescStrategy := attempteventFields[3].Descriptor()
	// attemptevent.StrategyValidator is a validator for the "strategy" field. It is called by the builders before save.
	attemptevent.StrategyValidator = attempteventDescStrategy.Validators[0].(func(string) error)
	// attempteventDescWrongGuesses is the schema descriptor for wrong_guesses field.
	attempteventDescWrongGuesses := attempteventFields[6].Descriptor()
	// attemptevent.DefaultWrongGuesses holds the default value on creation for the wrong_guesses field.
	attemptevent.DefaultWrongGuesses = attempteventDescWrongGuesses.Default.(int)
	defecteventMixin := schema.DefectEvent{}.Mixin()
	defecteventMixinFields0 := defecteventMixin[0].Fields()
	_ = defecteventMixinFields0
	defecteventFields := schema.DefectEvent{}.Fields()
	_ = defecteventFields
	// defecteventDescTimestamp is the schema descriptor for timestamp field.
	defecteventDescTimestamp := defecteventMixinFields0[1].Descriptor()
	// defectevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	defectevent.DefaultTimestamp = defecteventDescTimestamp.Default.(func() time.Time)
	// defecteventDescSource is the schema descriptor for source field.
	defecteventDescSource := defecteventFields[0].Descriptor()
	// defectevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	defectevent.SourceValidator = defecteventDescSource.Validators[0].(func(string) error)
	// defecteventDescMessage is the schema descriptor for message field.
	defecteventDescMessage := defecteventFields[1].Descriptor()
	// defectevent.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	defectevent.MessageValidator = defecteventDescMessage.Validators[0].(func(string) error)
	gemeventMixin := schema.GemEvent{}.Mixin()
	gemeventMixinFields0 := gemeventMixin[0].Fields()
	_ = gemeventMixinFields0
	gemeventFields := schema.GemEvent{}.Fields()
	_ = gemeventFields
	// gemeventDescTimestamp is the schema descriptor for timestamp field.
	gemeventDescTimestamp := gemeventMixinFields0[1].Descriptor()
	// gemevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gemevent.DefaultTimestamp = gemeventDescTimestamp.Default.(func() time.Time)
	// gemeventDescGemType is the schema descriptor for gem_type field.
	gemeventDescGemType := gemeventFields[0].Descriptor()
	// gemevent.GemTypeValidator is a validator for the "gem_type" field. It is called by the builders before save.
	gemevent.GemTypeValidator = gemeventDescGemType.Validators[0].(func(string) error)
	// gemeventDescRarity is the schema descriptor for rarity field.
	gemeventDescRarity := gemeventFields[1].Descriptor()
	// gemevent.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	gemevent.RarityValidator = gemeventDescRarity.Validators[0].(func(string) error)
	// gemeventDescSessionID is the schema descriptor for session_id field.
	gemeventDescSessionID := gemeventFields[3].Descriptor()
	// gemevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	gemevent.SessionIDValidator = gemeventDescSessionID.Validators[0].(func(string) error)
	// gemeventDescReason is the schema descriptor for reason field.
	gemeventDescReason := gemeventFields[4].Descriptor()
	// gemevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	gemevent.ReasonValidator = gemeventDescReason.Validators[0].(func(string) error)
	leveleventMixin := schema.LevelEvent{}.Mixin()
	leveleventMixinFields0 := leveleventMixin[0].Fields()
	_ = leveleventMixinFields0
	leveleventFields := schema.LevelEvent{}.Fields()
	_ = leveleventFields
	// leveleventDescTimestamp is the schema descriptor for timestamp field.
	leveleventDescTimestamp := leveleventMixinFields0[1].Descriptor()
	// levelevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	levelevent.DefaultTimestamp = leveleventDescTimestamp.Default.(func() time.Time)
	// leveleventDescReason is the schema descriptor for reason field.
	leveleventDescReason := leveleventFields[2].Descriptor()
	// levelevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	levelevent.ReasonValidator = leveleventDescReason.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescRoundsServed is the schema descriptor for rounds_served field.
	sessioneventDescRoundsServed := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultRoundsServed holds the default value on creation for the rounds_served field.
	sessionevent.DefaultRoundsServed = sessioneventDescRoundsServed.Default.(int)
	// sessioneventDescCorrectRounds is the schema descriptor for correct_rounds field.
	sessioneventDescCorrectRounds := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrectRounds holds the default value on creation for the correct_rounds field.
	sessionevent.DefaultCorrectRounds = sessioneventDescCorrectRounds.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescLevelStart is the schema descriptor for level_start field.
	sessioneventDescLevelStart := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultLevelStart holds the default value on creation for the level_start field.
	sessionevent.DefaultLevelStart = sessioneventDescLevelStart.Default.(int)
	// sessioneventDescLevelEnd is the schema descriptor for level_end field.
	sessioneventDescLevelEnd := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultLevelEnd holds the default value on creation for the level_end field.
	sessionevent.DefaultLevelEnd = sessioneventDescLevelEnd.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
