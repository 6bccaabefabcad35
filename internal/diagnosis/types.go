package diagnosis

import "github.com/abhisek/bondten/internal/problemgen"

// Stage says which part of a round the learner slipped in.
type Stage string

const (
	// StageSplit is the decomposition step, where the learner proposes
	// the two parts.
	StageSplit Stage = "split"

	// StageAnswer is the final-answer step.
	StageAnswer Stage = "answer"
)

// Slip classifies a wrong submission by the pattern it matches.
type Slip string

const (
	SlipSpeedRush    Slip = "speed_rush"
	SlipPartsSum     Slip = "parts_sum"
	SlipTenBoundary  Slip = "ten_boundary"
	SlipOffByOne     Slip = "off_by_one"
	SlipOffByTen     Slip = "off_by_ten"
	SlipTransposed   Slip = "transposed_digits"
	SlipWrongOp      Slip = "wrong_operation"
	SlipCareless     Slip = "careless"
	SlipUnclassified Slip = "unclassified"
)

// Hint returns the coaching line shown with the retry prompt.
func (s Slip) Hint() string {
	switch s {
	case SlipSpeedRush:
		return "Whoa, speedy! Take a breath and look again."
	case SlipPartsSum:
		return "Your two parts need to add back up to the number you split."
	case SlipTenBoundary:
		return "Try a first part that lands you right on a ten."
	case SlipOffByOne:
		return "So close! You are off by just one."
	case SlipOffByTen:
		return "Check your tens. You jumped one ten too far."
	case SlipTransposed:
		return "Look closely at the digits. Did they swap places?"
	case SlipWrongOp:
		return "Check the sign. Are you adding or taking away?"
	case SlipCareless:
		return "You know this one! Look once more."
	default:
		return "Take it slow and try again."
	}
}

// ClassifyInput holds the context for classifying one wrong submission.
// Answer carries the learner's value at the answer stage; Part1 and
// Part2 carry their split at the split stage.
type ClassifyInput struct {
	Problem        *problemgen.Problem
	Stage          Stage
	Answer         int
	Part1          int
	Part2          int
	ResponseTimeMs int

	// LevelAccuracy is the learner's historical accuracy at this
	// problem's level (0.0-1.0), used to spot careless slips.
	LevelAccuracy float64
}

// Result is the output of classifying a wrong submission.
type Result struct {
	Slip           Slip
	Confidence     float64 // 0.0-1.0
	ClassifierName string  // Which rule produced this result
}
