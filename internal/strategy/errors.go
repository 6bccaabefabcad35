package strategy

import "fmt"

// InvalidInputError reports operands or a level that the tutor never
// produces: negative numbers, subtraction that would go below zero, or
// a level outside the catalog. It marks API misuse, not a wrong answer.
type InvalidInputError struct {
	Field  string
	Value  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// CheckOperands rejects operand pairs outside the tutor's domain before
// any classification or validation runs.
func CheckOperands(op Operation, operand1, operand2 int) error {
	if operand1 < 0 {
		return &InvalidInputError{Field: "operand1", Value: operand1, Reason: "must not be negative"}
	}
	if operand2 < 0 {
		return &InvalidInputError{Field: "operand2", Value: operand2, Reason: "must not be negative"}
	}
	if op == OpSubtraction && operand2 > operand1 {
		return &InvalidInputError{Field: "operand2", Value: operand2, Reason: "subtraction result would be negative"}
	}
	return nil
}
