package problemgen

import (
	"testing"

	"github.com/abhisek/bondten/internal/strategy"
)

func validProblem() *Problem {
	return &Problem{
		Operand1:    8,
		Operand2:    9,
		Operation:   strategy.OpAddition,
		Level:       2,
		Strategy:    strategy.StrategyCrossing,
		Answer:      17,
		Options:     []int{16, 17, 18, 71},
		Explanation: strategy.Explain(strategy.OpAddition, 8, 9),
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
		Retryable: true,
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Validators) != 4 {
		t.Fatalf("expected 4 validators, got %d", len(cfg.Validators))
	}
	names := []string{"structural", "degenerate", "decomp-check", "options"}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxSampleAttempts != 50 {
		t.Errorf("expected MaxSampleAttempts 50, got %d", cfg.MaxSampleAttempts)
	}
	if cfg.MaxRecentProblems != 8 {
		t.Errorf("expected MaxRecentProblems 8, got %d", cfg.MaxRecentProblems)
	}
	if cfg.OptionCount != 4 {
		t.Errorf("expected OptionCount 4, got %d", cfg.OptionCount)
	}
}

func TestStructural_ValidProblem(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validProblem(), GenerateInput{}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_NegativeOperand(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Operand1 = -3
	err := v.Validate(p, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for negative operand")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
	if err.Retryable {
		t.Error("builder defects are not retryable")
	}
}

func TestStructural_SubtractionBelowZero(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Operation = strategy.OpSubtraction
	p.Operand1, p.Operand2 = 5, 9
	if err := v.Validate(p, GenerateInput{}); err == nil {
		t.Fatal("expected error for subtraction below zero")
	}
}

func TestStructural_LevelOutOfRange(t *testing.T) {
	v := &StructuralValidator{}
	for _, lvl := range []int{0, -1, 5} {
		p := validProblem()
		p.Level = lvl
		if err := v.Validate(p, GenerateInput{}); err == nil {
			t.Errorf("expected error for level %d", lvl)
		}
	}
}

func TestStructural_UnknownStrategy(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Strategy = "guess"
	if err := v.Validate(p, GenerateInput{}); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestStructural_EmptyExplanation(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Explanation = ""
	if err := v.Validate(p, GenerateInput{}); err == nil {
		t.Fatal("expected error for empty explanation")
	}
}

func TestDegenerate_ZeroOperand2(t *testing.T) {
	v := &DegenerateValidator{}
	p := validProblem()
	p.Operand2 = 0
	err := v.Validate(p, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for zero operand2")
	}
	if !err.Retryable {
		t.Error("degenerate draws should be retryable")
	}
}

func TestDecompCheck_ValidProblem(t *testing.T) {
	v := &DecompCheckValidator{}
	if err := v.Validate(validProblem(), GenerateInput{}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestDecompCheck_WrongAnswer(t *testing.T) {
	v := &DecompCheckValidator{}
	p := validProblem()
	p.Answer = 18
	err := v.Validate(p, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for wrong answer")
	}
	if err.Retryable {
		t.Error("answer mismatch is a defect, not retryable")
	}
}

func TestDecompCheck_WrongStrategy(t *testing.T) {
	v := &DecompCheckValidator{}
	p := validProblem()
	p.Strategy = strategy.StrategyBasic
	if err := v.Validate(p, GenerateInput{}); err == nil {
		t.Fatal("expected error for misclassified strategy")
	}
}

func TestDecompCheck_BasicSkipsDecomposition(t *testing.T) {
	v := &DecompCheckValidator{}
	p := &Problem{
		Operand1:    3,
		Operand2:    4,
		Operation:   strategy.OpAddition,
		Level:       1,
		Strategy:    strategy.StrategyBasic,
		Answer:      7,
		Options:     []int{6, 7, 8, 17},
		Explanation: strategy.Explain(strategy.OpAddition, 3, 4),
	}
	if err := v.Validate(p, GenerateInput{}); err != nil {
		t.Fatalf("expected nil for basic problem, got %v", err)
	}
}

func TestOptions_ValidProblem(t *testing.T) {
	v := &OptionsValidator{}
	if err := v.Validate(validProblem(), GenerateInput{}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestOptions_WrongCount(t *testing.T) {
	v := &OptionsValidator{}
	p := validProblem()
	p.Options = []int{16, 17, 18}
	if err := v.Validate(p, GenerateInput{}); err == nil {
		t.Fatal("expected error for 3 options")
	}
}

func TestOptions_MissingAnswer(t *testing.T) {
	v := &OptionsValidator{}
	p := validProblem()
	p.Options = []int{1, 2, 3, 4}
	if err := v.Validate(p, GenerateInput{}); err == nil {
		t.Fatal("expected error when answer is absent")
	}
}

func TestOptions_Duplicates(t *testing.T) {
	v := &OptionsValidator{}
	p := validProblem()
	p.Options = []int{17, 17, 18, 19}
	if err := v.Validate(p, GenerateInput{}); err == nil {
		t.Fatal("expected error for duplicate options")
	}
}
