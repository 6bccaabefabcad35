package decomp

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/bondten/internal/strategy"
)

func TestValidate_CanonicalPair(t *testing.T) {
	res, err := Validate(strategy.OpAddition, 8, 9, Answer{Part1: 2, Part2: 7})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !res.Valid {
		t.Errorf("canonical pair (2, 7) for 8 + 9 should validate, got message %q", res.Message)
	}
	if res.Canonical.Part1 != 2 || res.Canonical.Part2 != 7 {
		t.Errorf("canonical = (%d, %d), want (2, 7)", res.Canonical.Part1, res.Canonical.Part2)
	}
}

func TestValidate_CanonicalPairReversed(t *testing.T) {
	res, err := Validate(strategy.OpAddition, 8, 9, Answer{Part1: 7, Part2: 2})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !res.Valid {
		t.Error("reversed canonical pair should validate")
	}
}

func TestValidate_OnesDigitFirstRule(t *testing.T) {
	res, err := Validate(strategy.OpSubtraction, 37, 15, Answer{Part1: 7, Part2: 8})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !res.Valid {
		t.Errorf("(7, 8) for 37 - 15 should validate, got message %q", res.Message)
	}
	if res.Canonical.Part1 != 7 || res.Canonical.Part2 != 8 {
		t.Errorf("canonical = (%d, %d), want (7, 8)", res.Canonical.Part1, res.Canonical.Part2)
	}
}

func TestValidate_RuleMatchBeyondCanonical(t *testing.T) {
	// 37 - 27: canonical is (7, 20), but jumping 17 also lands on a
	// ten (37 - 17 = 20) and must be accepted.
	res, err := Validate(strategy.OpSubtraction, 37, 27, Answer{Part1: 17, Part2: 10})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !res.Valid {
		t.Errorf("(17, 10) satisfies the crossing rule for 37 - 27, got message %q", res.Message)
	}
}

func TestValidate_BasicAcceptsAnySplit(t *testing.T) {
	for _, ans := range []Answer{{0, 4}, {1, 3}, {2, 2}, {4, 0}} {
		res, err := Validate(strategy.OpAddition, 3, 4, ans)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if !res.Valid {
			t.Errorf("basic split (%d, %d) of 4 should validate", ans.Part1, ans.Part2)
		}
	}
}

func TestValidate_BasicRejectsWrongSum(t *testing.T) {
	res, err := Validate(strategy.OpAddition, 3, 4, Answer{Part1: 2, Part2: 3})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if res.Valid {
		t.Error("(2, 3) does not sum to 4 and must be rejected")
	}
	if !strings.Contains(res.Message, "4") {
		t.Errorf("failure message should mention the target sum, got %q", res.Message)
	}
}

func TestValidate_WrongPairMessageShowsCanonical(t *testing.T) {
	res, err := Validate(strategy.OpSubtraction, 37, 15, Answer{Part1: 5, Part2: 10})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if res.Valid {
		t.Error("(5, 10) breaks the ones-digit-first rule and must be rejected")
	}
	if !strings.Contains(res.Message, "7 + 8") {
		t.Errorf("failure message should include the canonical pair, got %q", res.Message)
	}
}

func TestValidate_RejectsNegativeParts(t *testing.T) {
	res, err := Validate(strategy.OpAddition, 8, 9, Answer{Part1: -1, Part2: 10})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if res.Valid {
		t.Error("negative parts must never validate")
	}
}

func TestValidate_InvalidInput(t *testing.T) {
	_, err := Validate(strategy.OpSubtraction, 3, 8, Answer{Part1: 1, Part2: 7})
	if err == nil {
		t.Fatal("subtraction with operand2 > operand1 should error")
	}
	var invalid *strategy.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("error should be InvalidInputError, got %T", err)
	}

	_, err = Validate(strategy.OpAddition, -2, 5, Answer{})
	if err == nil {
		t.Fatal("negative operand should error")
	}
}

// Calling twice with identical input must yield identical results.
func TestValidate_Idempotent(t *testing.T) {
	first, err := Validate(strategy.OpSubtraction, 37, 15, Answer{Part1: 5, Part2: 10})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	second, err := Validate(strategy.OpSubtraction, 37, 15, Answer{Part1: 5, Part2: 10})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if first != second {
		t.Errorf("results differ across identical calls: %+v then %+v", first, second)
	}
}
