package strategy

import (
	"strings"
	"testing"
)

func TestExplain_CrossingSubtraction(t *testing.T) {
	got := Explain(OpSubtraction, 37, 15)
	want := "Split 15 into 7 + 8. First 37 - 7 = 30, then 30 - 8 = 22."
	if got != want {
		t.Errorf("Explain(subtraction, 37, 15) = %q, want %q", got, want)
	}
}

func TestExplain_CrossingAddition(t *testing.T) {
	got := Explain(OpAddition, 8, 9)
	want := "Split 9 into 2 + 7. First 8 + 2 = 10, then 10 + 7 = 17."
	if got != want {
		t.Errorf("Explain(addition, 8, 9) = %q, want %q", got, want)
	}
}

func TestExplain_MakeTen(t *testing.T) {
	got := Explain(OpAddition, 2, 13)
	if !strings.Contains(got, "Split 13 into 8 + 5") {
		t.Errorf("Explain(addition, 2, 13) should show the make-ten split, got %q", got)
	}
	if !strings.Contains(got, "2 + 8 = 10") {
		t.Errorf("Explain(addition, 2, 13) should show the jump to ten, got %q", got)
	}
}

func TestExplain_Basic(t *testing.T) {
	got := Explain(OpAddition, 3, 4)
	if !strings.Contains(got, "3 + 4 = 7") {
		t.Errorf("Explain(addition, 3, 4) should restate the fact, got %q", got)
	}

	got = Explain(OpSubtraction, 9, 4)
	if !strings.Contains(got, "9 - 4 = 5") {
		t.Errorf("Explain(subtraction, 9, 4) should restate the fact, got %q", got)
	}
}
