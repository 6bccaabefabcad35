package adaptive

import "testing"

func TestRound_CorrectFirstTry(t *testing.T) {
	r := NewRound(3)
	if r.State() != RoundPresenting {
		t.Fatalf("new round state = %d, want presenting", r.State())
	}
	if got := r.Submit(true); got != OutcomeCorrect {
		t.Errorf("Submit = %q, want correct", got)
	}
	if r.State() != RoundCorrect {
		t.Errorf("state = %d, want correct", r.State())
	}
	if r.WrongGuesses() != 0 {
		t.Errorf("wrong guesses = %d, want 0", r.WrongGuesses())
	}
}

func TestRound_CorrectAfterRetries(t *testing.T) {
	r := NewRound(3)
	if got := r.Submit(false); got != OutcomeRetry {
		t.Fatalf("first wrong = %q, want retry", got)
	}
	if got := r.Submit(false); got != OutcomeRetry {
		t.Fatalf("second wrong = %q, want retry", got)
	}
	if got := r.Submit(true); got != OutcomeCorrect {
		t.Fatalf("third submit = %q, want correct", got)
	}
	if r.WrongGuesses() != 2 {
		t.Errorf("wrong guesses = %d, want 2", r.WrongGuesses())
	}
}

func TestRound_ThirdWrongExplains(t *testing.T) {
	r := NewRound(3)
	outcomes := []Outcome{
		r.Submit(false),
		r.Submit(false),
		r.Submit(false),
	}
	want := []Outcome{OutcomeRetry, OutcomeRetry, OutcomeExplain}
	for i, got := range outcomes {
		if got != want[i] {
			t.Errorf("submission %d: got %q, want %q", i+1, got, want[i])
		}
	}
	if r.State() != RoundExplaining {
		t.Errorf("state = %d, want explaining", r.State())
	}
}

func TestRound_ExactlyOneRecordableOutcome(t *testing.T) {
	// However the learner mashes the keyboard, a round yields exactly one
	// outcome that the caller records (correct or explain).
	sequences := [][]bool{
		{true, true, true},
		{false, true, true, false},
		{false, false, false, false, true},
		{false, false, true, false},
	}
	for _, seq := range sequences {
		r := NewRound(3)
		recordable := 0
		for _, ans := range seq {
			switch r.Submit(ans) {
			case OutcomeCorrect, OutcomeExplain:
				recordable++
			}
		}
		if recordable != 1 {
			t.Errorf("sequence %v: %d recordable outcomes, want 1", seq, recordable)
		}
	}
}

func TestRound_SubmissionsAfterResolutionIgnored(t *testing.T) {
	r := NewRound(3)
	r.Submit(true)
	if got := r.Submit(true); got != OutcomeIgnored {
		t.Errorf("post-resolution submit = %q, want ignored", got)
	}
	if got := r.Submit(false); got != OutcomeIgnored {
		t.Errorf("post-resolution submit = %q, want ignored", got)
	}
}

func TestRound_TriesLeft(t *testing.T) {
	r := NewRound(3)
	if got := r.TriesLeft(); got != 3 {
		t.Errorf("tries left = %d, want 3", got)
	}
	r.Submit(false)
	if got := r.TriesLeft(); got != 2 {
		t.Errorf("tries left after one wrong = %d, want 2", got)
	}
	r.Submit(false)
	r.Submit(false)
	if got := r.TriesLeft(); got != 0 {
		t.Errorf("tries left after resolution = %d, want 0", got)
	}
}

func TestNewRound_DefaultsNonPositive(t *testing.T) {
	r := NewRound(0)
	if got := r.TriesLeft(); got != DefaultMaxRoundAttempts {
		t.Errorf("tries left = %d, want %d", got, DefaultMaxRoundAttempts)
	}
}
