package problemgen

import "testing"

func TestBuildOptions_FourDistinctWithAnswer(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 1)
	for _, answer := range []int{0, 1, 9, 10, 17, 22, 99, 108} {
		p := &Problem{Answer: answer}
		opts := s.buildOptions(p)
		if len(opts) != 4 {
			t.Fatalf("answer %d: expected 4 options, got %d", answer, len(opts))
		}
		seen := make(map[int]bool)
		found := false
		for _, o := range opts {
			if o < 0 {
				t.Errorf("answer %d: negative option %d", answer, o)
			}
			if seen[o] {
				t.Errorf("answer %d: duplicate option %d", answer, o)
			}
			seen[o] = true
			if o == answer {
				found = true
			}
		}
		if !found {
			t.Errorf("answer %d missing from options %v", answer, opts)
		}
	}
}

func TestBuildOptions_DrawsFromCommonSlips(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 2)
	p := &Problem{Answer: 27}
	opts := s.buildOptions(p)
	seen := make(map[int]bool)
	for _, o := range opts {
		seen[o] = true
	}
	// 26, 28, 72 are the first three candidates and none collide, so all
	// must be present alongside 27.
	for _, want := range []int{27, 26, 28, 72} {
		if !seen[want] {
			t.Errorf("expected %d in options, got %v", want, opts)
		}
	}
}

func TestTransposeDigits(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{27, 72},
		{72, 27},
		{10, 1},
		{91, 19},
		{5, -1},
		{0, -1},
		{33, -1},
		{100, -1},
	}
	for _, tc := range cases {
		if got := transposeDigits(tc.n); got != tc.want {
			t.Errorf("transposeDigits(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestBuildOptions_ZeroAnswerPadsUpward(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 3)
	p := &Problem{Answer: 0}
	opts := s.buildOptions(p)
	if len(opts) != 4 {
		t.Fatalf("expected 4 options, got %d", len(opts))
	}
	for _, o := range opts {
		if o < 0 {
			t.Errorf("negative option %d for zero answer", o)
		}
	}
}

func TestGeneratedOptions_AlwaysContainAnswer(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 4)
	for range 100 {
		p, err := s.Generate(GenerateInput{Level: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.CorrectIndex() == -1 {
			t.Errorf("%s: options %v missing answer %d", p.Text(), p.Options, p.Answer)
		}
	}
}

func TestGeneratedOptions_ShuffledAcrossProblems(t *testing.T) {
	// The correct answer must not always land in the same slot.
	s := NewSeeded(DefaultConfig(), 5)
	positions := make(map[int]bool)
	for range 50 {
		p, err := s.Generate(GenerateInput{Level: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		positions[p.CorrectIndex()] = true
	}
	if len(positions) < 2 {
		t.Errorf("correct answer always at the same index: %v", positions)
	}
}
