package problemgen

// buildOptions assembles the multiple-choice set: the correct answer plus
// distractors drawn from common slips, deduplicated and shuffled.
// Negative candidates are dropped since answers are never negative.
func (s *Sampler) buildOptions(p *Problem) []int {
	// Ordered by how often children actually make the slip: off by one,
	// transposed digits, off by ten.
	candidates := []int{
		p.Answer - 1,
		p.Answer + 1,
		transposeDigits(p.Answer),
		p.Answer - 10,
		p.Answer + 10,
	}

	opts := []int{p.Answer}
	seen := map[int]bool{p.Answer: true}
	for _, c := range candidates {
		if len(opts) == s.config.OptionCount {
			break
		}
		if c < 0 || seen[c] {
			continue
		}
		seen[c] = true
		opts = append(opts, c)
	}

	// Widen around the answer when dedup left gaps. Always terminates:
	// candidates above the answer are unbounded.
	for delta := 2; len(opts) < s.config.OptionCount; delta++ {
		for _, c := range []int{p.Answer + delta, p.Answer - delta} {
			if len(opts) == s.config.OptionCount {
				break
			}
			if c < 0 || seen[c] {
				continue
			}
			seen[c] = true
			opts = append(opts, c)
		}
	}

	s.rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}

// transposeDigits returns n with its tens and ones digits swapped, the
// classic reversal slip (writing 72 for 27). Returns -1 when n has no
// distinct two-digit transposition.
func transposeDigits(n int) int {
	if n < 10 || n > 99 {
		return -1
	}
	tens, ones := n/10, n%10
	if tens == ones {
		return -1
	}
	return ones*10 + tens
}
