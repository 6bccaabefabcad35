package diagnosis

// Service classifies wrong submissions using the rule chain and tracks
// slip counts for the session summary.
type Service struct {
	classifiers []Classifier
	counts      map[Slip]int
}

// NewService creates a diagnosis service with the default rule chain.
func NewService() *Service {
	return &Service{
		classifiers: DefaultClassifiers(),
		counts:      make(map[Slip]int),
	}
}

// Diagnose classifies one wrong submission and records the slip.
// Classification is synchronous and pure; the only state touched is the
// per-session slip tally.
func (s *Service) Diagnose(input *ClassifyInput) Result {
	result := Classify(s.classifiers, input)
	s.counts[result.Slip]++
	return result
}

// Counts returns the slips tallied so far this session, keyed by slip.
func (s *Service) Counts() map[Slip]int {
	out := make(map[Slip]int, len(s.counts))
	for slip, n := range s.counts {
		out[slip] = n
	}
	return out
}

// TopSlip returns the most frequent slip this session and its count.
// Returns ("", 0) when nothing has been tallied. Ties break toward the
// registry order so the result is stable.
func (s *Service) TopSlip() (Slip, int) {
	var top Slip
	best := 0
	for i := range seedSlips {
		slip := seedSlips[i].Slip
		if slip == SlipUnclassified {
			continue
		}
		if n := s.counts[slip]; n > best {
			top, best = slip, n
		}
	}
	return top, best
}

// Reset clears the per-session tally.
func (s *Service) Reset() {
	s.counts = make(map[Slip]int)
}
