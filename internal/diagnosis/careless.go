package diagnosis

// CarelessAccuracyThreshold is the minimum historical accuracy
// (exclusive) for a wrong submission to be classified as a careless
// slip rather than a gap. Runs last among the rules: a specific value
// pattern always wins over the generic "you usually get these" read.
const CarelessAccuracyThreshold = 0.85

// CarelessClassifier flags wrong submissions from learners who almost
// always get this level right.
type CarelessClassifier struct{}

func (c *CarelessClassifier) Name() string { return "careless" }

func (c *CarelessClassifier) Classify(input *ClassifyInput) (Slip, float64) {
	if input.LevelAccuracy > CarelessAccuracyThreshold {
		return SlipCareless, 0.7
	}
	return "", 0
}
