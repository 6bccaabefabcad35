package diagnosis

// Classifier is one rule for recognizing a slip pattern.
// Returns a slip and confidence (0.0-1.0), or ("", 0) if the rule does
// not apply to the input.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) (Slip, float64)
}

// DefaultClassifiers returns classifiers in priority order. Speed rush
// comes first since a two-second wrong answer says more about pace than
// about number sense; split-structure rules come before answer-value
// rules because a bad split explains the bad answer.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&SpeedRushClassifier{},
		&PartsSumClassifier{},
		&TenBoundaryClassifier{},
		&OffByOneClassifier{},
		&OffByTenClassifier{},
		&TransposedClassifier{},
		&WrongOpClassifier{},
		&CarelessClassifier{},
	}
}

// Classify executes the classifiers in order and returns the first
// match. Falls back to an unclassified result so callers always have a
// hint to show.
func Classify(classifiers []Classifier, input *ClassifyInput) Result {
	for _, c := range classifiers {
		if slip, conf := c.Classify(input); slip != "" {
			return Result{Slip: slip, Confidence: conf, ClassifierName: c.Name()}
		}
	}
	return Result{Slip: SlipUnclassified}
}
