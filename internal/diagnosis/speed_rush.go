package diagnosis

// SpeedRushThresholdMs is the maximum response time (exclusive) for a
// wrong submission to be classified as a speed rush. Zero response
// times are treated as unmeasured and never match.
const SpeedRushThresholdMs = 2000

// SpeedRushClassifier flags submissions made too quickly as rushing.
type SpeedRushClassifier struct{}

func (c *SpeedRushClassifier) Name() string { return "speed-rush" }

func (c *SpeedRushClassifier) Classify(input *ClassifyInput) (Slip, float64) {
	if input.ResponseTimeMs > 0 && input.ResponseTimeMs < SpeedRushThresholdMs {
		return SlipSpeedRush, 0.9
	}
	return "", 0
}
