package equity

import "math"

// zNinetyFive is the normal quantile for a 95% confidence interval.
const zNinetyFive = 1.96

// StdError returns the standard error of the equity estimate, treating each
// trial as an independent Bernoulli draw.
func (r Result) StdError() float64 {
	if r.Trials == 0 {
		return 0
	}
	p := r.Equity
	return math.Sqrt(p * (1 - p) / float64(r.Trials))
}

// ConfidenceInterval95 returns the 95% confidence band around the estimate,
// clamped to [0, 1].
func (r Result) ConfidenceInterval95() (low, high float64) {
	margin := zNinetyFive * r.StdError()
	low = math.Max(0, r.Equity-margin)
	high = math.Min(1, r.Equity+margin)
	return low, high
}
