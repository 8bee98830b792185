package forecast

import "math"

// DetectSpikes flags buckets whose value exceeds the centered rolling mean by
// more than threshold standard deviations. The bucket under test is excluded
// from its own window, otherwise a single large burst inflates the deviation
// enough to mask itself. The window shrinks at the series edges instead of
// dropping buckets, so every position produces a result. Series shorter than
// the window are never flagged.
func DetectSpikes(values []float64, window int, threshold float64) []bool {
	spikes := make([]bool, len(values))
	if len(values) < window || window <= 0 {
		return spikes
	}

	half := window / 2
	neighbors := make([]float64, 0, window)
	for i, v := range values {
		lo := max(0, i-half)
		hi := min(len(values), i+half+1)

		neighbors = neighbors[:0]
		neighbors = append(neighbors, values[lo:i]...)
		neighbors = append(neighbors, values[i+1:hi]...)

		mean, std := meanStd(neighbors)
		spikes[i] = v > mean+threshold*std
	}

	return spikes
}

// meanStd returns the mean and sample standard deviation of values. The
// deviation of a single observation is zero.
func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	if len(values) < 2 {
		return mean, 0
	}

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}

	return mean, math.Sqrt(sq / float64(len(values)-1))
}

func countSpikes(spikes []bool) int {
	n := 0
	for _, s := range spikes {
		if s {
			n++
		}
	}

	return n
}
