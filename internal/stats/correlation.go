package stats

import "math"

// PearsonCorrelation calculates the Pearson correlation coefficient between two variables
// Returns value between -1 and 1, or 0 when either variable has no variance
func PearsonCorrelation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var sumXY, sumX2, sumY2 float64
	for i := 0; i < len(x); i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sumXY += dx * dy
		sumX2 += dx * dx
		sumY2 += dy * dy
	}

	if sumX2 == 0 || sumY2 == 0 {
		return 0
	}

	r := sumXY / math.Sqrt(sumX2*sumY2)
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
