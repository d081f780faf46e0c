package stats

import "sort"

// FiveNumberSummary returns the five-number summary (min, Q1, median, Q3, max)
func FiveNumberSummary(values []float64) (min, q1, median, q3, max float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	min = sorted[0]
	max = sorted[len(sorted)-1]
	q1 = Quantile(sorted, 0.25)
	median = Quantile(sorted, 0.5)
	q3 = Quantile(sorted, 0.75)

	return
}

// Quartiles returns the three quartiles (Q1, Q2/median, Q3)
func Quartiles(values []float64) (q1, q2, q3 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}

	q1 = Quantile(values, 0.25)
	q2 = Quantile(values, 0.5)
	q3 = Quantile(values, 0.75)

	return
}

// OutliersBounds calculates the lower and upper bounds for outliers using IQR method
// Outliers are values < Q1 - 1.5*IQR or > Q3 + 1.5*IQR
func OutliersBounds(values []float64) (lowerBound, upperBound float64) {
	q1, _, q3 := Quartiles(values)
	iqr := q3 - q1

	lowerBound = q1 - 1.5*iqr
	upperBound = q3 + 1.5*iqr

	return
}

// CountOutliers counts values outside the IQR outlier bounds.
func CountOutliers(values []float64) int {
	if len(values) == 0 {
		return 0
	}

	lowerBound, upperBound := OutliersBounds(values)

	count := 0
	for _, v := range values {
		if v < lowerBound || v > upperBound {
			count++
		}
	}

	return count
}
