package stats

// Histogram bins values into `bins` equal-width intervals over the observed
// [min, max] range. Returns bin edges (len bins+1) and counts (len bins);
// the last bin is inclusive of the maximum. A constant series collapses to a
// single bin holding every value.
func Histogram(values []float64, bins int) (edges []float64, counts []int) {
	if len(values) == 0 || bins <= 0 {
		return nil, nil
	}

	lo := Min(values)
	hi := Max(values)

	if lo == hi {
		return []float64{lo, hi}, []int{len(values)}
	}

	width := (hi - lo) / float64(bins)
	edges = make([]float64, bins+1)
	for i := 0; i <= bins; i++ {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi

	counts = make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}

	return edges, counts
}
