package spectrum

// CountLocalMaxima counts the points where the discrete derivative of values
// changes sign from positive to negative. Flat runs are skipped, so a plateau
// counts once. NaN differences are treated as flat.
func CountLocalMaxima(values []float64) int {
	count := 0
	rising := false
	for i := 1; i < len(values); i++ {
		d := values[i] - values[i-1]
		switch {
		case d > 0:
			rising = true
		case d < 0:
			if rising {
				count++
			}
			rising = false
		}
	}
	return count
}

// PeakIndex returns the index of the largest value, ignoring NaN.
// It returns -1 if values has no comparable element.
func PeakIndex(values []float64) int {
	idx := -1
	for i, v := range values {
		if v != v {
			continue
		}
		if idx < 0 || v > values[idx] {
			idx = i
		}
	}
	return idx
}
