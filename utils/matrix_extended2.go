package utils

import (
	"gonum.org/v1/gonum/mat"
)

// ConditionNumber is the ratio of the largest to the smallest singular value,
// used to report how well posed an assembled influence matrix is.
func (m Matrix) ConditionNumber() float64 {
	min, max := m.SingularValues()
	// Handle near-zero singular values
	if min < 1e-16 {
		return 1e16
	}
	return max / min
}

// For getting singular values (useful for debugging)
func (m Matrix) SingularValues() (min, max float64) {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDNone) {
		return 0, 1e16
	}

	values := svd.Values(nil)
	if len(values) == 0 {
		return 0, 1e16
	}

	// Singular values are in descending order
	return values[len(values)-1], values[0]
}
