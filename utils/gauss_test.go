package utils

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGauss(t *testing.T) {
	{ // The third row is 4 times the first minus the second, so the system is singular
		A := NewMatrix(3, 3, []float64{
			1, 3, 1,
			1, 1, -1,
			3, 11, 5,
		})
		b := NewVector(3, []float64{9, 1, 35})
		x, err := Gauss(A, b)
		assert.ErrorIs(t, err, ErrSingularMatrix)
		assert.Nil(t, x.V)
	}
	{ // Pivoting is required on the first column
		A := NewMatrix(3, 3, []float64{
			1, 2, 3,
			4, 5, 6,
			7, 8, 10,
		})
		b := NewVector(3, []float64{6, 15, 25})
		x, err := Gauss(A, b)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 1, 1}, x.Data(), 1.e-12)
		// Caller owned inputs are untouched
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 10}, A.RawMatrix().Data)
		assert.Equal(t, []float64{6, 15, 25}, b.Data())
	}
	{ // Diagonally dominant 4x4, every column is eliminated before any back substitution
		A := NewMatrix(4, 4, []float64{
			10, 2, 1, 3,
			1, 12, 2, 1,
			2, 1, 9, 2,
			3, 2, 1, 11,
		})
		b := NewVector(4, []float64{29, 35, 39, 54})
		x, err := Gauss(A, b)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 2, 3, 4}, x.Data(), 1.e-12)
	}
	{ // Zero column
		A := NewMatrix(3, 3, []float64{
			1, 0, 2,
			4, 0, 5,
			7, 0, 9,
		})
		x, err := Gauss(A, NewVector(3, []float64{1, 2, 3}))
		assert.True(t, errors.Is(err, ErrSingularMatrix))
		assert.Nil(t, x.V)
	}
	{ // Zero row
		A := NewMatrix(3, 3, []float64{
			1, 2, 3,
			0, 0, 0,
			4, 5, 7,
		})
		_, err := Gauss(A, NewVector(3, []float64{1, 0, 3}))
		assert.ErrorIs(t, err, ErrSingularMatrix)
	}
	{ // Rank deficient, the pivot vanishes only after elimination
		A := NewMatrix(3, 3, []float64{
			1, 2, 3,
			2, 4, 6.5,
			3, 6, 9,
		})
		_, err := Gauss(A, NewVector(3, []float64{1, 2, 3}))
		assert.ErrorIs(t, err, ErrSingularMatrix)
	}
	{ // Pivots just above the tolerance are accepted
		A := NewMatrix(2, 2, []float64{
			1.e-9, 0,
			0, 1.e-9,
		})
		x, err := Gauss(A, NewVector(2, []float64{1.e-9, 2.e-9}))
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 2}, x.Data(), 1.e-12)
	}
	{ // Non square is rejected before any elimination
		A := NewMatrix(2, 3, []float64{
			0, 0, 0,
			0, 0, 0,
		})
		_, err := Gauss(A, NewVector(2))
		assert.ErrorIs(t, err, ErrNonSquareMatrix)
		assert.False(t, errors.Is(err, ErrSingularMatrix))
	}
	{ // Mismatched right hand side is a programming error
		assert.Panics(t, func() {
			_, _ = Gauss(NewMatrix(2, 2, []float64{1, 0, 0, 1}), NewVector(3))
		})
	}
}

func TestGaussAgainstLU(t *testing.T) {
	var (
		N   = 40
		rnd = rand.New(rand.NewSource(7))
	)
	A := NewMatrix(N, N)
	b := NewVector(N)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			A.Set(i, j, rnd.Float64()-0.5)
		}
		// Diagonal dominance keeps the system well conditioned
		A.Set(i, i, A.At(i, i)+float64(N))
		b.Set(i, rnd.Float64())
	}
	x, err := Gauss(A, b)
	require.NoError(t, err)

	var (
		lu  mat.LU
		xLU mat.VecDense
	)
	lu.Factorize(A.M)
	require.NoError(t, lu.SolveVecTo(&xLU, false, b.V))
	assert.InDeltaSlice(t, xLU.RawVector().Data, x.Data(), 1.e-12)

	// Residual
	r := A.MulVec(x).Sub(b)
	for _, val := range r.Data() {
		assert.InDelta(t, 0, val, 1.e-12)
	}

	// Repeated solves are bit identical
	x2, err := Gauss(A, b)
	require.NoError(t, err)
	assert.Equal(t, x.Data(), x2.Data())
}
