package utils

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// PivotTolerance is the absolute magnitude below which a pivot is treated as zero.
const PivotTolerance = 1.0e-10

var (
	// ErrNonSquareMatrix is returned when a square coefficient matrix was required.
	ErrNonSquareMatrix = errors.New("utils: matrix is not square")

	// ErrSingularMatrix is returned when no pivot of usable magnitude exists in a column.
	ErrSingularMatrix = errors.New("utils: matrix is singular")
)

// Gauss solves A x = b by Gaussian elimination with partial pivoting.
// A and b are not modified, elimination runs on a working copy owned by the call.
// The tolerance on the pivot is absolute, so A is expected to be O(1) scaled.
func Gauss(A Matrix, b Vector) (x Vector, err error) {
	var (
		nr, nc = A.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("%w: dimensions %d x %d", ErrNonSquareMatrix, nr, nc)
		return
	}
	if b.Len() != nr {
		panic(fmt.Errorf("dimension mismatch: matrix is %d x %d, right hand side has length %d", nr, nc, b.Len()))
	}
	var (
		a   = A.Copy()
		rhs = b.Copy()
		bd  = rhs.Data()
		n   = nr
	)
	// Forward elimination
	for k := 0; k < n; k++ {
		p, pmax := k, math.Abs(a.At(k, k))
		for i := k + 1; i < n; i++ {
			if el := math.Abs(a.At(i, k)); el > pmax {
				p, pmax = i, el
			}
		}
		if pmax < PivotTolerance {
			err = fmt.Errorf("%w: pivot column %d has max magnitude %g", ErrSingularMatrix, k, pmax)
			return
		}
		if p != k {
			a.SwapRows(k, p)
			bd[k], bd[p] = bd[p], bd[k]
		}
		rowK := a.RowView(k)
		for i := k + 1; i < n; i++ {
			rowI := a.RowView(i)
			ratio := rowI[k] / rowK[k]
			if ratio == 0 {
				continue
			}
			rowI[k] = 0
			floats.AddScaled(rowI[k+1:], -ratio, rowK[k+1:])
			bd[i] -= ratio * bd[k]
		}
	}
	// Back substitution, the solution overwrites the working right hand side
	for i := n - 1; i >= 0; i-- {
		rowI := a.RowView(i)
		bd[i] = (bd[i] - floats.Dot(rowI[i+1:], bd[i+1:])) / rowI[i]
	}
	x = rhs
	return
}
