//go:build netlib

package utils

import (
	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// Building with -tags netlib routes gonum BLAS calls (MulVec, SVD) through a native library.
func init() {
	blas64.Use(netblas.Implementation{})
}
