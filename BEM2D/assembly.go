package BEM2D

import (
	"math"
	"sync"

	"github.com/notargets/gobem/geometry2D"
	"github.com/notargets/gobem/utils"
)

// UComponent is the single layer influence of element n on the midpoint of element m.
func UComponent(curve *geometry2D.CircleCurve, m, n int) float64 {
	var (
		mid  = curve.Midpoint(m)
		x, y = curve.Element(n)
		cv   = NewComponentValues(mid, x, y)
	)
	if m == n {
		// Log singularity integrated in closed form over the element itself
		return (1. - math.Log(cv.H/2.)) * cv.H / tau
	}
	return (cv.Lx2*math.Log(cv.R2) - cv.Lx1*math.Log(cv.R1) + cv.H - cv.Ly1*cv.Theta) / tau
}

// WComponent is the double layer influence of element n on the midpoint of element m.
func WComponent(curve *geometry2D.CircleCurve, m, n int) float64 {
	if m == n {
		return 0.5
	}
	var (
		mid  = curve.Midpoint(m)
		x, y = curve.Element(n)
	)
	return NewComponentValues(mid, x, y).Theta / tau
}

// AssembleInfluenceMatrices fills U and W, splitting rows over ParallelDegree go routines.
// Every entry is computed independently so the result does not depend on ParallelDegree.
func AssembleInfluenceMatrices(curve *geometry2D.CircleCurve, ParallelDegree int) (U, W utils.Matrix) {
	var (
		N  = curve.DivNum
		pm = utils.NewPartitionMap(min(ParallelDegree, N), N)
		wg = sync.WaitGroup{}
	)
	U, W = utils.NewMatrix(N, N), utils.NewMatrix(N, N)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			mMin, mMax := pm.GetBucketRange(np)
			for m := mMin; m < mMax; m++ {
				rowU, rowW := U.RowView(m), W.RowView(m)
				for n := 0; n < N; n++ {
					rowU[n] = UComponent(curve, m, n)
					rowW[n] = WComponent(curve, m, n)
				}
			}
		}(np)
	}
	wg.Wait()
	U.SetReadOnly("U")
	W.SetReadOnly("W")
	return
}
