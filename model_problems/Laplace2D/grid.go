package Laplace2D

import (
	"github.com/notargets/gobem/geometry2D"
)

// InteriorGrid returns the points of a (2n+1) x (2n+1) lattice spanning the curve's bounding box
// that lie strictly inside the curve, ordered by column then row.
func InteriorGrid(curve *geometry2D.CircleCurve, n int) (points []geometry2D.Point) {
	if n < 1 {
		return
	}
	var (
		box    = curve.Box
		dx, dy = (box.XMax[0] - box.XMin[0]) / float64(2*n), (box.XMax[1] - box.XMin[1]) / float64(2*n)
	)
	for i := 0; i <= 2*n; i++ {
		for j := 0; j <= 2*n; j++ {
			p := geometry2D.NewPoint(box.XMin[0]+float64(i)*dx, box.XMin[1]+float64(j)*dy)
			if curve.Contains(p) {
				points = append(points, p)
			}
		}
	}
	return
}
