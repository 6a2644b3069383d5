package geometry2D

// BoundingBox is the axis aligned extent of a curve.
type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}
