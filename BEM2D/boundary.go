package BEM2D

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/notargets/gobem/geometry2D"
	"github.com/notargets/gobem/utils"
)

var ErrUnknownBoundaryCondition = errors.New("BEM2D: unknown boundary condition")

// BoundaryFunc supplies the Dirichlet value at a boundary point.
type BoundaryFunc func(p geometry2D.Point) float64

// HarmonicSolution is a closed form solution of the Laplace equation, used both as
// Dirichlet data and as the exact answer for accuracy checks.
type HarmonicSolution struct {
	Name     string
	U        BoundaryFunc
	Gradient func(p geometry2D.Point) geometry2D.Point
}

// NormalDerivative is the exact Neumann value at p for the unit normal n.
func (hs HarmonicSolution) NormalDerivative(p, n geometry2D.Point) float64 {
	return hs.Gradient(p).Dot(n)
}

var harmonicSolutions = map[string]HarmonicSolution{
	"cubic": {
		Name: "cubic",
		U:    ExactU,
		Gradient: func(p geometry2D.Point) geometry2D.Point {
			x, y := p.X[0], p.X[1]
			return geometry2D.NewPoint(3*(x*x-y*y), -6*x*y)
		},
	},
	"quadratic": {
		Name: "quadratic",
		U: func(p geometry2D.Point) float64 {
			return utils.POW(p.X[0], 2) - utils.POW(p.X[1], 2)
		},
		Gradient: func(p geometry2D.Point) geometry2D.Point {
			return geometry2D.NewPoint(2*p.X[0], -2*p.X[1])
		},
	},
	"linear": {
		Name: "linear",
		U: func(p geometry2D.Point) float64 {
			return p.X[0] + 2*p.X[1]
		},
		Gradient: func(p geometry2D.Point) geometry2D.Point {
			return geometry2D.NewPoint(1, 2)
		},
	},
	"constant": {
		Name: "constant",
		U: func(p geometry2D.Point) float64 {
			return 1
		},
		Gradient: func(p geometry2D.Point) geometry2D.Point {
			return geometry2D.NewPoint(0, 0)
		},
	},
	"exponential": {
		Name: "exponential",
		U: func(p geometry2D.Point) float64 {
			return math.Exp(p.X[0]) * math.Cos(p.X[1])
		},
		Gradient: func(p geometry2D.Point) geometry2D.Point {
			ex := math.Exp(p.X[0])
			return geometry2D.NewPoint(ex*math.Cos(p.X[1]), -ex*math.Sin(p.X[1]))
		},
	},
}

func NewHarmonicSolution(name string) (hs HarmonicSolution, err error) {
	var ok bool
	if hs, ok = harmonicSolutions[name]; !ok {
		err = fmt.Errorf("%w: %q, choose one of %v", ErrUnknownBoundaryCondition, name, HarmonicSolutionNames())
	}
	return
}

func HarmonicSolutionNames() (names []string) {
	for name := range harmonicSolutions {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// ExactU is the reference Dirichlet data x³ - 3xy².
func ExactU(p geometry2D.Point) float64 {
	x, y := p.X[0], p.X[1]
	return utils.POW(x, 3) - 3*x*utils.POW(y, 2)
}

// ExactUNormalDerivative is the normal derivative of ExactU on a circle centered at the origin.
func ExactUNormalDerivative(p geometry2D.Point) float64 {
	var (
		x, y  = p.X[0], p.X[1]
		theta = math.Atan2(y, x)
	)
	return 3*(x*x-y*y)*math.Cos(theta) - 6*x*y*math.Sin(theta)
}
