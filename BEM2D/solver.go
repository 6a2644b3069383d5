package BEM2D

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gobem/geometry2D"
	"github.com/notargets/gobem/utils"
)

// Result is the field value computed at an interior point.
type Result struct {
	Point geometry2D.Point
	Value float64
}

// SampleBoundary evaluates the Dirichlet data at each boundary node.
func SampleBoundary(curve *geometry2D.CircleCurve, bc BoundaryFunc) (uVec utils.Vector) {
	uVec = utils.NewVector(curve.DivNum)
	for i, p := range curve.Points {
		uVec.Set(i, bc(p))
	}
	return
}

// CalcConjugateValues solves U q = W u for the boundary normal derivative q given the
// Dirichlet data bc. uVec is returned even when the solve fails.
func CalcConjugateValues(curve *geometry2D.CircleCurve, bc BoundaryFunc) (uVec, qVec utils.Vector, err error) {
	U, W := AssembleInfluenceMatrices(curve, 1)
	uVec = SampleBoundary(curve, bc)
	qVec, err = utils.Gauss(U, W.MulVec(uVec))
	return
}

// BemCalc computes the field at an interior point. Solver failures are returned unchanged.
func BemCalc(point geometry2D.Point, curve *geometry2D.CircleCurve, bc BoundaryFunc) (val float64, err error) {
	var uVec, qVec utils.Vector
	if uVec, qVec, err = CalcConjugateValues(curve, bc); err != nil {
		return
	}
	val = representation(point, curve, uVec, qVec)
	return
}

// representation evaluates the boundary integral for u at an interior point.
// The double layer kernel is differentiated at the boundary node along the curve normal.
func representation(point geometry2D.Point, curve *geometry2D.CircleCurve, uVec, qVec utils.Vector) float64 {
	var (
		u, q = uVec.Data(), qVec.Data()
	)
	return CircIntegralTrapez(func(i int) float64 {
		y := curve.Points[i]
		return FundamentalSolution(point, y)*q[i] +
			NormalDerivativeAlong(y, point, curve.OutwardNormal(y))*u[i]
	}, curve)
}

// Solver holds the boundary solution for one curve and one set of Dirichlet data, so
// that any number of interior points can be evaluated without repeating the solve.
type Solver struct {
	Curve          *geometry2D.CircleCurve
	ParallelDegree int
	U, W           utils.Matrix
	UVec, QVec     utils.Vector
	logger         *zap.Logger
}

func NewSolver(curve *geometry2D.CircleCurve, bc BoundaryFunc, ParallelDegree int, logger *zap.Logger) (s *Solver, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ParallelDegree < 1 {
		ParallelDegree = 1
	}
	s = &Solver{
		Curve:          curve,
		ParallelDegree: ParallelDegree,
		logger:         logger,
	}
	s.U, s.W = AssembleInfluenceMatrices(curve, ParallelDegree)
	s.UVec = SampleBoundary(curve, bc)
	if s.QVec, err = utils.Gauss(s.U, s.W.MulVec(s.UVec)); err != nil {
		logger.Warn("boundary solve failed", zap.Int("elements", curve.DivNum), zap.Error(err))
		return nil, err
	}
	if ce := logger.Check(zap.DebugLevel, "boundary solve complete"); ce != nil {
		ce.Write(
			zap.Int("elements", curve.DivNum),
			zap.Float64("radius", curve.Radius),
			zap.Float64("conditionU", s.U.ConditionNumber()),
			zap.Float64("qMin", s.QVec.Min()),
			zap.Float64("qMax", s.QVec.Max()),
		)
	}
	return
}

// Evaluate computes the field at an interior point.
func (s *Solver) Evaluate(point geometry2D.Point) float64 {
	return representation(point, s.Curve, s.UVec, s.QVec)
}

// EvaluateAll computes the field at every point, in order, using ParallelDegree go routines.
func (s *Solver) EvaluateAll(ctx context.Context, points []geometry2D.Point) (results []Result, err error) {
	if len(points) == 0 {
		return
	}
	var (
		pm   = utils.NewPartitionMap(min(s.ParallelDegree, len(points)), len(points))
		g, c = errgroup.WithContext(ctx)
	)
	results = make([]Result, len(points))
	for np := 0; np < pm.ParallelDegree; np++ {
		kMin, kMax := pm.GetBucketRange(np)
		g.Go(func() error {
			for k := kMin; k < kMax; k++ {
				if err := c.Err(); err != nil {
					return err
				}
				results[k] = Result{Point: points[k], Value: s.Evaluate(points[k])}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		results = nil
	}
	return
}

// NeumannData is the exact normal derivative of hs on the curve.
func (hs HarmonicSolution) NeumannData(curve *geometry2D.CircleCurve) BoundaryFunc {
	return func(p geometry2D.Point) float64 {
		return hs.NormalDerivative(p, curve.OutwardNormal(p))
	}
}

// BoundaryMSE is the mean squared difference between qVec and the exact Neumann data.
func BoundaryMSE(curve *geometry2D.CircleCurve, qVec utils.Vector, exact BoundaryFunc) float64 {
	diff := make([]float64, curve.DivNum)
	for i, p := range curve.Points {
		diff[i] = qVec.AtVec(i) - exact(p)
	}
	return floats.Dot(diff, diff) / float64(len(diff))
}
