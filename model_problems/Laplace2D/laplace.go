package Laplace2D

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/notargets/gobem/BEM2D"
	"github.com/notargets/gobem/InputParameters"
	"github.com/notargets/gobem/geometry2D"
	"github.com/notargets/gobem/utils"
)

// Laplace solves the interior Dirichlet problem on a circle using a closed form harmonic
// solution as boundary data, evaluates the field on an interior grid and writes the results.
type Laplace struct {
	Title          string
	Curve          *geometry2D.CircleCurve
	Exact          BEM2D.HarmonicSolution
	GridDivisions  int
	OutputFile     string
	ParallelDegree int
	logger         *zap.Logger
}

type RunSummary struct {
	Points    int // Number of interior points produced
	Evaluated int // Number of points written
	Failed    int
	MaxError  float64 // Max abs difference from the exact solution over the evaluated points
	Results   []BEM2D.Result
}

func NewLaplace(ip *InputParameters.InputParametersBEM, logger *zap.Logger) (c *Laplace, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err = ip.Validate(); err != nil {
		return
	}
	c = &Laplace{
		Title:         ip.Title,
		GridDivisions: ip.GridDivisions,
		OutputFile:    ip.OutputFile,
		logger:        logger,
	}
	if c.Exact, err = BEM2D.NewHarmonicSolution(ip.BoundaryCondition); err != nil {
		return nil, err
	}
	center := geometry2D.NewPoint(ip.Center[0], ip.Center[1])
	if c.Curve, err = geometry2D.NewCircleCurve(center, ip.Radius, ip.Elements); err != nil {
		return nil, err
	}
	c.SetParallelDegree(ip.ParallelDegree, c.Curve.DivNum)
	logger.Info("Laplace equation in 2 dimensions",
		zap.String("title", c.Title),
		zap.String("boundaryCondition", c.Exact.Name),
		zap.Int("elements", c.Curve.DivNum),
		zap.Float64("radius", c.Curve.Radius),
		zap.Stringer("center", c.Curve.Center),
		zap.Int("parallelDegree", c.ParallelDegree),
	)
	return
}

// Solve evaluates the field on the interior grid. A failed boundary solve fails every point,
// the failure is logged and the summary reports all points as failed.
func (c *Laplace) Solve(ctx context.Context) (summary RunSummary, err error) {
	var (
		points = InteriorGrid(c.Curve, c.GridDivisions)
		solver *BEM2D.Solver
		all    []BEM2D.Result
	)
	summary.Points = len(points)
	if solver, err = BEM2D.NewSolver(c.Curve, c.Exact.U, c.ParallelDegree, c.logger); err != nil {
		c.logger.Error("skipping all interior points",
			zap.Int("points", len(points)), zap.Error(err))
		summary.Failed = len(points)
		return summary, nil
	}
	if all, err = solver.EvaluateAll(ctx, points); err != nil {
		return
	}
	summary.Results = make([]BEM2D.Result, 0, len(all))
	for _, r := range all {
		if utils.IsNan(r.Value) {
			c.logger.Warn("skipping point with non finite value",
				zap.Stringer("point", r.Point), zap.Float64("value", r.Value))
			summary.Failed++
			continue
		}
		summary.MaxError = math.Max(summary.MaxError, math.Abs(r.Value-c.Exact.U(r.Point)))
		summary.Results = append(summary.Results, r)
	}
	summary.Evaluated = len(summary.Results)
	return
}

// Run solves and writes the results to OutputFile.
func (c *Laplace) Run(ctx context.Context) (summary RunSummary, err error) {
	if summary, err = c.Solve(ctx); err != nil {
		return
	}
	if err = OutputData(c.OutputFile, summary.Results); err != nil {
		err = fmt.Errorf("writing %s: %w", c.OutputFile, err)
		return
	}
	c.logger.Info("run complete",
		zap.Int("points", summary.Points),
		zap.Int("evaluated", summary.Evaluated),
		zap.Int("failed", summary.Failed),
		zap.Float64("maxError", summary.MaxError),
		zap.String("output", c.OutputFile),
	)
	c.logger.Debug("memory", zap.String("usage", utils.GetMemUsage()))
	return
}
