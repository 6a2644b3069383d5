package Laplace2D

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/notargets/gobem/BEM2D"
	"github.com/notargets/gobem/geometry2D"
)

type ConvergenceRecord struct {
	Elements    int
	BoundaryMSE float64 // Mean squared error of the boundary normal derivative
	PointError  float64 // Abs error of the field at the probe point
}

// ConvergenceStudy records the discretization error of one problem over a sequence of
// element counts.
type ConvergenceStudy struct {
	Center, Probe geometry2D.Point
	Radius        float64
	Exact         BEM2D.HarmonicSolution
	Records       []ConvergenceRecord
}

// RunConvergenceStudy solves the problem once per element count, at most ParallelDegree solves
// at a time. Records are in the order of elements.
func RunConvergenceStudy(ctx context.Context, center geometry2D.Point, radius float64,
	exact BEM2D.HarmonicSolution, probe geometry2D.Point, elements []int,
	ParallelDegree int, logger *zap.Logger) (cs *ConvergenceStudy, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cs = &ConvergenceStudy{
		Center:  center,
		Probe:   probe,
		Radius:  radius,
		Exact:   exact,
		Records: make([]ConvergenceRecord, len(elements)),
	}
	g, c := errgroup.WithContext(ctx)
	g.SetLimit(max(ParallelDegree, 1))
	for i, N := range elements {
		g.Go(func() (err error) {
			if err = c.Err(); err != nil {
				return
			}
			var (
				curve  *geometry2D.CircleCurve
				solver *BEM2D.Solver
			)
			if curve, err = geometry2D.NewCircleCurve(center, radius, N); err != nil {
				return
			}
			if !curve.Contains(probe) {
				return fmt.Errorf("probe point %v is not inside the curve", probe)
			}
			if solver, err = BEM2D.NewSolver(curve, exact.U, 1, logger); err != nil {
				return fmt.Errorf("%d elements: %w", N, err)
			}
			cs.Records[i] = ConvergenceRecord{
				Elements:    N,
				BoundaryMSE: BEM2D.BoundaryMSE(curve, solver.QVec, exact.NeumannData(curve)),
				PointError:  math.Abs(solver.Evaluate(probe) - exact.U(probe)),
			}
			logger.Debug("convergence step",
				zap.Int("elements", N),
				zap.Float64("boundaryMSE", cs.Records[i].BoundaryMSE),
				zap.Float64("pointError", cs.Records[i].PointError))
			return
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return
}

// ObservedOrder returns the order of accuracy between consecutive records, for the probe point
// error and for the RMS boundary error.
func (cs *ConvergenceStudy) ObservedOrder() (pointOrder, boundaryOrder []float64) {
	for i := 1; i < len(cs.Records); i++ {
		var (
			r0, r1 = cs.Records[i-1], cs.Records[i]
			lr     = math.Log(float64(r1.Elements) / float64(r0.Elements))
		)
		pointOrder = append(pointOrder, math.Log(r0.PointError/r1.PointError)/lr)
		boundaryOrder = append(boundaryOrder, 0.5*math.Log(r0.BoundaryMSE/r1.BoundaryMSE)/lr)
	}
	return
}

func (cs *ConvergenceStudy) WriteCSV(w io.Writer) (err error) {
	var (
		cw                        = csv.NewWriter(w)
		pointOrder, boundaryOrder = cs.ObservedOrder()
		ff                        = func(f float64) string { return strconv.FormatFloat(f, 'e', 6, 64) }
	)
	if err = cw.Write([]string{"elements", "boundary_mse", "point_error", "point_order", "boundary_order"}); err != nil {
		return
	}
	for i, r := range cs.Records {
		row := []string{strconv.Itoa(r.Elements), ff(r.BoundaryMSE), ff(r.PointError), "", ""}
		if i > 0 {
			row[3], row[4] = ff(pointOrder[i-1]), ff(boundaryOrder[i-1])
		}
		if err = cw.Write(row); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadConvergenceCSV reads a table written by WriteCSV. Order columns are recomputed, not read.
func ReadConvergenceCSV(r io.Reader) (cs *ConvergenceStudy, err error) {
	var (
		records [][]string
	)
	reader := csv.NewReader(bufio.NewReader(r))
	if records, err = reader.ReadAll(); err != nil {
		return
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty convergence table")
	}
	cs = &ConvergenceStudy{}
	for i, rec := range records[1:] {
		var cr ConvergenceRecord
		if len(rec) < 3 {
			return nil, fmt.Errorf("line %d: have %d fields, need at least 3", i+2, len(rec))
		}
		if cr.Elements, err = strconv.Atoi(rec[0]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		if cr.BoundaryMSE, err = strconv.ParseFloat(rec[1], 64); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		if cr.PointError, err = strconv.ParseFloat(rec[2], 64); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		cs.Records = append(cs.Records, cr)
	}
	return
}
