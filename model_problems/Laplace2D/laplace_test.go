package Laplace2D

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/notargets/gobem/BEM2D"
	"github.com/notargets/gobem/InputParameters"
	"github.com/notargets/gobem/utils"
)

func newTestInput(t *testing.T) *InputParameters.InputParametersBEM {
	ip := InputParameters.NewInputParametersBEM()
	ip.Elements = 64
	ip.ParallelDegree = 4
	ip.OutputFile = filepath.Join(t.TempDir(), "bem.dat")
	return ip
}

func TestLaplaceRun(t *testing.T) {
	ip := newTestInput(t)
	core, logs := observer.New(zapcore.InfoLevel)
	c, err := NewLaplace(ip, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 4, c.ParallelDegree)
	assert.Equal(t, 1, logs.FilterMessage("Laplace equation in 2 dimensions").Len())

	summary, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 193, summary.Points)
	assert.Equal(t, 193, summary.Evaluated)
	assert.Equal(t, 0, summary.Failed)
	// Points within an element length of the boundary carry most of the error
	assert.Less(t, summary.MaxError, 0.5)
	for _, r := range summary.Results {
		if r.Point.Minus(c.Curve.Center).Norm() <= 0.8*c.Curve.Radius {
			assert.InDeltaf(t, BEM2D.ExactU(r.Point), r.Value, 5.e-3, "at %v", r.Point)
		}
	}
	assert.Equal(t, 1, logs.FilterMessage("run complete").Len())

	data, err := os.ReadFile(ip.OutputFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Equal(t, 193, len(lines))
	assert.Equal(t, 3, len(strings.Split(lines[0], "\t")))

	// Same results regardless of the number of go routines
	ip.ParallelDegree = 1
	serial, err := NewLaplace(ip, nil)
	require.NoError(t, err)
	again, err := serial.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, summary.Results, again.Results)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Solve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLaplaceInputErrors(t *testing.T) {
	ip := newTestInput(t)
	ip.BoundaryCondition = "quartic"
	_, err := NewLaplace(ip, nil)
	assert.ErrorIs(t, err, BEM2D.ErrUnknownBoundaryCondition)

	ip = newTestInput(t)
	ip.Elements = 2
	_, err = NewLaplace(ip, nil)
	assert.ErrorIs(t, err, InputParameters.ErrInvalidParameters)
}

func TestLaplaceSingularSolve(t *testing.T) {
	ip := newTestInput(t)
	ip.Elements = 16
	ip.Radius = 1.e-12
	core, logs := observer.New(zapcore.WarnLevel)
	c, err := NewLaplace(ip, zap.New(core))
	require.NoError(t, err)

	summary, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 193, summary.Points, 4)
	assert.Equal(t, summary.Points, summary.Failed)
	assert.Equal(t, 0, summary.Evaluated)

	entries := logs.FilterMessage("skipping all interior points").All()
	require.Equal(t, 1, len(entries))
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	for _, f := range entries[0].Context {
		if f.Key == "error" {
			assert.ErrorIs(t, f.Interface.(error), utils.ErrSingularMatrix)
		}
	}

	data, err := os.ReadFile(ip.OutputFile)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSetParallelDegree(t *testing.T) {
	c := &Laplace{}
	c.SetParallelDegree(0, 1<<20)
	assert.Equal(t, runtime.NumCPU(), c.ParallelDegree)
	c.SetParallelDegree(100, 8)
	assert.Equal(t, 8, c.ParallelDegree)
	c.SetParallelDegree(3, 8)
	assert.Equal(t, 3, c.ParallelDegree)
}
