package Laplace2D

import "runtime"

// DefaultParallelDegree is one go routine per CPU.
func DefaultParallelDegree() int {
	return runtime.NumCPU()
}

// SetParallelDegree picks the number of go routines used to evaluate Kmax points. A ProcLimit of
// zero means DefaultParallelDegree.
func (c *Laplace) SetParallelDegree(ProcLimit, Kmax int) {
	if ProcLimit != 0 {
		c.ParallelDegree = ProcLimit
	} else {
		c.ParallelDegree = DefaultParallelDegree()
	}
	if c.ParallelDegree > Kmax {
		c.ParallelDegree = max(Kmax, 1)
	}
}
