package Laplace2D

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/notargets/gobem/BEM2D"
)

// WriteResults writes one "x\ty\tvalue" line per result.
func WriteResults(w io.Writer, results []BEM2D.Result) (err error) {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if _, err = fmt.Fprintf(bw, "%.4f\t%.4f\t%.4f\n", r.Point.X[0], r.Point.X[1], r.Value); err != nil {
			return
		}
	}
	return bw.Flush()
}

// OutputData replaces the file at path with the results.
func OutputData(path string, results []BEM2D.Result) (err error) {
	var file *os.File
	if file, err = os.Create(path); err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	err = WriteResults(file, results)
	return
}
