package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/notargets/gobem/model_problems/Laplace2D"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	cs, err := Laplace2D.ReadConvergenceCSV(f)
	if err != nil {
		panic(err)
	}
	pointOrder, boundaryOrder := cs.ObservedOrder()
	fmt.Printf("%8s %12s %12s %8s %8s\n", "Elements", "BoundaryMSE", "PointError", "Order", "BOrder")
	for i, r := range cs.Records {
		if i == 0 {
			fmt.Printf("%8d %12.4e %12.4e\n", r.Elements, r.BoundaryMSE, r.PointError)
			continue
		}
		fmt.Printf("%8d %12.4e %12.4e %8.3f %8.3f\n", r.Elements, r.BoundaryMSE, r.PointError,
			pointOrder[i-1], boundaryOrder[i-1])
	}
}
