package InputParameters

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"
)

var ErrInvalidParameters = errors.New("InputParameters: invalid parameters")

// Parameters obtained from the YAML input file
type InputParametersBEM struct {
	Title               string     `json:"Title"`
	Elements            int        `json:"Elements"`          // Number of boundary elements
	Radius              float64    `json:"Radius"`            // Circle radius
	Center              [2]float64 `json:"Center"`            // Circle center
	GridDivisions       int        `json:"GridDivisions"`     // Interior grid has 2*GridDivisions+1 points per side
	BoundaryCondition   string     `json:"BoundaryCondition"` // Harmonic solution used as Dirichlet data
	OutputFile          string     `json:"OutputFile"`
	ParallelDegree      int        `json:"ParallelDegree"`
	ConvergenceElements []int      `json:"ConvergenceElements"` // Element counts swept by the convergence study
}

func NewInputParametersBEM() (ip *InputParametersBEM) {
	ip = &InputParametersBEM{
		Title:               "Laplace Dirichlet problem on a circle",
		Elements:            32,
		Radius:              1,
		GridDivisions:       8,
		BoundaryCondition:   "cubic",
		OutputFile:          "bem.dat",
		ParallelDegree:      1,
		ConvergenceElements: []int{16, 32, 64, 128},
	}
	return
}

// Parse overlays the YAML document onto ip, keys missing from data keep their current values.
func (ip *InputParametersBEM) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersBEM) ReadFile(fileName string) (err error) {
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", fileName, err)
	}
	return
}

func (ip *InputParametersBEM) Validate() (err error) {
	switch {
	case ip.Elements < 3:
		err = fmt.Errorf("%w: Elements must be at least 3, have %d", ErrInvalidParameters, ip.Elements)
	case !(ip.Radius > 0):
		err = fmt.Errorf("%w: Radius must be positive, have %g", ErrInvalidParameters, ip.Radius)
	case ip.GridDivisions < 1:
		err = fmt.Errorf("%w: GridDivisions must be positive, have %d", ErrInvalidParameters, ip.GridDivisions)
	case ip.ParallelDegree < 1:
		err = fmt.Errorf("%w: ParallelDegree must be positive, have %d", ErrInvalidParameters, ip.ParallelDegree)
	case len(ip.OutputFile) == 0:
		err = fmt.Errorf("%w: OutputFile is empty", ErrInvalidParameters)
	}
	if err != nil {
		return
	}
	for _, n := range ip.ConvergenceElements {
		if n < 3 {
			return fmt.Errorf("%w: ConvergenceElements entries must be at least 3, have %d", ErrInvalidParameters, n)
		}
	}
	return
}

func (ip *InputParametersBEM) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Elements\n", ip.Elements)
	fmt.Fprintf(w, "%8.5f\t\t= Radius\n", ip.Radius)
	fmt.Fprintf(w, "(%g, %g)\t\t\t= Center\n", ip.Center[0], ip.Center[1])
	fmt.Fprintf(w, "[%d]\t\t\t\t= Grid Divisions\n", ip.GridDivisions)
	fmt.Fprintf(w, "[%s]\t\t\t= Boundary Condition\n", ip.BoundaryCondition)
	fmt.Fprintf(w, "[%s]\t\t\t= Output File\n", ip.OutputFile)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Parallel Degree\n", ip.ParallelDegree)
	fmt.Fprintf(w, "%v\t= Convergence Elements\n", ip.ConvergenceElements)
}
