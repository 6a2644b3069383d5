/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/notargets/gobem/BEM2D"
	"github.com/notargets/gobem/InputParameters"
	"github.com/notargets/gobem/model_problems/Laplace2D"
)

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve on a circle and write the field on an interior grid",
	Long: `Solves for the boundary normal derivative, then evaluates the field on a
grid of interior points and writes one "x	y	value" line per point.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var ip *InputParameters.InputParametersBEM
		if ip, err = processInput(viper.GetViper()); err != nil {
			return
		}
		if viper.GetBool("profile") {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		}
		return runSolve(cmd.Context(), ip, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	addProblemFlags(SolveCmd.Flags())
	SolveCmd.Flags().IntP("grid", "g", 0, "interior grid divisions, the grid has 2*grid+1 points per side")
	SolveCmd.Flags().StringP("output", "o", "", "output file")
}

// addProblemFlags adds the flags shared by all commands, each overrides the matching key of the input file
func addProblemFlags(fs *pflag.FlagSet) {
	fs.StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Elements\n\t- Radius\n\t- BoundaryCondition")
	fs.IntP("elements", "n", 0, "number of boundary elements")
	fs.Float64P("radius", "r", 0, "circle radius")
	fs.Float64("center-x", 0, "circle center x coordinate")
	fs.Float64("center-y", 0, "circle center y coordinate")
	fs.String("bc", "", fmt.Sprintf("boundary condition, one of %v", BEM2D.HarmonicSolutionNames()))
	fs.IntP("parallel", "p", 0, "number of go routines, 0 means one per CPU")
	fs.Bool("profile", false, "write a CPU profile to the current directory")
}

// processInput starts from the defaults, overlays the input file, then any key set by flag,
// environment or config file.
func processInput(v *viper.Viper) (ip *InputParameters.InputParametersBEM, err error) {
	ip = InputParameters.NewInputParametersBEM()
	if fileName := v.GetString("inputConditionsFile"); len(fileName) != 0 {
		if err = ip.ReadFile(fileName); err != nil {
			return nil, err
		}
	}
	if v.IsSet("elements") {
		ip.Elements = v.GetInt("elements")
	}
	if v.IsSet("radius") {
		ip.Radius = v.GetFloat64("radius")
	}
	if v.IsSet("center-x") {
		ip.Center[0] = v.GetFloat64("center-x")
	}
	if v.IsSet("center-y") {
		ip.Center[1] = v.GetFloat64("center-y")
	}
	if v.IsSet("bc") {
		ip.BoundaryCondition = v.GetString("bc")
	}
	if v.IsSet("parallel") {
		ip.ParallelDegree = v.GetInt("parallel")
		if ip.ParallelDegree == 0 {
			ip.ParallelDegree = Laplace2D.DefaultParallelDegree()
		}
	}
	if v.IsSet("grid") {
		ip.GridDivisions = v.GetInt("grid")
	}
	if v.IsSet("output") {
		ip.OutputFile = v.GetString("output")
	}
	if v.IsSet("convergence-elements") {
		ip.ConvergenceElements = v.GetIntSlice("convergence-elements")
	}
	if err = ip.Validate(); err != nil {
		return nil, err
	}
	return
}

func runSolve(ctx context.Context, ip *InputParameters.InputParametersBEM, out io.Writer) (err error) {
	var (
		c       *Laplace2D.Laplace
		summary Laplace2D.RunSummary
	)
	ip.Print(out)
	if c, err = Laplace2D.NewLaplace(ip, logger); err != nil {
		return
	}
	if summary, err = c.Run(ctx); err != nil {
		return
	}
	fmt.Fprintf(out, "%d of %d points written to %s, max error = %8.5g\n",
		summary.Evaluated, summary.Points, ip.OutputFile, summary.MaxError)
	if summary.Failed != 0 {
		fmt.Fprintf(out, "%d points failed, see the log\n", summary.Failed)
	}
	return
}
