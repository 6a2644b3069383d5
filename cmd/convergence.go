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
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gobem/BEM2D"
	"github.com/notargets/gobem/InputParameters"
	"github.com/notargets/gobem/geometry2D"
	"github.com/notargets/gobem/model_problems/Laplace2D"
)

// ConvergenceCmd represents the convergence command
var ConvergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Measure the error as the number of boundary elements grows",
	Long: `Solves the same problem once per element count and reports the boundary
normal derivative error, the error at a probe point and the observed order of accuracy.`,
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
		if fileName := viper.GetString("csv"); len(fileName) != 0 {
			return runConvergenceToFile(cmd.Context(), ip, viper.GetFloat64("probe"), fileName)
		}
		return runConvergence(cmd.Context(), ip, viper.GetFloat64("probe"), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(ConvergenceCmd)
	addProblemFlags(ConvergenceCmd.Flags())
	ConvergenceCmd.Flags().IntSlice("convergence-elements", nil, "element counts to solve with, like 16,32,64")
	ConvergenceCmd.Flags().Float64("probe", 0.5, "probe point as a fraction of the radius along +x from the center")
	ConvergenceCmd.Flags().String("csv", "", "write the table to this file instead of stdout")
}

func runConvergence(ctx context.Context, ip *InputParameters.InputParametersBEM, probeFraction float64, out io.Writer) (err error) {
	var (
		exact  BEM2D.HarmonicSolution
		cs     *Laplace2D.ConvergenceStudy
		center = geometry2D.NewPoint(ip.Center[0], ip.Center[1])
		probe  = center.Plus(geometry2D.NewPoint(probeFraction*ip.Radius, 0))
	)
	if exact, err = BEM2D.NewHarmonicSolution(ip.BoundaryCondition); err != nil {
		return
	}
	if cs, err = Laplace2D.RunConvergenceStudy(ctx, center, ip.Radius, exact, probe,
		ip.ConvergenceElements, ip.ParallelDegree, logger); err != nil {
		return fmt.Errorf("convergence study: %w", err)
	}
	return cs.WriteCSV(out)
}

func runConvergenceToFile(ctx context.Context, ip *InputParameters.InputParametersBEM, probeFraction float64, fileName string) (err error) {
	var file *os.File
	if file, err = os.Create(fileName); err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	err = runConvergence(ctx, ip, probeFraction, file)
	return
}
