/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
	"fmt"
	"os"

	"github.com/notargets/avs/chart2d"
	"github.com/spf13/cobra"

	"github.com/notargets/sphkern/kernels"
	"github.com/notargets/sphkern/utils"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot a kernel profile W(r) and its radial derivative",
	Long:  `Plot a kernel profile W(r) and its radial derivative`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			m   = &PlotModel{}
		)
		if m.Family, err = cmd.Flags().GetString("family"); err != nil {
			panic(err)
		}
		if m.Dim, err = cmd.Flags().GetInt("dim"); err != nil {
			panic(err)
		}
		if m.H, err = cmd.Flags().GetFloat64("h"); err != nil {
			panic(err)
		}
		RunPlot(m)
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().StringP("family", "f", "cubic-spline", "kernel family to plot")
	PlotCmd.Flags().IntP("dim", "d", 1, "kernel dimension")
	PlotCmd.Flags().Float64("h", 1.0, "smoothing length")
}

type PlotModel struct {
	Family string
	Dim    int
	H      float64
}

func RunPlot(m *PlotModel) {
	const Np = 401
	hd, err := kernels.Build(m.Family, m.Dim, m.H)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// extend a little past the support to show the cutoff
	rmax := 1.2 * hd.SupportRadius(m.H)
	var (
		r          = utils.LinSpace(0, rmax, Np)
		w          = make([]float64, Np)
		dw         = make([]float64, Np)
		yMin, yMax float64
	)
	for i, ri := range r {
		w[i] = hd.W(ri, m.H)
		dw[i] = hd.DWdr(ri, m.H)
		yMin = min(yMin, min(w[i], dw[i]))
		yMax = max(yMax, max(w[i], dw[i]))
	}
	chart := chart2d.NewChart2D(1024, 768, 0, float32(rmax), float32(yMin), float32(yMax))
	go chart.Plot()
	if err := chart.AddSeries("W", r, w,
		chart2d.NoGlyph, chart2d.Solid, utils.GetColor(utils.Blue)); err != nil {
		panic("unable to add graph series")
	}
	if err := chart.AddSeries("dWdr", r, dw,
		chart2d.NoGlyph, chart2d.Dashed, utils.GetColor(utils.Red)); err != nil {
		panic("unable to add graph series")
	}
	for {
		utils.SleepFor(1000)
	}
}
