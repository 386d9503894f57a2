// Package main provides the CLI entry point for sapphireplot-go.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/engine"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/plot"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/plotprops"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/vfp"
)

var (
	format       string
	baseFileName string
	parameterLog string
	outputDir    string
	verbose      bool

	dimension int
	momentum  bool
	linearP   bool
	lMax      int

	direction string
	offset    []float64
	writeXLSX bool
	logY      bool

	fieldName string
	animate   bool
	showTime  bool

	pMin          float64
	spectralScale bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sapphireplot",
		Short: "Plot Sapphire++ simulation results",
		Long: `sapphireplot loads Sapphire++ simulation output (vtu, pvtu or csv
series plus the parameter log) and renders line charts, 2D field images
and animations.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				sapphireplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&format, "format", "vtu", "Solution file format: vtu, pvtu, csv")
	rootCmd.PersistentFlags().StringVar(&baseFileName, "base-name", "solution", "Base name of the solution files")
	rootCmd.PersistentFlags().StringVar(&parameterLog, "prm", "log.prm", "Name of the parameter log in the results folder")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: the results folder)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.PersistentFlags().IntVar(&dimension, "dimension", 1, "Phase-space dimensionality (1-3)")
	rootCmd.PersistentFlags().BoolVar(&momentum, "momentum", true, "Treat the last dimension as momentum")
	rootCmd.PersistentFlags().BoolVar(&linearP, "linear-p", false, "Momentum coordinate is p instead of ln p")
	rootCmd.PersistentFlags().IntVar(&lMax, "lmax", 0, "Maximum degree of the spherical-harmonic expansion")

	rootCmd.AddCommand(quickstartCmd(), lineoutCmd(), render2dCmd(), spectrumCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveSolution loads the results folder named by args, prompting when
// absent. SAPPHIREPP_RESULTS prefixes relative folders.
func resolveSolution(cmd *cobra.Command, args []string) (*sapphireplot.Solution, error) {
	folder, err := sapphireplot.ResolveResultsFolder("${SAPPHIREPP_RESULTS}",
		args, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	opts := sapphireplot.DefaultLoadOptions()
	opts.Format = sapphireplot.Format(format)
	opts.BaseFileName = baseFileName
	opts.ParameterFile = parameterLog

	sol, err := sapphireplot.LoadSolution(engine.NewLocal(), folder, opts)
	if err != nil {
		return nil, err
	}
	if outputDir == "" {
		outputDir = folder
	}
	return sol, nil
}

func vfpProps() (*plotprops.VFP, error) {
	return plotprops.NewVFP(plotprops.VFPOptions{
		Dimension:    dimension,
		Momentum:     momentum,
		LogarithmicP: !linearP,
		LMax:         lMax,
	})
}

func quickstartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quickstart [results-folder]",
		Short: "Line-out of f_000 plus its spectral index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sol, err := resolveSolution(cmd, args)
			if err != nil {
				return err
			}
			props, err := vfpProps()
			if err != nil {
				return err
			}
			session := engine.NewLocal()

			o := plot.ChartOptions{Title: "Distribution function", YLabel: "$f$"}
			series, err := vfp.PlotFLMSOverX(session, sol.Handle, props,
				plot.DirX, [3]float64{}, o, outputDir, "quickstart")
			if err != nil {
				return err
			}
			if !momentum {
				return nil
			}

			xMin, err := vfp.FitCutoff(2, !linearP)
			if err != nil {
				return err
			}
			slope, err := vfp.SpectralIndex(series, props.SeriesNames[0], xMin)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "spectral index: %.4f\n", slope)
			return nil
		},
	}
	return cmd
}

func lineoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lineout [results-folder]",
		Short: "Plot coefficients along a line through the domain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sol, err := resolveSolution(cmd, args)
			if err != nil {
				return err
			}
			props, err := vfpProps()
			if err != nil {
				return err
			}
			var off [3]float64
			copy(off[:], offset)

			o := plot.ChartOptions{YLabel: "$f$", LogY: logY, WriteXLSX: writeXLSX}
			_, err = vfp.PlotFLMSOverX(engine.NewLocal(), sol.Handle, props,
				plot.Direction(direction), off, o, outputDir, "lineout_"+direction)
			return err
		},
	}
	cmd.Flags().StringVarP(&direction, "direction", "d", "x", "Line direction: x, y, z or d (diagonal)")
	cmd.Flags().Float64SliceVar(&offset, "offset", nil, "Line offset as x,y,z")
	cmd.Flags().BoolVar(&logY, "log-y", false, "Logarithmic ordinate")
	cmd.Flags().BoolVar(&writeXLSX, "xlsx", false, "Also write the data as xlsx")
	return cmd
}

func render2dCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render2d [results-folder]",
		Short: "Render coefficients as 2D pseudocolor images",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sol, err := resolveSolution(cmd, args)
			if err != nil {
				return err
			}
			props, err := vfpProps()
			if err != nil {
				return err
			}
			if fieldName != "" {
				props.SeriesNames = []string{fieldName}
			}
			o := vfp.Field2DOptions{ShowTime: showTime, Animate: animate}
			return vfp.PlotFLMS2D(engine.NewLocal(), sol.Handle, props, o, outputDir, "field")
		},
	}
	cmd.Flags().StringVar(&fieldName, "field", "", "Render only this field")
	cmd.Flags().BoolVar(&animate, "animate", false, "Render every time step")
	cmd.Flags().BoolVar(&showTime, "show-time", false, "Annotate images with the simulation time")
	return cmd
}

func spectrumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spectrum [results-folder]",
		Short: "Momentum spectrum and spectral index of the coefficients",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sol, err := resolveSolution(cmd, args)
			if err != nil {
				return err
			}
			props, err := vfpProps()
			if err != nil {
				return err
			}
			session := engine.NewLocal()

			o := plot.ChartOptions{YLabel: "$f$", LogY: true}
			series, err := vfp.PlotFLMSOverP(session, sol.Handle, props,
				[3]float64{}, o, outputDir, "spectrum")
			if err != nil {
				return err
			}

			xMin, err := vfp.FitCutoff(pMin, !linearP)
			if err != nil {
				return err
			}
			slope, err := vfp.SpectralIndex(series, props.SeriesNames[0], xMin)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "spectral index: %.4f\n", slope)

			if !spectralScale {
				return nil
			}
			// Replot with f rescaled by p^-slope to flatten the power law.
			scaledHandle, scaledProps, err := vfp.ScaleDistributionFunction(sol.Handle, props, -slope)
			if err != nil {
				return err
			}
			o.YLabel = "$p^s f$"
			_, err = vfp.PlotFLMSOverP(session, scaledHandle, scaledProps,
				[3]float64{}, o, outputDir, "spectrum_scaled")
			return err
		},
	}
	cmd.Flags().Float64Var(&pMin, "pmin", 2, "Lower momentum bound of the spectral fit")
	cmd.Flags().BoolVar(&spectralScale, "rescale", false, "Also plot the spectrum rescaled by the fitted index")
	return cmd
}
