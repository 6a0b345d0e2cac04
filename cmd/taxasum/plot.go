// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/taxasum/internal/config"
	"github.com/katalvlaran/taxasum/internal/logger"
	"github.com/katalvlaran/taxasum/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPlotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Summarize the abundance table and write an SVG chart",
		Long: `Plot runs the same pipeline as summarize and draws the result: "trace"
draws one line per output column with an optional error band, "profile"
stacks the categories of every column.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.commandContext(cmd)
			res, err := summarize(ctx, a.cfg)
			if err != nil {
				return err
			}

			out := a.cfg.Plot.Output
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			draw := render.Trace
			if a.cfg.Plot.Kind == "profile" {
				draw = render.Profile
			}
			if err = draw(f, res, plotOptions(a.cfg.Plot)...); err != nil {
				f.Close()
				return err
			}
			if err = f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}

			logger.WithContext(ctx).Info("chart written",
				zap.String("kind", a.cfg.Plot.Kind),
				zap.String("output", out))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.String("kind", "trace", "Chart kind: trace or profile")
	fs.StringP("output", "o", "taxasum.svg", "SVG output file")
	fs.String("title", "", "Chart title")
	fs.String("palette", render.DefaultPalette, "Color palette")
	fs.Int("width", render.DefaultWidth, "Canvas width in pixels")
	fs.Int("height", render.DefaultHeight, "Canvas height in pixels")
	fs.Bool("show-error", true, "Draw the dispersion band when available")
	fs.String("y-range", "", "Fixed y axis as lo,hi")
	bind(a.v, fs, map[string]string{
		"kind":       "plot.kind",
		"output":     "plot.output",
		"title":      "plot.title",
		"palette":    "plot.palette",
		"width":      "plot.width",
		"height":     "plot.height",
		"show-error": "plot.showError",
		"y-range":    "plot.yRange",
	})

	return cmd
}

// plotOptions converts validated plot settings to render options.
func plotOptions(p config.PlotConfig) []render.Option {
	opts := []render.Option{
		render.WithPalette(p.Palette),
		render.WithSize(p.Width, p.Height),
	}
	if p.Title != "" {
		opts = append(opts, render.WithTitle(p.Title))
	}
	if len(p.YRange) == 2 {
		opts = append(opts, render.WithYRange(p.YRange[0], p.YRange[1]))
	}
	if !p.ShowError {
		opts = append(opts, render.WithoutError())
	}

	return opts
}
