package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/symo-dev/symo/internal/app"
	"github.com/symo-dev/symo/internal/canvas"
	"github.com/symo-dev/symo/internal/chart"
	"github.com/symo-dev/symo/internal/config"
	"github.com/symo-dev/symo/internal/i18n"
	"github.com/symo-dev/symo/internal/logger"
	"github.com/symo-dev/symo/internal/metrics"
	"github.com/symo-dev/symo/internal/sysmetrics"
)

type renderOptions struct {
	output   string
	samples  int
	width    int
	height   int
	interval time.Duration
	hoverX   float64
	hoverY   float64
	preview  bool
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Sample for a while and render the chart to a PNG",
		Long: `Collect samples at the sampling interval, then render the history chart
to a PNG file. A pointer position may be given to draw the hover marker and
readout as the window would.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer logger.Close()

			if !cmd.Flags().Changed("interval") {
				opts.interval = cfg.Sampling.Interval
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			reader := sysmetrics.NewReader(sysmetrics.WithDiskPath(cfg.Sampling.DiskPath))
			return renderChart(ctx, cfg, opts, reader, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "symo-chart.png", "PNG file to write")
	cmd.Flags().IntVar(&opts.samples, "samples", 30, "number of samples to collect")
	cmd.Flags().IntVar(&opts.width, "width", 800, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 400, "image height in pixels")
	cmd.Flags().DurationVar(&opts.interval, "interval", time.Second, "sampling interval (default from config)")
	cmd.Flags().Float64Var(&opts.hoverX, "hover-x", -1, "pointer x position for the hover marker")
	cmd.Flags().Float64Var(&opts.hoverY, "hover-y", -1, "pointer y position for the hover marker")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "also print a terminal preview of the image")
	return cmd
}

// renderChart collects opts.samples readings and writes the chart PNG.
func renderChart(ctx context.Context, cfg *config.Config, opts renderOptions, sampler app.Sampler, out io.Writer) error {
	if opts.samples < 1 {
		return fmt.Errorf("--samples must be at least 1, got %d", opts.samples)
	}
	if opts.width < 1 || opts.height < 1 {
		return fmt.Errorf("image size must be positive, got %dx%d", opts.width, opts.height)
	}

	colors, err := cfg.Chart.SeriesColors()
	if err != nil {
		return err
	}

	set := metrics.NewSeriesSet(cfg.Chart.Capacity)
	for i := 0; i < opts.samples; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(opts.interval):
			}
		}
		reading, err := sampler.Read(ctx)
		if err != nil {
			return fmt.Errorf("sample %d: %w", i+1, err)
		}
		set.Ingest(reading.Snapshot())
		fmt.Fprintf(out, "%s %d/%d\r", mutedFormat("sampling"), i+1, opts.samples)
	}
	fmt.Fprintln(out)

	renderer := chart.NewRenderer(chart.DefaultLayout(), cfg.Chart.Capacity)
	renderer.Colors = colors
	renderer.Names = func(m metrics.Metric) string { return i18n.Tr(m.NameKey()) }

	// The view is never shown, so no redraw timer is armed.
	view := chart.NewView(set,
		chart.WithRenderer(renderer),
		chart.WithHoverRadius(cfg.Chart.HoverRadius),
	)
	defer view.Destroy()

	raster := canvas.NewRaster(opts.width, opts.height)
	view.Resize(raster.Size())
	if opts.hoverX >= 0 && opts.hoverY >= 0 {
		view.OnPointerMove(opts.hoverX, opts.hoverY)
	}
	if !view.Render(raster) {
		return fmt.Errorf("chart could not be rendered")
	}

	if err := raster.SavePNG(opts.output); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}

	fmt.Fprintf(out, "%s %s (%dx%d, %d samples)\n", successFormat("✓ wrote"), opts.output,
		opts.width, opts.height, set.Ticks())
	if text := view.HoverText(); text != "" {
		fmt.Fprintf(out, "  %s\n", text)
	}
	if opts.preview {
		fmt.Fprintln(out, raster.Preview(80, 20))
	}
	return nil
}
