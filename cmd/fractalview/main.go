// Command fractalview explores the demos in a desktop window.
//
// Mouse and keyboard controls are listed at the bottom of the window. S or
// the Save button writes a screenshot, Tab and PageUp/PageDown switch
// demos, Escape quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/demo"
	"github.com/gogpu/fractal/hud"
	"github.com/gogpu/fractal/viewer"
	"github.com/gogpu/fractal/viewer/ebitenview"
)

func main() {
	var (
		name    = flag.String("demo", "mandelbrot", "demo to show")
		width   = flag.Int("width", 0, "window width (default: the demo's size)")
		height  = flag.Int("height", 0, "window height (default: the demo's size)")
		dir     = flag.String("dir", ".", "screenshot directory")
		cache   = flag.Int("cache", viewer.DefaultCacheSize, "rendered frames to keep")
		font    = flag.String("font", "", "TrueType font for the HUD")
		stats   = flag.Bool("stats", false, "show render times")
		workers = flag.Int("workers", 0, "render workers (default: GOMAXPROCS)")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	d, err := demo.New(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fractalview:", err)
		os.Exit(1)
	}
	var overlayOpts []hud.Option
	if *font != "" {
		face, err := hud.LoadFace(*font, 14)
		if err != nil {
			fmt.Fprintln(os.Stderr, "fractalview:", err)
			os.Exit(1)
		}
		overlayOpts = append(overlayOpts, hud.WithFace(face))
	}
	opts := []viewer.Option{
		viewer.WithCacheSize(*cache),
		viewer.WithScreenshotDir(*dir),
		viewer.WithStats(*stats),
		viewer.WithOverlay(hud.New(overlayOpts...)),
	}
	if *workers > 0 {
		opts = append(opts, viewer.WithRenderOptions(fractal.WithWorkers(*workers)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := viewer.New(d, image.Pt(*width, *height), opts...)
	if err := ebitenview.Run(ctx, s); err != nil {
		fmt.Fprintln(os.Stderr, "fractalview:", err)
		os.Exit(1)
	}
}
