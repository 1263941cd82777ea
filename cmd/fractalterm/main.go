// Command fractalterm explores the demos in a 24-bit color terminal.
//
// The controls match fractalview; there is no Save button, so use S.
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
	"github.com/gogpu/fractal/viewer"
	"github.com/gogpu/fractal/viewer/termview"
)

func main() {
	var (
		name    = flag.String("demo", "mandelbrot", "demo to show")
		scale   = flag.Int("scale", termview.DefaultScale, "rendered pixels per terminal pixel")
		dir     = flag.String("dir", ".", "screenshot directory")
		cache   = flag.Int("cache", viewer.DefaultCacheSize, "rendered frames to keep")
		logFile = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "fractalterm:", err)
			os.Exit(1)
		}
		defer f.Close()
		fractal.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	d, err := demo.New(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fractalterm:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := viewer.New(d, image.Point{},
		viewer.WithHUD(false),
		viewer.WithCacheSize(*cache),
		viewer.WithScreenshotDir(*dir))
	if err := termview.Run(ctx, s, termview.WithScale(*scale)); err != nil {
		fmt.Fprintln(os.Stderr, "fractalterm:", err)
		os.Exit(1)
	}
	if p := s.LastScreenshot(); p != "" {
		fmt.Println("Last screenshot:", p)
	}
}
