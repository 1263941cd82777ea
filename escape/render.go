package escape

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/internal/parallel"
	"github.com/gogpu/fractal/view"
)

// ErrNoIterations is returned when the iteration limit is not positive.
var ErrNoIterations = errors.New("escape: iteration limit must be positive")

// Render evaluates k for every pixel of dst and writes the colored result.
// Pixels are mapped through m using the dst size. Rows are computed in
// parallel; cancelling ctx abandons the remaining rows and returns ctx.Err().
func Render(ctx context.Context, dst *image.RGBA, m view.Mapper, k Kernel, max int, color ColorFunc, opts ...fractal.RenderOption) error {
	if max <= 0 {
		return ErrNoIterations
	}
	cfg := fractal.NewRenderConfig(opts...)
	pool, release := parallel.Acquire(cfg.Workers)
	defer release()

	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	start := time.Now()

	err := pool.Rows(ctx, h, func(y int) {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := range w {
			c := color(k.Iterate(m.At(float64(x), float64(y), w, h), max), max)
			i := x * 4
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		}
	})

	fractal.Logger().Debug("escape: rendered",
		"kernel", kernelName(k), "size", b.Size(), "iterations", max,
		"elapsed", time.Since(start))
	return err
}

// Sample iterates a single pixel, mostly for HUD readouts and tests.
func Sample(m view.Mapper, k Kernel, max, px, py, w, h int) Result {
	return k.Iterate(m.At(float64(px), float64(py), w, h), max)
}

func kernelName(k Kernel) string {
	switch k.(type) {
	case Mandelbrot:
		return "mandelbrot"
	case Julia:
		return "julia"
	case BurningShip:
		return "burning-ship"
	case Tricorn:
		return "tricorn"
	case Phoenix:
		return "phoenix"
	case Biomorph:
		return "biomorph"
	case Newton:
		return "newton"
	}
	return "custom"
}
