package demo

import (
	"context"
	"fmt"
	"image"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/control"
	"github.com/gogpu/fractal/lyapunov"
	"github.com/gogpu/fractal/param"
	"github.com/gogpu/fractal/view"
)

// Patterns cycled by the P key.
var Patterns = []string{"AB", "AABAB", "BBBBBBAAAAAA", "ABBAB"}

var lyapunovHome = view.Range{Min: 3.81, Max: 3.87}

// Lyapunov plots the logistic-map exponent over a square of (ra, rb)
// parameter space. Clicks zoom ×2 along r about the clicked column.
type Lyapunov struct {
	info
	Range   view.Range
	Pattern string
	N       int
	pattern int
}

// NewLyapunov returns the "swallow" region [3.81, 3.87]² for pattern AB.
func NewLyapunov() *Lyapunov {
	return &Lyapunov{
		info: info{
			name: "lyapunov", title: "Lyapunov Fractal (Swallow)",
			shot: "lyapunov_swallow.bmp",
			help: []string{"Left Click: Zoom In, Right Click: Zoom Out", "P: Pattern, R: Reset"},
		},
		Range:   lyapunovHome,
		Pattern: Patterns[0],
		N:       1000,
	}
}

// Render implements Demo.
func (d *Lyapunov) Render(ctx context.Context, dst *image.RGBA, opts ...fractal.RenderOption) error {
	if d.Range.Span() <= 0 {
		return view.ErrDegenerate
	}
	return lyapunov.Render(ctx, dst, lyapunov.Square(d.Range), d.Pattern, d.N, opts...)
}

// Handle implements Demo.
func (d *Lyapunov) Handle(e control.Event, size image.Point) bool {
	switch e.Kind {
	case control.KeyPress:
		switch e.Key {
		case 'r':
			d.Reset()
			return true
		case 'p':
			d.pattern = (d.pattern + 1) % len(Patterns)
			d.Pattern = Patterns[d.pattern]
			return true
		}
	case control.ButtonDown:
		r := d.Range.At(e.X, size.X)
		switch e.Button {
		case control.Left:
			d.Range = d.Range.ZoomAt(r, 2)
		case control.Right:
			d.Range = d.Range.ZoomAt(r, 0.5)
		default:
			return false
		}
		return true
	}
	return false
}

// Reset restores the swallow region, pattern AB and 1000 iterations.
func (d *Lyapunov) Reset() {
	d.Range, d.N = lyapunovHome, 1000
	d.Pattern, d.pattern = Patterns[0], 0
}

// HUD implements Demo.
func (d *Lyapunov) HUD() []string {
	return []string{
		fmt.Sprintf("Range: [%.5f, %.5f]", d.Range.Min, d.Range.Max),
		fmt.Sprintf("Pattern: %s", d.Pattern),
	}
}

// Params implements Demo.
func (d *Lyapunov) Params() param.Set {
	return param.Set{
		param.Int("iterations", &d.N, 1, 1000000),
		param.Float("r_min", &d.Range.Min, 0, 4),
		param.Float("r_max", &d.Range.Max, 0, 4),
	}
}

// State implements Demo.
func (d *Lyapunov) State() string {
	return fmt.Sprintf("%s|%v|%s|%d", d.name, d.Range, d.Pattern, d.N)
}
