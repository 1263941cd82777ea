package demo

import (
	"context"
	"fmt"
	"image"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/control"
	"github.com/gogpu/fractal/ifs"
	"github.com/gogpu/fractal/param"
	"github.com/gogpu/fractal/view"
)

// Fern is the Barnsley fern plotted by the chaos game.
type Fern struct {
	info
	panZoom
	Points int
}

// NewFern returns the fern fitted to the image with eight million points.
func NewFern() *Fern {
	return &Fern{
		info: info{
			name: "fern", title: "Barnsley Fern",
			shot: "barnsley_fern_screenshot.bmp", help: dragHelp,
		},
		panZoom: newFitted(func(s image.Point) view.Window { return ifs.FernView(s.X, s.Y) }, 1.1),
		Points:  ifs.DefaultPoints,
	}
}

// Render implements Demo.
func (d *Fern) Render(ctx context.Context, dst *image.RGBA, opts ...fractal.RenderOption) error {
	d.ensure(dst.Bounds().Size())
	if err := d.view.Validate(); err != nil {
		return err
	}
	fill(dst, black)
	return ifs.Fern(ctx, dst, d.view, d.Points, opts...)
}

// Handle implements Demo.
func (d *Fern) Handle(e control.Event, size image.Point) bool {
	if e.Kind == control.KeyPress {
		if e.Key == 'r' {
			d.Reset()
			return true
		}
		return false
	}
	return d.handle(e, size)
}

// Reset implements Demo.
func (d *Fern) Reset() { d.reset() }

// HUD implements Demo.
func (d *Fern) HUD() []string {
	return []string{
		fmt.Sprintf("Points: %dM", d.Points/1_000_000),
		fmt.Sprintf("View Scale: %.2f (px/unit)", d.view.Scale),
		fmt.Sprintf("View Center: (%.2f, %.2f)", d.view.CenterX, d.view.CenterY),
	}
}

// Params implements Demo.
func (d *Fern) Params() param.Set {
	return param.Set{param.Int("points", &d.Points, ifs.SkipPoints+1, 100_000_000)}
}

// State implements Demo.
func (d *Fern) State() string {
	return fmt.Sprintf("%s|%d|%t|%v", d.name, d.Points, d.fitted, d.view)
}
