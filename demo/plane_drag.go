package demo

import (
	"context"
	"fmt"
	"image"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/control"
	"github.com/gogpu/fractal/escape"
	"github.com/gogpu/fractal/palette"
	"github.com/gogpu/fractal/param"
	"github.com/gogpu/fractal/view"
)

var dragHelp = []string{"Left Drag: Pan, Wheel: Zoom, R: Reset"}

// Phoenix is z ← z² + C + P·z₋₁ with drag panning and ×2 wheel zoom.
type Phoenix struct {
	region
	C, P complex128
}

// Default Phoenix constants.
const (
	DefaultPhoenixC = complex(0.5667, 0)
	DefaultPhoenixP = complex(-0.5, 0)
)

// NewPhoenix returns the Phoenix fractal over [-2,2]².
func NewPhoenix() *Phoenix {
	return &Phoenix{
		region: newRegion(info{
			name: "phoenix", title: "Phoenix Fractal",
			shot: "phoenix_fractal_screenshot.bmp", help: dragHelp,
		}, view.NewRect(-2, 2, -2, 2), 100, 100, 5000,
			palette.Smooth(2, 2, [3]float64{0, 0.66, 1.33})),
		C: DefaultPhoenixC,
		P: DefaultPhoenixP,
	}
}

// Render implements Demo.
func (d *Phoenix) Render(ctx context.Context, dst *image.RGBA, opts ...fractal.RenderOption) error {
	return d.render(ctx, dst, escape.Phoenix{C: d.C, P: d.P}, opts)
}

// Handle implements Demo.
func (d *Phoenix) Handle(e control.Event, size image.Point) bool {
	if e.Kind == control.KeyPress && e.Key == 'r' {
		d.Reset()
		return true
	}
	return d.dragPan(e, size) || d.wheelZoom(e, 2)
}

// Reset implements Demo.
func (d *Phoenix) Reset() {
	d.reset()
	d.C, d.P = DefaultPhoenixC, DefaultPhoenixP
}

// HUD implements Demo.
func (d *Phoenix) HUD() []string {
	return append(d.hud()[:1],
		fmt.Sprintf("C: %.5f + %.5fi", real(d.C), imag(d.C)),
		fmt.Sprintf("P: %.5f + %.5fi", real(d.P), imag(d.P)),
		fmt.Sprintf("Real: [%.5f, %.5f]", d.rect.MinX, d.rect.MaxX),
		fmt.Sprintf("Imag: [%.5f, %.5f]", d.rect.MinY, d.rect.MaxY),
	)
}

// Params implements Demo.
func (d *Phoenix) Params() param.Set {
	s := append(d.params(), complexParams("c", &d.C)...)
	return append(s, complexParams("p", &d.P)...)
}

// State implements Demo.
func (d *Phoenix) State() string {
	return fmt.Sprintf("%s|%v|%v", d.state(), d.C, d.P)
}

// Biomorph is z ← z⁵ + C. P toggles Pickover's biomorph test.
type Biomorph struct {
	region
	C        complex128
	Pickover bool
}

// DefaultBiomorphC is the default constant, 1 + i.
const DefaultBiomorphC = complex(1, 1)

// NewBiomorph returns the biomorph over [-2,2]².
func NewBiomorph() *Biomorph {
	return &Biomorph{
		region: newRegion(info{
			name: "biomorph", title: "Biomorph Fractal",
			shot: "biomorph_fractal_screenshot.bmp",
			help: []string{"Left Drag: Pan, Wheel: Zoom, R: Reset", "P: Pickover Test"},
		}, view.NewRect(-2, 2, -2, 2), 100, 100, 5000,
			palette.Smooth(5, 1, [3]float64{0.2, 0.9, 1.41})),
		C: DefaultBiomorphC,
	}
}

// Render implements Demo.
func (d *Biomorph) Render(ctx context.Context, dst *image.RGBA, opts ...fractal.RenderOption) error {
	return d.render(ctx, dst, escape.Biomorph{C: d.C, Pickover: d.Pickover}, opts)
}

// Handle pans and zooms like Phoenix, and P toggles the Pickover test.
func (d *Biomorph) Handle(e control.Event, size image.Point) bool {
	if e.Kind == control.KeyPress {
		switch e.Key {
		case 'r':
			d.Reset()
			return true
		case 'p':
			d.Pickover = !d.Pickover
			return true
		}
		return false
	}
	return d.dragPan(e, size) || d.wheelZoom(e, 2)
}

// Reset implements Demo.
func (d *Biomorph) Reset() {
	d.reset()
	d.C, d.Pickover = DefaultBiomorphC, false
}

// HUD implements Demo.
func (d *Biomorph) HUD() []string {
	lines := append(d.hud()[:1], fmt.Sprintf("C: %.5f + %.5fi", real(d.C), imag(d.C)))
	lines = append(lines, d.hud()[1:]...)
	if d.Pickover {
		lines = append(lines, "Pickover: on")
	}
	return lines
}

// Params implements Demo.
func (d *Biomorph) Params() param.Set {
	return append(d.params(), append(complexParams("c", &d.C),
		param.Func("pickover", func() float64 {
			if d.Pickover {
				return 1
			}
			return 0
		}, func(v float64) { d.Pickover = v != 0 }, 0, 1))...)
}

// State implements Demo.
func (d *Biomorph) State() string {
	return fmt.Sprintf("%s|%v|%t", d.state(), d.C, d.Pickover)
}

// Tricorn is the Mandelbar set drawn through a center+scale window. The
// wheel zooms ×1.1 keeping the point under the cursor fixed.
type Tricorn struct {
	info
	panZoom
	Iter int
}

var tricornHome = view.Window{Scale: 200}

// NewTricorn returns the tricorn centered on the origin at 200 px/unit.
func NewTricorn() *Tricorn {
	return &Tricorn{
		info: info{
			name: "tricorn", title: "Tricorn Fractal",
			shot: "tricorn_fractal_screenshot.bmp", help: dragHelp,
		},
		panZoom: newPanZoom(tricornHome, 1.1),
		Iter:    200,
	}
}

// Render implements Demo.
func (d *Tricorn) Render(ctx context.Context, dst *image.RGBA, opts ...fractal.RenderOption) error {
	if err := d.view.Validate(); err != nil {
		return err
	}
	return escape.Render(ctx, dst, d.view, escape.Tricorn{}, d.Iter, palette.Banded, opts...)
}

// Handle implements Demo.
func (d *Tricorn) Handle(e control.Event, size image.Point) bool {
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
func (d *Tricorn) Reset() {
	d.reset()
	d.Iter = 200
}

// HUD implements Demo.
func (d *Tricorn) HUD() []string {
	return []string{
		fmt.Sprintf("Max Iterations: %d", d.Iter),
		fmt.Sprintf("View Scale: %.2f (px/unit)", d.view.Scale),
		fmt.Sprintf("View Center: (%.3f, %.3f)", d.view.CenterX, d.view.CenterY),
	}
}

// Params implements Demo.
func (d *Tricorn) Params() param.Set {
	return param.Set{
		param.Int("iterations", &d.Iter, 1, 100000),
		param.Float("center_re", &d.view.CenterX, -10, 10),
		param.Float("center_im", &d.view.CenterY, -10, 10),
		param.Float("scale", &d.view.Scale, 1e-3, 1e15),
	}
}

// State implements Demo.
func (d *Tricorn) State() string {
	return fmt.Sprintf("%s|%v|%d", d.name, d.view, d.Iter)
}
