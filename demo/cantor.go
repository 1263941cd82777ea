package demo

import (
	"context"
	"fmt"
	"image"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/control"
	"github.com/gogpu/fractal/geom"
	"github.com/gogpu/fractal/lsystem"
	"github.com/gogpu/fractal/param"
)

// Cantor limits.
const (
	CantorMaxIterations = 13
	cantorLimit         = 1 << 22
	cantorArcSteps      = 64
)

// Cantor draws successive generations of the Cantor L-system as
// concentric rings, black on white. Ring j marks every A of generation j.
type Cantor struct {
	info
	Iterations int
}

// NewCantor returns the six-ring figure.
func NewCantor() *Cantor {
	return &Cantor{
		info: info{
			name: "cantor", title: "Circular Cantor Set",
			shot: "cantor_screenshot.bmp",
			size: image.Pt(960, 960),
			help: []string{"Up/Down: Iterations, R: Reset"},
		},
		Iterations: 6,
	}
}

// Render implements Demo.
func (d *Cantor) Render(ctx context.Context, dst *image.RGBA, _ ...fractal.RenderOption) error {
	return vectorRender(ctx, d, dst)
}

// Drawing implements Vector.
func (d *Cantor) Drawing(size image.Point) (*geom.Drawing, error) {
	dr := &geom.Drawing{Width: size.X, Height: size.Y, Background: white}
	if d.Iterations <= 0 {
		return dr, nil
	}
	gens, err := lsystem.Cantor.Generations(d.Iterations-1, cantorLimit)
	if err != nil {
		return nil, err
	}
	c := geom.Point{X: float64(size.X) / 2, Y: float64(size.Y) / 2}
	wedges := geom.CantorRings(gens, float64(size.X)/2, 'A')
	paths := make([][]geom.Point, len(wedges))
	for i, w := range wedges {
		paths[i] = w.Outline(c, cantorArcSteps)
	}
	dr.Layers = []geom.Layer{{Color: black, Fill: true, Paths: paths}}
	return dr, nil
}

// Handle changes the iteration count with Up/Down.
func (d *Cantor) Handle(e control.Event, _ image.Point) bool {
	if e.Kind != control.KeyPress {
		return false
	}
	if e.Key == 'r' {
		d.Reset()
		return true
	}
	return stepKey(d.Params(), "iterations", e.Key)
}

// Reset returns to six iterations.
func (d *Cantor) Reset() { d.Iterations = 6 }

// HUD implements Demo.
func (d *Cantor) HUD() []string {
	return []string{fmt.Sprintf("Iterations: %d", d.Iterations)}
}

// Params implements Demo.
func (d *Cantor) Params() param.Set {
	return param.Set{param.Int("iterations", &d.Iterations, 0, CantorMaxIterations)}
}

// State implements Demo.
func (d *Cantor) State() string { return fmt.Sprintf("%s|%d", d.name, d.Iterations) }
