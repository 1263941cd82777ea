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

// region is the state shared by the escape-time demos drawn over a
// rectangle of the complex plane.
type region struct {
	info
	rect  view.Rect
	iter  int
	home  view.Rect
	start int
	// floor and ceil bound the iteration count as zooming rescales it.
	floor, ceil int
	color       escape.ColorFunc
	drag        control.Drag
}

func newRegion(i info, home view.Rect, iter, floor, ceil int, color escape.ColorFunc) region {
	return region{
		info: i, rect: home, iter: iter, home: home, start: iter,
		floor: floor, ceil: ceil, color: color,
		drag: control.Drag{Button: control.Left},
	}
}

func (p *region) reset() {
	p.rect, p.iter = p.home, p.start
}

// deeper raises the iteration limit by 20% for a zoom in.
func (p *region) deeper() {
	p.iter = max(p.floor, int(min(float64(p.ceil), float64(p.iter)*1.2)))
}

// shallower lowers the iteration limit by 20% for a zoom out.
func (p *region) shallower() {
	p.iter = int(max(float64(p.floor), float64(p.iter)/1.2))
}

// clickZoom zooms in ×2 on the clicked point with the left button and out
// ×2 about the center with the right one.
func (p *region) clickZoom(e control.Event, size image.Point) bool {
	if e.Kind != control.ButtonDown {
		return false
	}
	switch e.Button {
	case control.Left:
		x, y := p.rect.ToWorld(e.X, e.Y, size.X, size.Y)
		p.rect = p.rect.ZoomAt(x, y, 2)
		p.deeper()
	case control.Right:
		p.rect = p.rect.Zoom(0.5)
		p.shallower()
	default:
		return false
	}
	return true
}

// wheelZoom zooms about the center by factor per wheel notch.
func (p *region) wheelZoom(e control.Event, factor float64) bool {
	switch {
	case e.Kind != control.Wheel || e.WheelY == 0:
		return false
	case e.WheelY > 0:
		p.rect = p.rect.Zoom(factor)
		p.deeper()
	default:
		p.rect = p.rect.Zoom(1 / factor)
		p.shallower()
	}
	return true
}

func (p *region) dragPan(e control.Event, size image.Point) bool {
	dx, dy, ok := p.drag.Update(e)
	if ok {
		p.rect = p.rect.Pan(dx, dy, size.X, size.Y)
	}
	return ok
}

func (p *region) render(ctx context.Context, dst *image.RGBA, k escape.Kernel, opts []fractal.RenderOption) error {
	if err := p.rect.Validate(); err != nil {
		return err
	}
	return escape.Render(ctx, dst, p.rect, k, p.iter, p.color, opts...)
}

func (p *region) hud() []string {
	return []string{
		fmt.Sprintf("Iterations: %d", p.iter),
		fmt.Sprintf("Real: [%.5f, %.5f]", p.rect.MinX, p.rect.MaxX),
		fmt.Sprintf("Imag: [%.5f, %.5f]", p.rect.MinY, p.rect.MaxY),
	}
}

func (p *region) params() param.Set {
	return param.Set{
		param.Int("iterations", &p.iter, 1, 100000),
		param.Float("min_re", &p.rect.MinX, -10, 10),
		param.Float("max_re", &p.rect.MaxX, -10, 10),
		param.Float("min_im", &p.rect.MinY, -10, 10),
		param.Float("max_im", &p.rect.MaxY, -10, 10),
	}
}

func (p *region) state() string {
	return fmt.Sprintf("%s|%v|%d", p.name, p.rect, p.iter)
}

var clickHelp = []string{"Left Click: Zoom In, Right Click: Zoom Out", "R: Reset"}

// Plane is a click-to-zoom escape-time demo with a fixed kernel:
// Mandelbrot, Burning Ship and Newton.
type Plane struct {
	region
	kernel escape.Kernel
}

// NewMandelbrot returns z² + c over [-2,1]×[-1.5,1.5].
func NewMandelbrot() *Plane {
	return &Plane{
		region: newRegion(info{
			name: "mandelbrot", title: "Mandelbrot Set",
			shot: "mandelbrot_screenshot.bmp", help: clickHelp,
		}, view.NewRect(-2, 1, -1.5, 1.5), 100, 100, 5000, palette.Classic),
		kernel: escape.Mandelbrot{},
	}
}

// NewBurningShip returns the Burning Ship over its bow, [-1.8,0]×[-2,0].
func NewBurningShip() *Plane {
	return &Plane{
		region: newRegion(info{
			name: "burning-ship", title: "Burning Ship Fractal",
			shot: "burning_ship_screenshot.bmp", help: clickHelp,
		}, view.NewRect(-1.8, 0, -2, 0), 100, 100, 5000, palette.Fire),
		kernel: escape.BurningShip{},
	}
}

// NewNewton returns Newton's method for z³ − 1 over [-2,2]².
func NewNewton() *Plane {
	return &Plane{
		region: newRegion(info{
			name: "newton", title: "Newton Fractal (z^3 - 1)",
			shot: "newton_screenshot.bmp", help: clickHelp,
		}, view.NewRect(-2, 2, -2, 2), 50, 50, 2000, palette.Roots),
		kernel: escape.DefaultNewton,
	}
}

// Render implements Demo.
func (p *Plane) Render(ctx context.Context, dst *image.RGBA, opts ...fractal.RenderOption) error {
	return p.render(ctx, dst, p.kernel, opts)
}

// Handle zooms in ×2 on a left click and out about the center on a right
// click, adjusting the iteration count with the depth.
func (p *Plane) Handle(e control.Event, size image.Point) bool {
	if e.Kind == control.KeyPress && e.Key == 'r' {
		p.Reset()
		return true
	}
	return p.clickZoom(e, size)
}

// Reset implements Demo.
func (p *Plane) Reset() { p.reset() }

// HUD implements Demo.
func (p *Plane) HUD() []string { return p.hud() }

// Params implements Demo.
func (p *Plane) Params() param.Set { return p.params() }

// State implements Demo.
func (p *Plane) State() string { return p.state() }

// Julia is the Julia set of z² + C. Clicking picks C from the plane
// [-2,1]×[-1.5,1.5] under the cursor; the wheel zooms about the center.
type Julia struct {
	region
	C complex128
}

// NewJulia returns the Julia set for DefaultJuliaC over [-2,2]².
func NewJulia() *Julia {
	return &Julia{
		region: newRegion(info{
			name: "julia", title: "Julia Set",
			shot: "julia_screenshot.bmp",
			help: []string{"Left Click: Pick C, Right Click: Default C", "Wheel: Zoom, R: Reset"},
		}, view.NewRect(-2, 2, -2, 2), 100, 100, 5000, palette.Bernstein),
		C: escape.DefaultJuliaC,
	}
}

// pickRect is the region of c values addressed by a click.
var pickRect = view.NewRect(-2, 1, -1.5, 1.5)

// Render implements Demo.
func (j *Julia) Render(ctx context.Context, dst *image.RGBA, opts ...fractal.RenderOption) error {
	return j.render(ctx, dst, escape.Julia{C: j.C}, opts)
}

// Handle picks c with a left click, restores it with a right click and
// zooms with the wheel.
func (j *Julia) Handle(e control.Event, size image.Point) bool {
	switch e.Kind {
	case control.KeyPress:
		if e.Key == 'r' {
			j.Reset()
			return true
		}
	case control.ButtonDown:
		switch e.Button {
		case control.Left:
			j.C = pickRect.At(e.X, e.Y, size.X, size.Y)
		case control.Right:
			j.C = escape.DefaultJuliaC
		default:
			return false
		}
		fractal.Logger().Debug("demo: julia constant", "c", j.C)
		return true
	case control.Wheel:
		return j.wheelZoom(e, 1.2)
	}
	return false
}

// Reset implements Demo.
func (j *Julia) Reset() {
	j.reset()
	j.C = escape.DefaultJuliaC
}

// HUD implements Demo.
func (j *Julia) HUD() []string {
	return append(j.hud(), fmt.Sprintf("C: %.5f + %.5fi", real(j.C), imag(j.C)))
}

// Params implements Demo.
func (j *Julia) Params() param.Set {
	return append(j.params(), complexParams("c", &j.C)...)
}

// State implements Demo.
func (j *Julia) State() string { return fmt.Sprintf("%s|%v", j.state(), j.C) }

// complexParams binds the real and imaginary parts of c as name_re and
// name_im.
func complexParams(name string, c *complex128) param.Set {
	return param.Set{
		param.Func(name+"_re", func() float64 { return real(*c) },
			func(v float64) { *c = complex(v, imag(*c)) }, -10, 10),
		param.Func(name+"_im", func() float64 { return imag(*c) },
			func(v float64) { *c = complex(real(*c), v) }, -10, 10),
	}
}
