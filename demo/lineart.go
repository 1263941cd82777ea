package demo

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/control"
	"github.com/gogpu/fractal/geom"
	"github.com/gogpu/fractal/lsystem"
	"github.com/gogpu/fractal/param"
	"github.com/gogpu/fractal/view"
)

func trunc(p geom.Point) geom.Point {
	return geom.Point{X: math.Trunc(p.X), Y: math.Trunc(p.Y)}
}

// stepKey applies the Up/Down arrows to an integer parameter.
func stepKey(s param.Set, name string, k control.Key) bool {
	switch k {
	case control.KeyUp:
		return s.Step(name, 1)
	case control.KeyDown:
		return s.Step(name, -1)
	}
	return false
}

// Koch is the Koch snowflake: a 600 px triangle whose edges are replaced
// by Koch curves, zoomed and panned by an affine screen transform.
type Koch struct {
	info
	Depth int
	View  view.Affine
	drag  control.Drag
}

// NewKoch returns the depth-5 snowflake.
func NewKoch() *Koch {
	return &Koch{
		info: info{
			name: "koch", title: "Koch Snowflake",
			shot: "koch_snowflake_screenshot.bmp",
			help: []string{"Up/Down: Depth, Wheel: Zoom, Left Drag: Pan, R: Reset"},
		},
		Depth: 5,
		View:  view.Identity,
		drag:  control.Drag{Button: control.Left},
	}
}

// Render implements Demo.
func (d *Koch) Render(ctx context.Context, dst *image.RGBA, _ ...fractal.RenderOption) error {
	return vectorRender(ctx, d, dst)
}

// Drawing implements Vector.
func (d *Koch) Drawing(size image.Point) (*geom.Drawing, error) {
	if !(d.View.Zoom > 0) {
		return nil, view.ErrDegenerate
	}
	tri := geom.SnowflakeTriangle(size.X, size.Y, 600, 50)
	segs := geom.Snowflake(tri, d.Depth)
	at := func(p geom.Point) geom.Point {
		x, y := d.View.Apply(p.X, p.Y)
		return trunc(geom.Point{X: x, Y: y})
	}
	for i, s := range segs {
		segs[i] = geom.Segment{A: at(s.A), B: at(s.B)}
	}
	return &geom.Drawing{
		Width: size.X, Height: size.Y, Background: black,
		Layers: []geom.Layer{{Color: white, Width: 1, Paths: geom.Chain(segs)}},
	}, nil
}

// Handle changes the depth, pans with a left drag and zooms about the
// cursor.
func (d *Koch) Handle(e control.Event, _ image.Point) bool {
	switch e.Kind {
	case control.KeyPress:
		if e.Key == 'r' {
			d.Reset()
			return true
		}
		return stepKey(d.Params(), "depth", e.Key)
	case control.Wheel:
		switch {
		case e.WheelY > 0:
			d.View = d.View.ZoomAt(e.X, e.Y, 1.2)
		case e.WheelY < 0:
			d.View = d.View.ZoomAt(e.X, e.Y, 1/1.2)
		default:
			return false
		}
		return true
	}
	dx, dy, ok := d.drag.Update(e)
	if ok {
		d.View = d.View.Pan(dx, dy)
	}
	return ok
}

// Reset implements Demo.
func (d *Koch) Reset() {
	d.Depth, d.View = 5, view.Identity
}

// HUD implements Demo.
func (d *Koch) HUD() []string {
	return []string{
		fmt.Sprintf("Depth: %d", d.Depth),
		fmt.Sprintf("Zoom: %.2fx", d.View.Zoom),
	}
}

// Params implements Demo.
func (d *Koch) Params() param.Set {
	return param.Set{
		param.Int("depth", &d.Depth, 0, 7),
		param.Float("zoom", &d.View.Zoom, 1e-6, 1e9),
		param.Float("offset_x", &d.View.OffsetX, -1e12, 1e12),
		param.Float("offset_y", &d.View.OffsetY, -1e12, 1e12),
	}
}

// State implements Demo.
func (d *Koch) State() string { return fmt.Sprintf("%s|%d|%v", d.name, d.Depth, d.View) }

// DragonLimit caps the dragon curve's L-system string.
const DragonLimit = 400000

// Dragon is the Heighway dragon traced by a turtle with unit steps and
// right-angle turns. The first frame fits the whole curve.
type Dragon struct {
	info
	panZoom
	Iterations int

	walked int
	segs   []geom.Segment
	box    geom.Box
}

// NewDragon returns the 14-iteration curve.
func NewDragon() *Dragon {
	d := &Dragon{
		info: info{
			name: "dragon", title: "Dragon Curve",
			shot: "dragon_curve_screenshot.bmp",
			help: []string{"Up/Down: Iterations, Left Drag: Pan, Wheel: Zoom, R: Reset"},
		},
		Iterations: 14,
		walked:     -1,
	}
	d.panZoom = newFitted(d.fitView, 1.1)
	return d
}

func (d *Dragon) walk() ([]geom.Segment, geom.Box) {
	if d.walked != d.Iterations {
		s, _ := lsystem.Dragon.Expand(d.Iterations, DragonLimit)
		d.segs, d.box = lsystem.Turtle{Step: 1, Angle: math.Pi / 2}.Walk(s)
		d.walked = d.Iterations
	}
	return d.segs, d.box
}

func (d *Dragon) fitView(size image.Point) view.Window {
	_, b := d.walk()
	return view.Fit(b.Min.X, b.Max.X, b.Min.Y, b.Max.Y, size.X, size.Y, 0.9, true)
}

// Render implements Demo.
func (d *Dragon) Render(ctx context.Context, dst *image.RGBA, _ ...fractal.RenderOption) error {
	return vectorRender(ctx, d, dst)
}

// Drawing implements Vector.
func (d *Dragon) Drawing(size image.Point) (*geom.Drawing, error) {
	d.ensure(size)
	if err := d.view.Validate(); err != nil {
		return nil, err
	}
	segs, _ := d.walk()
	w, h := float64(size.X), float64(size.Y)
	kept := make([]geom.Segment, 0, len(segs))
	for _, s := range segs {
		var a, b geom.Point
		a.X, a.Y = d.nearest(s.A.X, s.A.Y, size)
		b.X, b.Y = d.nearest(s.B.X, s.B.Y, size)
		if math.Abs(b.X-a.X) >= 2*w || math.Abs(b.Y-a.Y) >= 2*h ||
			a.X < -w || a.X > 2*w || a.Y < -h || a.Y > 2*h {
			continue
		}
		kept = append(kept, geom.Segment{A: a, B: b})
	}
	return &geom.Drawing{
		Width: size.X, Height: size.Y, Background: black,
		Layers: []geom.Layer{{Color: color.RGBA{0, 150, 255, 255}, Width: 1, Paths: geom.Chain(kept)}},
	}, nil
}

// Handle changes the iteration count and pans and zooms the curve.
func (d *Dragon) Handle(e control.Event, size image.Point) bool {
	if e.Kind != control.KeyPress {
		return d.handle(e, size)
	}
	if e.Key == 'r' {
		d.Reset()
		return true
	}
	return stepKey(d.Params(), "iterations", e.Key)
}

// Reset returns to 14 iterations and refits the view.
func (d *Dragon) Reset() {
	d.Iterations = 14
	d.reset()
}

// HUD implements Demo.
func (d *Dragon) HUD() []string {
	return []string{
		fmt.Sprintf("Iterations: %d", d.Iterations),
		fmt.Sprintf("View Scale: %.2f (px/unit)", d.view.Scale),
		fmt.Sprintf("View Center: (%.2f, %.2f)", d.view.CenterX, d.view.CenterY),
	}
}

// Params implements Demo.
func (d *Dragon) Params() param.Set {
	return param.Set{param.Int("iterations", &d.Iterations, 0, 20)}
}

// State implements Demo.
func (d *Dragon) State() string {
	return fmt.Sprintf("%s|%d|%t|%v", d.name, d.Iterations, d.fitted, d.view)
}

// Vicsek draws the Vicsek cross fractal of an 800-unit square through a
// world rectangle. Squares smaller than two pixels are not subdivided.
type Vicsek struct {
	info
	Rect  view.Rect
	Depth int
	drag  control.Drag
}

const vicsekSize = 800

var vicsekHome = view.NewRect(0, vicsekSize, 0, vicsekSize)

// NewVicsek returns the depth-5 fractal filling the view.
func NewVicsek() *Vicsek {
	return &Vicsek{
		info: info{
			name: "vicsek", title: "Vicsek Fractal",
			shot: "vicsek_fractal_screenshot.bmp",
			help: []string{"Up/Down: Depth, Left Drag: Pan, Wheel: Zoom, R: Reset"},
		},
		Rect:  vicsekHome,
		Depth: 5,
		drag:  control.Drag{Button: control.Left},
	}
}

// Render implements Demo.
func (d *Vicsek) Render(ctx context.Context, dst *image.RGBA, _ ...fractal.RenderOption) error {
	return vectorRender(ctx, d, dst)
}

// Drawing implements Vector.
func (d *Vicsek) Drawing(size image.Point) (*geom.Drawing, error) {
	if err := d.Rect.Validate(); err != nil {
		return nil, err
	}
	corners := func(s geom.Square) (x0, y0, x1, y1 int) {
		fx, fy := d.Rect.ToPixel(s.Min.X, s.Min.Y, size.X, size.Y)
		gx, gy := d.Rect.ToPixel(s.Min.X+s.Size, s.Min.Y+s.Size, size.X, size.Y)
		return int(fx), int(fy), int(gx), int(gy)
	}
	small := func(s geom.Square) bool {
		x0, y0, x1, y1 := corners(s)
		return x1-x0 <= 1 || y1-y0 <= 1
	}
	leaves := geom.Vicsek(nil, geom.Square{Size: vicsekSize}, d.Depth, small)

	var paths [][]geom.Point
	for _, s := range leaves {
		x0, y0, x1, y1 := corners(s)
		if x1 <= 0 || y1 <= 0 || x0 >= size.X || y0 >= size.Y {
			continue
		}
		x0, y0 = max(x0, 0), max(y0, 0)
		x1, y1 = min(x1, size.X), min(y1, size.Y)
		if x1 <= x0 || y1 <= y0 {
			continue
		}
		a, b := geom.Point{X: float64(x0), Y: float64(y0)}, geom.Point{X: float64(x1), Y: float64(y1)}
		paths = append(paths, []geom.Point{a, {X: b.X, Y: a.Y}, b, {X: a.X, Y: b.Y}})
	}
	return &geom.Drawing{
		Width: size.X, Height: size.Y, Background: black,
		Layers: []geom.Layer{{Color: white, Fill: true, Paths: paths}},
	}, nil
}

// Handle changes the depth and pans and zooms the square.
func (d *Vicsek) Handle(e control.Event, size image.Point) bool {
	switch e.Kind {
	case control.KeyPress:
		if e.Key == 'r' {
			d.Reset()
			return true
		}
		return stepKey(d.Params(), "depth", e.Key)
	case control.Wheel:
		x, y := d.Rect.ToWorld(e.X, e.Y, size.X, size.Y)
		switch {
		case e.WheelY > 0:
			d.Rect = d.Rect.ZoomAt(x, y, 1.25)
		case e.WheelY < 0:
			d.Rect = d.Rect.ZoomAt(x, y, 0.8)
		default:
			return false
		}
		return true
	}
	dx, dy, ok := d.drag.Update(e)
	if ok {
		d.Rect = d.Rect.Pan(dx, dy, size.X, size.Y)
	}
	return ok
}

// Reset implements Demo.
func (d *Vicsek) Reset() {
	d.Rect, d.Depth = vicsekHome, 5
}

// HUD implements Demo.
func (d *Vicsek) HUD() []string {
	return []string{
		fmt.Sprintf("View X: [%.2f, %.2f]", d.Rect.MinX, d.Rect.MaxX),
		fmt.Sprintf("View Y: [%.2f, %.2f]", d.Rect.MinY, d.Rect.MaxY),
		fmt.Sprintf("Depth: %d (Max %d)", d.Depth, 5),
		fmt.Sprintf("Zoom: %.2fx", vicsekSize/d.Rect.Width()),
	}
}

// Params implements Demo.
func (d *Vicsek) Params() param.Set {
	return param.Set{
		param.Int("depth", &d.Depth, 0, 5),
		param.Float("min_x", &d.Rect.MinX, -1e9, 1e9),
		param.Float("max_x", &d.Rect.MaxX, -1e9, 1e9),
		param.Float("min_y", &d.Rect.MinY, -1e9, 1e9),
		param.Float("max_y", &d.Rect.MaxY, -1e9, 1e9),
	}
}

// State implements Demo.
func (d *Vicsek) State() string { return fmt.Sprintf("%s|%d|%v", d.name, d.Depth, d.Rect) }
