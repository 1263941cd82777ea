package demo

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/camera"
	"github.com/gogpu/fractal/control"
	"github.com/gogpu/fractal/geom"
	"github.com/gogpu/fractal/ode"
	"github.com/gogpu/fractal/param"
	"github.com/gogpu/fractal/view"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// trace holds an integrated trajectory until its inputs change.
type trace struct {
	key    string
	points []mgl64.Vec3
}

func (t *trace) get(s ode.System, start mgl64.Vec3, dt float64, warmup, n int) ([]mgl64.Vec3, error) {
	key := fmt.Sprintf("%v|%v|%v|%d|%d", s, start, dt, warmup, n)
	if key == t.key {
		return t.points, nil
	}
	begin := time.Now()
	pts, err := ode.Trajectory(s, start, dt, warmup, n)
	if err != nil {
		return nil, err
	}
	t.key, t.points = key, pts
	fractal.Logger().Debug("demo: integrated", "system", fmt.Sprintf("%T", s),
		"points", n, "dt", dt, "elapsed", time.Since(begin))
	return pts, nil
}

func attractorLayer(c color.RGBA, paths [][]geom.Point) geom.Layer {
	return geom.Layer{Color: c, Width: 1, Paths: paths}
}

// Lorenz is the Lorenz attractor seen along z, projected (x, y) through a
// center+scale window.
type Lorenz struct {
	info
	panZoom
	ode.Lorenz
	DT     float64
	Points int
	trace  trace
}

var lorenzHome = view.Window{CenterY: 27, Scale: 10, FlipY: true}

// NewLorenz returns the classic σ=10, ρ=28, β=8/3 attractor.
func NewLorenz() *Lorenz {
	return &Lorenz{
		info: info{
			name: "lorenz", title: "Lorenz Attractor",
			shot: "lorentz_attractor_screenshot.bmp",
			help: []string{"Up/Down: Rho, Left/Right: Sigma, +/-: dt", "Left Drag: Pan, Wheel: Zoom, R: Reset"},
		},
		panZoom: newPanZoom(lorenzHome, 1.1),
		Lorenz:  ode.DefaultLorenz,
		DT:      0.005,
		Points:  200000,
	}
}

func (d *Lorenz) points() ([]mgl64.Vec3, error) {
	return d.trace.get(d.Lorenz, mgl64.Vec3{0.1, 0, 0}, d.DT, 1000, d.Points)
}

// Render implements Demo.
func (d *Lorenz) Render(ctx context.Context, dst *image.RGBA, _ ...fractal.RenderOption) error {
	return vectorRender(ctx, d, dst)
}

// Drawing implements Vector.
func (d *Lorenz) Drawing(size image.Point) (*geom.Drawing, error) {
	if err := d.view.Validate(); err != nil {
		return nil, err
	}
	pts, err := d.points()
	if err != nil {
		return nil, err
	}
	px := make([]geom.Point, len(pts))
	for i, p := range pts {
		px[i].X, px[i].Y = d.pixel(p[0], p[1], size)
	}
	paths := geom.SplitJumps(px, 2*float64(size.X), 2*float64(size.Y))
	return &geom.Drawing{
		Width: size.X, Height: size.Y, Background: black,
		Layers: []geom.Layer{attractorLayer(white, paths)},
	}, nil
}

// Handle pans with a left drag, zooms with the wheel and steps rho and
// sigma with the arrow keys.
func (d *Lorenz) Handle(e control.Event, size image.Point) bool {
	if e.Kind != control.KeyPress {
		return d.handle(e, size)
	}
	s := d.Params()
	switch e.Key {
	case 'r':
		d.Reset()
		return true
	case control.KeyUp:
		return s.Step("rho", 0.5)
	case control.KeyDown:
		return s.Step("rho", -0.5)
	case control.KeyRight:
		return s.Step("sigma", 0.5)
	case control.KeyLeft:
		return s.Step("sigma", -0.5)
	case '+', '=':
		return s.Scale("dt", 1.1)
	case '-':
		return s.Scale("dt", 1/1.1)
	}
	return false
}

// Reset restores the classic parameters and the default window.
func (d *Lorenz) Reset() {
	d.reset()
	d.Lorenz, d.DT = ode.DefaultLorenz, 0.005
}

// HUD implements Demo.
func (d *Lorenz) HUD() []string {
	return []string{
		fmt.Sprintf("Sigma: %.2f Rho: %.2f Beta: %.2f", d.Sigma, d.Rho, d.Beta),
		fmt.Sprintf("dt: %.4f Points: %d", d.DT, d.Points),
		fmt.Sprintf("View Scale: %.2f (px/unit)", d.view.Scale),
		fmt.Sprintf("View Center: (%.2f, %.2f)", d.view.CenterX, d.view.CenterY),
	}
}

// Params implements Demo.
func (d *Lorenz) Params() param.Set {
	return param.Set{
		param.Float("sigma", &d.Sigma, 0.1, 1000),
		param.Float("rho", &d.Rho, 0.1, 1000),
		param.Float("beta", &d.Beta, 0.01, 100),
		param.Float("dt", &d.DT, 0.0001, 1),
		param.Int("points", &d.Points, 2, 5_000_000),
		param.Float("center_x", &d.view.CenterX, -1e6, 1e6),
		param.Float("center_y", &d.view.CenterY, -1e6, 1e6),
		param.Float("scale", &d.view.Scale, 1e-6, 1e9),
	}
}

// State implements Demo.
func (d *Lorenz) State() string {
	return fmt.Sprintf("%s|%v|%v|%v|%d", d.name, d.view, d.Lorenz, d.DT, d.Points)
}

// Aizawa is the Aizawa attractor projected on (x, y). The first Skip
// points are integrated but not drawn.
type Aizawa struct {
	info
	panZoom
	ode.Aizawa
	DT     float64
	Points int
	Skip   int
	trace  trace
}

var aizawaHome = view.Window{Scale: 50, FlipY: true}

// NewAizawa returns the attractor with its usual parameters.
func NewAizawa() *Aizawa {
	return &Aizawa{
		info: info{
			name: "aizawa", title: "Aizawa Attractor",
			shot: "aizawa_attractor_screenshot.bmp",
			help: []string{
				"Up/Down: A, Left/Right: B, C/V: C, N/M: D, E/W: E, F/G: F",
				"+/-: dt, R: Reset View & Params",
			},
		},
		panZoom: newPanZoom(aizawaHome, 1.1),
		Aizawa:  ode.DefaultAizawa,
		DT:      0.01,
		Points:  200000,
		Skip:    20000,
	}
}

// Render implements Demo.
func (d *Aizawa) Render(ctx context.Context, dst *image.RGBA, _ ...fractal.RenderOption) error {
	return vectorRender(ctx, d, dst)
}

func (d *Aizawa) points() ([]mgl64.Vec3, error) {
	return d.trace.get(d.Aizawa, mgl64.Vec3{0.1, 0, 0}, d.DT, 0, d.Points)
}

// Drawing implements Vector.
func (d *Aizawa) Drawing(size image.Point) (*geom.Drawing, error) {
	if err := d.view.Validate(); err != nil {
		return nil, err
	}
	pts, err := d.points()
	if err != nil {
		return nil, err
	}
	skip := min(d.Skip, len(pts))
	paths := geom.Polylines(len(pts)-skip, func(i int) (geom.Point, bool) {
		p := pts[skip+i]
		var pt geom.Point
		pt.X, pt.Y = d.pixel(p[0], p[1], size)
		return pt, camera.InBounds(pt, size.X, size.Y, 2)
	})
	return &geom.Drawing{
		Width: size.X, Height: size.Y, Background: black,
		Layers: []geom.Layer{attractorLayer(white, paths)},
	}, nil
}

var aizawaKeys = map[control.Key]struct {
	name  string
	delta float64
}{
	control.KeyUp: {"a", 0.01}, control.KeyDown: {"a", -0.01},
	control.KeyRight: {"b", 0.01}, control.KeyLeft: {"b", -0.01},
	'c': {"c", 0.01}, 'v': {"c", -0.01},
	'n': {"d", 0.01}, 'm': {"d", -0.01},
	'e': {"e", 0.01}, 'w': {"e", -0.01},
	'f': {"f", 0.01}, 'g': {"f", -0.01},
}

// Handle pans and zooms the view. Keys step the parameters and scale dt.
func (d *Aizawa) Handle(e control.Event, size image.Point) bool {
	if e.Kind != control.KeyPress {
		return d.handle(e, size)
	}
	s := d.Params()
	switch e.Key {
	case 'r':
		d.Reset()
		return true
	case '+', '=':
		return s.Scale("dt", 1.1)
	case '-':
		return s.Scale("dt", 1/1.1)
	}
	if k, ok := aizawaKeys[e.Key]; ok {
		return s.Step(k.name, k.delta)
	}
	return false
}

// Reset implements Demo.
func (d *Aizawa) Reset() {
	d.reset()
	d.Aizawa, d.DT = ode.DefaultAizawa, 0.01
}

// HUD implements Demo.
func (d *Aizawa) HUD() []string {
	return []string{
		fmt.Sprintf("A: %.2f B: %.2f C: %.2f", d.A, d.B, d.C),
		fmt.Sprintf("D: %.2f E: %.2f F: %.2f", d.D, d.E, d.F),
		fmt.Sprintf("dt: %.4f Points: %d", d.DT, d.Points),
		fmt.Sprintf("View Center: (%.2f, %.2f)", d.view.CenterX, d.view.CenterY),
		fmt.Sprintf("View Scale: %.1f", d.view.Scale),
	}
}

// Params implements Demo.
func (d *Aizawa) Params() param.Set {
	return param.Set{
		param.Float("a", &d.A, 0.01, 100),
		param.Float("b", &d.B, -100, 100),
		param.Float("c", &d.C, -100, 100),
		param.Float("d", &d.D, -100, 100),
		param.Float("e", &d.E, -100, 100),
		param.Float("f", &d.F, -100, 100),
		param.Float("dt", &d.DT, 0.0001, 1),
		param.Int("points", &d.Points, 2, 5_000_000),
		param.Int("skip", &d.Skip, 0, 5_000_000),
		param.Float("center_x", &d.view.CenterX, -1e6, 1e6),
		param.Float("center_y", &d.view.CenterY, -1e6, 1e6),
		param.Float("scale", &d.view.Scale, 1e-6, 1e9),
	}
}

// State implements Demo.
func (d *Aizawa) State() string {
	return fmt.Sprintf("%s|%v|%v|%v|%d|%d", d.name, d.view, d.Aizawa, d.DT, d.Points, d.Skip)
}

// ChenLee is the Chen-Lee attractor seen through an orbiting camera. The
// trajectory is recentered on its centroid before projection.
type ChenLee struct {
	info
	ode.ChenLee
	Camera camera.Orbit
	DT     float64
	Points int
	Skip   int

	trace    trace
	centroid mgl64.Vec3
	pivotKey string
	rotate   control.Drag
	pan      control.Drag
}

// Chen-Lee camera defaults.
const (
	chenLeeFocal = 300
	chenLeeZ     = 90
	chenLeeScale = 10
)

// NewChenLee returns the attractor with a = 5, b = −10, c = −0.38.
func NewChenLee() *ChenLee {
	d := &ChenLee{
		info: info{
			name: "chen-lee", title: "Chen-Lee Attractor",
			shot: "chenlee_attractor_screenshot.bmp",
			help: []string{
				"Left Drag: Rotate, Middle Drag: Pan, Wheel: Zoom Z",
				"WASD: Move Cam, Q/E: Scale, +/-: dt, R: Reset",
			},
		},
		rotate: control.Drag{Button: control.Left},
		pan:    control.Drag{Button: control.Middle},
	}
	d.Reset()
	return d
}

var chenLeeStart = mgl64.Vec3{1, 0, 4.5}

// points integrates the trajectory, refreshing the centroid when it or
// Skip changes.
func (d *ChenLee) points() ([]mgl64.Vec3, error) {
	pts, err := d.trace.get(d.ChenLee, chenLeeStart, d.DT, 0, d.Points)
	if err != nil {
		return nil, err
	}
	if key := fmt.Sprintf("%s|%d", d.trace.key, d.Skip); key != d.pivotKey {
		d.centroid, d.pivotKey = ode.Centroid(pts, d.Skip), key
	}
	return pts, nil
}

// Render implements Demo.
func (d *ChenLee) Render(ctx context.Context, dst *image.RGBA, _ ...fractal.RenderOption) error {
	return vectorRender(ctx, d, dst)
}

// Drawing implements Vector.
func (d *ChenLee) Drawing(size image.Point) (*geom.Drawing, error) {
	pts, err := d.points()
	if err != nil {
		return nil, err
	}
	skip := min(d.Skip, len(pts))
	paths := geom.Polylines(len(pts)-skip, func(i int) (geom.Point, bool) {
		pt, ok := d.Camera.Project(pts[skip+i], d.centroid, size.X, size.Y)
		if !ok || !camera.InBounds(pt, size.X, size.Y, 2) {
			return pt, false
		}
		return geom.Point{X: math.Trunc(pt.X), Y: math.Trunc(pt.Y)}, true
	})
	return &geom.Drawing{
		Width: size.X, Height: size.Y, Background: color.RGBA{20, 20, 30, 255},
		Layers: []geom.Layer{attractorLayer(color.RGBA{200, 200, 255, 255}, paths)},
	}, nil
}

// Handle orbits with a left drag, pans with a middle drag, dollies with the
// wheel and moves the camera with WASD and Q/E.
func (d *ChenLee) Handle(e control.Event, size image.Point) bool {
	c := &d.Camera
	switch e.Kind {
	case control.KeyPress:
		switch e.Key {
		case 'r':
			d.Reset()
		case 'w':
			c.Position[1] -= 5
		case 's':
			c.Position[1] += 5
		case 'a':
			c.Position[0] -= 5
		case 'd':
			c.Position[0] += 5
		case 'q':
			c.Scale++
		case 'e':
			c.Scale = max(1, c.Scale-1)
		case '+', '=':
			return d.Params().Step("dt", 0.001)
		case '-':
			return d.Params().Step("dt", -0.001)
		default:
			return false
		}
		return true
	case control.Wheel:
		switch {
		case e.WheelY > 0:
			c.Position[2] -= 10
		case e.WheelY < 0:
			c.Position[2] += 10
		default:
			return false
		}
		c.Position[2] = min(500, max(-500, c.Position[2]))
		return true
	}
	if dx, dy, ok := d.rotate.Update(e); ok {
		c.RotY += dx * 0.005
		c.RotX += dy * 0.005
		return true
	}
	if dx, dy, ok := d.pan.Update(e); ok {
		k := 1 / (c.Scale * (1 + c.Position[2]/chenLeeFocal))
		c.Position[0] -= dx * k
		c.Position[1] += dy * k
		return true
	}
	return false
}

// Reset restores the parameters and places the camera on the negated
// centroid at depth 90, looking through rotations (π, −π).
func (d *ChenLee) Reset() {
	d.ChenLee, d.DT, d.Points, d.Skip = ode.DefaultChenLee, 0.01, 50000, 5000
	d.Camera = camera.Orbit{
		Position: mgl64.Vec3{-15, -15, chenLeeZ},
		RotX:     math.Pi, RotY: -math.Pi,
		Scale: chenLeeScale, Focal: chenLeeFocal,
	}
	if _, err := d.points(); err == nil {
		d.Camera.Position[0], d.Camera.Position[1] = -d.centroid[0], -d.centroid[1]
	}
}

// HUD reports the camera position in attractor coordinates.
func (d *ChenLee) HUD() []string {
	c := d.Camera
	// Camera position in attractor coordinates.
	at := c.Position.Add(d.centroid)
	return []string{
		fmt.Sprintf("A: %.2f, B: %.2f, C: %.2f", d.A, d.B, d.C),
		fmt.Sprintf("dt: %.4f, Points: %d", d.DT, d.Points),
		fmt.Sprintf("Cam (X:%.0f, Y:%.0f, Z:%.0f)", at[0], at[1], at[2]),
		fmt.Sprintf("Cam Rot (X:%.1f, Y:%.1f)", mgl64.RadToDeg(c.RotX), mgl64.RadToDeg(c.RotY)),
		fmt.Sprintf("View Scale: %.1f", c.Scale),
	}
}

// Params implements Demo.
func (d *ChenLee) Params() param.Set {
	return param.Set{
		param.Float("a", &d.A, -100, 100),
		param.Float("b", &d.B, -100, 100),
		param.Float("c", &d.C, -100, 100),
		param.Float("dt", &d.DT, 0.0001, 0.1),
		param.Int("points", &d.Points, 2, 5_000_000),
		param.Int("skip", &d.Skip, 0, 5_000_000),
		param.Float("scale", &d.Camera.Scale, 1, 1e6),
		param.Float("rot_x", &d.Camera.RotX, -100, 100),
		param.Float("rot_y", &d.Camera.RotY, -100, 100),
		param.Float("cam_z", &d.Camera.Position[2], -500, 500),
	}
}

// State implements Demo.
func (d *ChenLee) State() string {
	return fmt.Sprintf("%s|%v|%v|%d|%d|%+v", d.name, d.ChenLee, d.DT, d.Points, d.Skip, d.Camera)
}
