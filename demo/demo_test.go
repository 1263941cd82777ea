package demo

import (
	"context"
	"errors"
	"image"
	"math"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/control"
	"github.com/gogpu/fractal/escape"
	"github.com/gogpu/fractal/lyapunov"
	"github.com/gogpu/fractal/view"
)

var allDemos = []string{
	"mandelbrot", "julia", "burning-ship", "tricorn", "phoenix", "biomorph",
	"newton", "lyapunov", "lorenz", "chen-lee", "aizawa", "koch", "fern",
	"dragon", "vicsek", "cantor", "hcurve",
}

func TestRegistry(t *testing.T) {
	got := Available()
	for _, name := range allDemos {
		if !slices.Contains(got, name) {
			t.Errorf("Available() missing %q", name)
		}
	}
	if len(got) != len(allDemos) {
		t.Errorf("len(Available()) = %d, want %d", len(got), len(allDemos))
	}
	if !slices.IsSorted(Sorted()) {
		t.Error("Sorted() is not sorted")
	}
	if _, err := New("sierpinski"); !errors.Is(err, ErrUnknownDemo) {
		t.Errorf("New(unknown) error = %v, want ErrUnknownDemo", err)
	}
}

func TestNext(t *testing.T) {
	names := Available()
	first, last := names[0], names[len(names)-1]
	if got := Next(last, 1); got != first {
		t.Errorf("Next(%q, 1) = %q, want %q", last, got, first)
	}
	if got := Next(first, -1); got != last {
		t.Errorf("Next(%q, -1) = %q, want %q", first, got, last)
	}
	if got := Next("nope", 1); got != first {
		t.Errorf("Next(unknown) = %q, want %q", got, first)
	}
}

func TestDemoMetadata(t *testing.T) {
	for _, name := range allDemos {
		d, err := New(name)
		if err != nil {
			t.Fatal(err)
		}
		if d.Name() != name {
			t.Errorf("%s: Name() = %q", name, d.Name())
		}
		if d.Title() == "" || d.Screenshot() == "" || len(d.Help()) == 0 || len(d.HUD()) == 0 {
			t.Errorf("%s: missing title, screenshot, help or HUD", name)
		}
		if s := d.Size(); s.X <= 0 || s.Y <= 0 {
			t.Errorf("%s: Size() = %v", name, s)
		}
		names := d.Params().Names()
		if len(names) == 0 {
			t.Errorf("%s: no parameters", name)
		}
		seen := map[string]bool{}
		for _, n := range names {
			if seen[n] {
				t.Errorf("%s: duplicate parameter %q", name, n)
			}
			seen[n] = true
		}
	}
}

func TestScreenshotNames(t *testing.T) {
	want := map[string]string{
		"mandelbrot":   "mandelbrot_screenshot.bmp",
		"julia":        "julia_screenshot.bmp",
		"burning-ship": "burning_ship_screenshot.bmp",
		"tricorn":      "tricorn_fractal_screenshot.bmp",
		"phoenix":      "phoenix_fractal_screenshot.bmp",
		"biomorph":     "biomorph_fractal_screenshot.bmp",
		"newton":       "newton_screenshot.bmp",
		"lyapunov":     "lyapunov_swallow.bmp",
		"lorenz":       "lorentz_attractor_screenshot.bmp",
		"chen-lee":     "chenlee_attractor_screenshot.bmp",
		"aizawa":       "aizawa_attractor_screenshot.bmp",
		"koch":         "koch_snowflake_screenshot.bmp",
		"fern":         "barnsley_fern_screenshot.bmp",
		"dragon":       "dragon_curve_screenshot.bmp",
		"vicsek":       "vicsek_fractal_screenshot.bmp",
		"cantor":       "cantor_screenshot.bmp",
		"hcurve":       "h_curve_3d_screenshot.bmp",
	}
	for _, name := range Available() {
		d, err := New(name)
		if err != nil {
			t.Fatal(err)
		}
		w, ok := want[name]
		if !ok {
			t.Errorf("%s: no expected screenshot name", name)
			continue
		}
		if got := d.Screenshot(); got != w {
			t.Errorf("%s: Screenshot() = %q, want %q", name, got, w)
		}
	}
}

// change is an event that alters each demo's state.
var change = map[string]control.Event{
	"mandelbrot":   control.Click(control.Left, 10, 10),
	"julia":        control.Click(control.Left, 10, 10),
	"burning-ship": control.Click(control.Left, 10, 10),
	"newton":       control.Click(control.Left, 10, 10),
	"tricorn":      control.Scroll(10, 10, 1),
	"phoenix":      control.Scroll(10, 10, 1),
	"biomorph":     control.Press('p'),
	"lyapunov":     control.Press('p'),
	"lorenz":       control.Press(control.KeyUp),
	"chen-lee":     control.Scroll(10, 10, 1),
	"aizawa":       control.Press('c'),
	"koch":         control.Press(control.KeyDown),
	"fern":         control.Scroll(10, 10, 1),
	"dragon":       control.Press(control.KeyDown),
	"vicsek":       control.Scroll(10, 10, 1),
	"cantor":       control.Press(control.KeyUp),
	"hcurve":       control.Press('w'),
}

func TestHandleAndReset(t *testing.T) {
	size := image.Pt(100, 100)
	for _, name := range allDemos {
		d, _ := New(name)
		before := d.State()
		e, ok := change[name]
		if !ok {
			t.Fatalf("%s: no change event", name)
		}
		if !d.Handle(e, size) {
			t.Errorf("%s: Handle(%+v) = false, want true", name, e)
		}
		if d.State() == before {
			t.Errorf("%s: state unchanged after %+v", name, e)
		}
		d.Reset()
		if got := d.State(); got != before {
			t.Errorf("%s: Reset state = %q, want %q", name, got, before)
		}
		if d.Handle(control.Press('z'), size) {
			t.Errorf("%s: unbound key reported a change", name)
		}
	}
}

// varied lists the demos whose default view shows structure even at 48×48.
var varied = map[string]bool{
	"mandelbrot": true, "julia": true, "burning-ship": true, "phoenix": true,
	"biomorph": true, "newton": true, "lyapunov": true, "fern": true,
	"dragon": true, "vicsek": true, "cantor": true, "hcurve": true,
}

func TestRenderAll(t *testing.T) {
	if testing.Short() {
		t.Skip("renders every demo")
	}
	ctx := context.Background()
	for _, name := range allDemos {
		d, _ := New(name)
		if name == "fern" {
			if err := d.Params().Set("points", 20000); err != nil {
				t.Fatal(err)
			}
		}
		img := image.NewRGBA(image.Rect(0, 0, 48, 48))
		if err := d.Render(ctx, img, fractal.WithWorkers(2)); err != nil {
			t.Errorf("%s: Render() = %v", name, err)
			continue
		}
		first := img.RGBAAt(0, 0)
		uniform := true
		for y := 0; y < 48 && uniform; y++ {
			for x := 0; x < 48; x++ {
				if img.RGBAAt(x, y) != first {
					uniform = false
					break
				}
			}
		}
		if uniform && varied[name] {
			t.Errorf("%s: rendered a uniform image", name)
		}
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for _, name := range []string{"mandelbrot", "lyapunov", "koch"} {
		d, _ := New(name)
		if err := d.Render(ctx, img); !errors.Is(err, context.Canceled) {
			t.Errorf("%s: Render(canceled) = %v, want context.Canceled", name, err)
		}
	}
}

func TestMandelbrotClickZoom(t *testing.T) {
	d := NewMandelbrot()
	d.Handle(control.Click(control.Left, 50, 50), image.Pt(100, 100))
	if w := d.rect.Width(); math.Abs(w-1.5) > 1e-12 {
		t.Errorf("width after zoom = %v, want 1.5", w)
	}
	if cx, _ := d.rect.Center(); math.Abs(cx+0.5) > 1e-12 {
		t.Errorf("center after zoom = %v, want -0.5", cx)
	}
	if d.iter != 120 {
		t.Errorf("iterations = %d, want 120", d.iter)
	}
	d.Handle(control.Click(control.Right, 0, 0), image.Pt(100, 100))
	if d.iter != 100 {
		t.Errorf("iterations after zoom out = %d, want 100", d.iter)
	}
}

func TestJuliaPick(t *testing.T) {
	d := NewJulia()
	d.Handle(control.Click(control.Left, 0, 0), image.Pt(100, 100))
	if d.C != complex(-2, -1.5) {
		t.Errorf("C = %v, want (-2-1.5i)", d.C)
	}
	d.Handle(control.Click(control.Right, 0, 0), image.Pt(100, 100))
	if d.C != escape.DefaultJuliaC {
		t.Errorf("C = %v after right click, want default", d.C)
	}
}

func TestLyapunovDemo(t *testing.T) {
	d := NewLyapunov()
	d.Handle(control.Click(control.Left, 50, 0), image.Pt(100, 100))
	if math.Abs(d.Range.Min-3.825) > 1e-12 || math.Abs(d.Range.Max-3.855) > 1e-12 {
		t.Errorf("Range = %+v, want [3.825, 3.855]", d.Range)
	}
	for i := range len(Patterns) {
		if err := lyapunov.ValidatePattern(d.Pattern); err != nil {
			t.Errorf("pattern %d: %v", i, err)
		}
		d.Handle(control.Press('p'), image.Pt(100, 100))
	}
	if d.Pattern != Patterns[0] {
		t.Errorf("patterns did not cycle back, got %q", d.Pattern)
	}
}

func TestLorenzKeys(t *testing.T) {
	d := NewLorenz()
	size := image.Pt(100, 100)
	d.Handle(control.Press(control.KeyUp), size)
	if d.Rho != 28.5 {
		t.Errorf("Rho = %v, want 28.5", d.Rho)
	}
	for range 100 {
		d.Handle(control.Press(control.KeyLeft), size)
	}
	if d.Sigma != 0.1 {
		t.Errorf("Sigma = %v, want clamped to 0.1", d.Sigma)
	}
	d.Handle(control.Press('+'), size)
	if math.Abs(d.DT-0.0055) > 1e-12 {
		t.Errorf("dt = %v, want 0.0055", d.DT)
	}
}

func TestChenLeeCamera(t *testing.T) {
	d := NewChenLee()
	size := image.Pt(100, 100)
	for range 100 {
		d.Handle(control.Scroll(0, 0, -1), size)
	}
	if z := d.Camera.Position[2]; z != 500 {
		t.Errorf("camera z = %v, want clamped to 500", z)
	}
	for range 20 {
		d.Handle(control.Press('e'), size)
	}
	if d.Camera.Scale != 1 {
		t.Errorf("scale = %v, want clamped to 1", d.Camera.Scale)
	}
	d.Handle(control.Click(control.Left, 0, 0), size)
	d.Handle(control.Event{Kind: control.Motion, X: 100, Y: 0}, size)
	if math.Abs(d.Camera.RotY-(-math.Pi+0.5)) > 1e-12 {
		t.Errorf("RotY = %v, want -π+0.5", d.Camera.RotY)
	}
}

func TestChenLeeHUDAddsCentroid(t *testing.T) {
	d := NewChenLee()
	d.Camera.Position = mgl64.Vec3{-10, -20, 90}
	d.centroid = mgl64.Vec3{12, 25, 30}
	if got, want := d.HUD()[2], "Cam (X:2, Y:5, Z:120)"; got != want {
		t.Errorf("HUD()[2] = %q, want %q", got, want)
	}
}

func TestDrawings(t *testing.T) {
	size := image.Pt(800, 800)
	tests := []struct {
		name  string
		setup func() Vector
		paths int
	}{
		{"koch depth 0", func() Vector { d := NewKoch(); d.Depth = 0; return d }, 1},
		{"vicsek depth 1", func() Vector { d := NewVicsek(); d.Depth = 1; return d }, 5},
		{"vicsek depth 2", func() Vector { d := NewVicsek(); d.Depth = 2; return d }, 25},
		{"hcurve depth 1", func() Vector { d := NewHCurve(); d.Depth = 1; return d }, 15},
		{"cantor 3", func() Vector { d := NewCantor(); d.Iterations = 3; return d }, 7},
		{"cantor 0", func() Vector { d := NewCantor(); d.Iterations = 0; return d }, 0},
	}
	for _, tt := range tests {
		dr, err := tt.setup().Drawing(size)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		n := 0
		for _, l := range dr.Layers {
			n += len(l.Paths)
		}
		if n != tt.paths {
			t.Errorf("%s: %d paths, want %d", tt.name, n, tt.paths)
		}
	}
}

func TestDragonFits(t *testing.T) {
	d := NewDragon()
	d.Iterations = 10
	dr, err := d.Drawing(image.Pt(200, 200))
	if err != nil {
		t.Fatal(err)
	}
	if got := dr.Segments(); got != 1<<10 {
		t.Errorf("segments = %d, want %d", got, 1<<10)
	}
	for _, p := range dr.Layers[0].Paths {
		for _, q := range p {
			if q.X < 0 || q.X > 200 || q.Y < 0 || q.Y > 200 {
				t.Fatalf("point %v outside the fitted image", q)
			}
		}
	}
}

func TestDragonKeepsLastWholeGeneration(t *testing.T) {
	d := NewDragon()
	for _, n := range []int{16, 17, 20} {
		d.Iterations = n
		segs, _ := d.walk()
		if len(segs) != 1<<16 {
			t.Errorf("iterations %d: %d segments, want %d", n, len(segs), 1<<16)
		}
	}
}

func TestPanZoomNearest(t *testing.T) {
	p := newPanZoom(view.Window{Scale: 1}, 1.1)
	size := image.Pt(100, 100)
	tests := []struct {
		x, y           float64
		nx, ny, tx, ty float64
	}{
		{0.6, -0.6, 51, 49, 50, 49},
		{0.4, 0.5, 50, 51, 50, 50},
		{-0.5, 0, 50, 50, 49, 50},
	}
	for _, tt := range tests {
		if x, y := p.nearest(tt.x, tt.y, size); x != tt.nx || y != tt.ny {
			t.Errorf("nearest(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.nx, tt.ny)
		}
		if x, y := p.pixel(tt.x, tt.y, size); x != tt.tx || y != tt.ty {
			t.Errorf("pixel(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.tx, tt.ty)
		}
	}
}

func TestSeries(t *testing.T) {
	lorenz := NewLorenz()
	lorenz.Points = 2000
	aizawa := NewAizawa()
	aizawa.Points, aizawa.Skip = 3000, 1000
	chen := NewChenLee()
	chen.Points, chen.Skip = 3000, 500
	lyap := NewLyapunov()
	lyap.N = 200

	for _, s := range []Series{lorenz, aizawa, chen, lyap} {
		v, caption, err := s.Series(50)
		if err != nil {
			t.Errorf("%s: Series() = %v", s.Name(), err)
			continue
		}
		if len(v) != 50 || caption == "" {
			t.Errorf("%s: Series() = %d values, caption %q", s.Name(), len(v), caption)
		}
		for _, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				t.Errorf("%s: non-finite sample %v", s.Name(), x)
				break
			}
		}
		if _, _, err := s.Series(0); !errors.Is(err, ErrSamples) {
			t.Errorf("%s: Series(0) error = %v, want ErrSamples", s.Name(), err)
		}
	}
}
