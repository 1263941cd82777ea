package demo

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/camera"
	"github.com/gogpu/fractal/control"
	"github.com/gogpu/fractal/geom"
	"github.com/gogpu/fractal/param"
)

// H-curve limits.
const (
	HCurveLength   = 150
	HCurveMaxDepth = 6
)

var hcurveHome = camera.Pose{Translate: mgl64.Vec3{0, 0, 300}}

// HCurve is a 3D H-curve seen through a perspective camera. The model is
// rotated by dragging and the camera moved with the keyboard and wheel.
type HCurve struct {
	info
	Pose  camera.Pose
	Depth int
	drag  control.Drag

	built int
	lines []geom.Line3
}

// NewHCurve returns the depth-4 curve 300 units in front of the camera.
func NewHCurve() *HCurve {
	return &HCurve{
		info: info{
			name: "hcurve", title: "3D H-Curve Fractal",
			shot: "h_curve_3d_screenshot.bmp",
			help: []string{
				"Left Drag: Rotate, Wheel: Zoom Z",
				"W/S: Z, A/D: X, Q/E: Y, +/-: Depth, R: Reset",
			},
		},
		Pose:  hcurveHome,
		Depth: 4,
		drag:  control.Drag{Button: control.Left},
		built: -1,
	}
}

// Render implements Demo.
func (d *HCurve) Render(ctx context.Context, dst *image.RGBA, _ ...fractal.RenderOption) error {
	return vectorRender(ctx, d, dst)
}

// Drawing implements Vector.
func (d *HCurve) Drawing(size image.Point) (*geom.Drawing, error) {
	if d.built != d.Depth {
		d.lines = geom.HCurve(d.lines[:0], mgl64.Vec3{}, HCurveLength, d.Depth)
		d.built = d.Depth
	}
	pl := camera.NewPipeline(camera.DefaultLens, d.Pose, size.X, size.Y)
	paths := make([][]geom.Point, 0, len(d.lines))
	for _, l := range d.lines {
		if s, ok := pl.Segment(l.A, l.B); ok {
			paths = append(paths, []geom.Point{s.A, s.B})
		}
	}
	return &geom.Drawing{
		Width: size.X, Height: size.Y, Background: black,
		Layers: []geom.Layer{{Color: color.RGBA{0, 255, 0, 255}, Width: 1, Paths: paths}},
	}, nil
}

// Handle moves and rotates the camera and changes the depth.
func (d *HCurve) Handle(e control.Event, _ image.Point) bool {
	t := &d.Pose.Translate
	switch e.Kind {
	case control.KeyPress:
		switch e.Key {
		case 'r':
			d.Reset()
		case 'w':
			t[2] -= 10
		case 's':
			t[2] += 10
		case 'a':
			t[0] -= 10
		case 'd':
			t[0] += 10
		case 'q':
			t[1] += 10
		case 'e':
			t[1] -= 10
		case '+', '=':
			return d.Params().Step("depth", 1)
		case '-':
			return d.Params().Step("depth", -1)
		default:
			return false
		}
		return true
	case control.Wheel:
		switch {
		case e.WheelY > 0:
			t[2] -= 10
		case e.WheelY < 0:
			t[2] += 10
		default:
			return false
		}
		return true
	}
	dx, dy, ok := d.drag.Update(e)
	if ok {
		d.Pose.RotY += dx * 0.01
		d.Pose.RotX += dy * 0.01
	}
	return ok
}

// Reset implements Demo.
func (d *HCurve) Reset() {
	d.Pose, d.Depth = hcurveHome, 4
}

// HUD implements Demo.
func (d *HCurve) HUD() []string {
	t := d.Pose.Translate
	return []string{
		fmt.Sprintf("Depth: %d", d.Depth),
		fmt.Sprintf("Cam Pos: (%.0f, %.0f, %.0f)", t[0], t[1], t[2]),
		fmt.Sprintf("Cam Rot: (X:%.1f, Y:%.1f)", d.Pose.RotX, d.Pose.RotY),
	}
}

// Params implements Demo.
func (d *HCurve) Params() param.Set {
	return param.Set{
		param.Int("depth", &d.Depth, 0, HCurveMaxDepth),
		param.Float("cam_x", &d.Pose.Translate[0], -1e4, 1e4),
		param.Float("cam_y", &d.Pose.Translate[1], -1e4, 1e4),
		param.Float("cam_z", &d.Pose.Translate[2], -1e4, 1e4),
		param.Float("rot_x", &d.Pose.RotX, -1e3, 1e3),
		param.Float("rot_y", &d.Pose.RotY, -1e3, 1e3),
		param.Float("rot_z", &d.Pose.RotZ, -1e3, 1e3),
	}
}

// State implements Demo.
func (d *HCurve) State() string { return fmt.Sprintf("%s|%d|%+v", d.name, d.Depth, d.Pose) }
