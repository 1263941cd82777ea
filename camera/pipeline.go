package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/fractal/geom"
)

// Lens describes a perspective projection with a left-handed depth range
// mapped to [0, 1].
type Lens struct {
	FOV       float64 // vertical field of view, degrees
	Near, Far float64
}

// DefaultLens is a 90° lens clipping at 0.1 and 1000.
var DefaultLens = Lens{FOV: 90, Near: 0.1, Far: 1000}

// Matrix builds the projection for a w×h viewport. The x scale is
// multiplied by the aspect ratio w/h and clip w is the view-space z.
func (l Lens) Matrix(w, h int) mgl64.Mat4 {
	aspect := float64(w) / float64(h)
	f := 1 / math.Tan(l.FOV*0.5/180*math.Pi)
	var m mgl64.Mat4
	m.Set(0, 0, aspect*f)
	m.Set(1, 1, f)
	m.Set(2, 2, l.Far/(l.Far-l.Near))
	m.Set(2, 3, -l.Far*l.Near/(l.Far-l.Near))
	m.Set(3, 2, 1)
	return m
}

// Pose positions the model: rotations about X, Y and Z (radians) and the
// camera translation applied after them.
type Pose struct {
	Translate        mgl64.Vec3
	RotX, RotY, RotZ float64
}

// Rotation returns Rx·Ry·Rz. Each factor turns by −angle about its axis.
func (p Pose) Rotation() mgl64.Mat4 {
	rx := mgl64.HomogRotate3DX(-p.RotX)
	ry := mgl64.HomogRotate3DY(-p.RotY)
	rz := mgl64.HomogRotate3DZ(-p.RotZ)
	return rx.Mul4(ry.Mul4(rz))
}

// Pipeline is a precomputed projection·translation·rotation transform for
// one viewport size.
type Pipeline struct {
	M    mgl64.Mat4
	W, H int
}

// NewPipeline builds the transform for a w×h viewport.
func NewPipeline(l Lens, p Pose, w, h int) Pipeline {
	t := mgl64.Translate3D(p.Translate[0], p.Translate[1], p.Translate[2])
	return Pipeline{M: l.Matrix(w, h).Mul4(t).Mul4(p.Rotation()), W: w, H: h}
}

// Project maps v to pixels. ok is false when v falls outside the depth
// range [0, 1] or lands more than one viewport beyond the screen.
func (pl Pipeline) Project(v mgl64.Vec3) (pt geom.Point, ok bool) {
	c := pl.M.Mul4x1(v.Vec4(1))
	w := c[3]
	if w == 0 {
		w = 1
	}
	x, y, z := c[0]/w, c[1]/w, c[2]/w
	if z < 0 || z > 1 {
		return pt, false
	}
	hw, hh := float64(pl.W)/2, float64(pl.H)/2
	pt = geom.Point{X: math.Trunc(x*hw + hw), Y: math.Trunc(-y*hh + hh)}
	fw, fh := float64(pl.W), float64(pl.H)
	if pt.X < -fw || pt.X > 2*fw || pt.Y < -fh || pt.Y > 2*fh {
		return pt, false
	}
	return pt, true
}

// Segment projects both ends of a 3D line; ok only if both are visible.
func (pl Pipeline) Segment(a, b mgl64.Vec3) (geom.Segment, bool) {
	pa, oka := pl.Project(a)
	pb, okb := pl.Project(b)
	return geom.Segment{A: pa, B: pb}, oka && okb
}
