// Package camera projects 3D points onto the screen.
//
// [Orbit] is a rotate-then-weak-perspective camera for attractors;
// [Pipeline] is a full 4×4 model-view-projection transform with near/far
// clipping.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/fractal/geom"
)

// Orbit looks at a point cloud after recentering it on a pivot.
//
// A point p is moved by −pivot and −Position, rotated about X by RotX and
// then about Y by RotY, and scaled by Scale·f with f = 1/(1 + z/Focal)
// clamped to ±100.
type Orbit struct {
	Position   mgl64.Vec3
	RotX, RotY float64
	Scale      float64
	Focal      float64
}

// Rotate applies the X then Y rotations.
func (o Orbit) Rotate(p mgl64.Vec3) mgl64.Vec3 {
	sx, cx := math.Sincos(o.RotX)
	y := p[1]*cx - p[2]*sx
	z := p[1]*sx + p[2]*cx
	p[1], p[2] = y, z

	sy, cy := math.Sincos(o.RotY)
	x := p[0]*cy + p[2]*sy
	z = -p[0]*sy + p[2]*cy
	p[0], p[2] = x, z
	return p
}

// Perspective returns the clamped weak-perspective factor for depth z.
func (o Orbit) Perspective(z float64) float64 {
	d := 1 + z/o.Focal
	var f float64
	if math.Abs(d) < 0.001 {
		f = 1000
		if d < 0 {
			f = -1000
		}
	} else {
		f = 1 / d
	}
	return math.Max(-100, math.Min(100, f))
}

// Project maps p to pixels of a w×h image centered on the image. ok is
// false when the result is not finite.
func (o Orbit) Project(p, pivot mgl64.Vec3, w, h int) (pt geom.Point, ok bool) {
	q := o.Rotate(p.Sub(pivot).Sub(o.Position))
	f := o.Perspective(q[2])
	pt = geom.Point{
		X: q[0]*o.Scale*f + float64(w)/2,
		Y: q[1]*o.Scale*f + float64(h)/2,
	}
	if math.IsNaN(pt.X) || math.IsInf(pt.X, 0) || math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
		return pt, false
	}
	return pt, true
}

// InBounds reports whether pt lies within ±k·(w, h), the drawable margin.
func InBounds(pt geom.Point, w, h int, k float64) bool {
	fw, fh := float64(w)*k, float64(h)*k
	return pt.X >= -fw && pt.X <= fw && pt.Y >= -fh && pt.Y <= fh
}
