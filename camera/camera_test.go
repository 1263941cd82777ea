package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestOrbit_IdentityProjectsToCenter(t *testing.T) {
	o := Orbit{Scale: 10, Focal: 300}
	pt, ok := o.Project(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{}, 800, 800)
	if !ok || pt.X != 400 || pt.Y != 400 {
		t.Errorf("Project(origin) = %v, %v, want (400,400) true", pt, ok)
	}
	pt, _ = o.Project(mgl64.Vec3{1, 2, 0}, mgl64.Vec3{}, 800, 800)
	if pt.X != 410 || pt.Y != 420 {
		t.Errorf("Project(1,2,0) = %v, want (410,420)", pt)
	}
}

func TestOrbit_PivotAndPosition(t *testing.T) {
	o := Orbit{Position: mgl64.Vec3{1, 0, 0}, Scale: 1, Focal: 300}
	pivot := mgl64.Vec3{5, 5, 0}
	pt, _ := o.Project(mgl64.Vec3{6, 5, 0}, pivot, 100, 100)
	if pt.X != 50 || pt.Y != 50 {
		t.Errorf("point at pivot+position should land on center, got %v", pt)
	}
}

func TestOrbit_Perspective(t *testing.T) {
	o := Orbit{Focal: 300}
	tests := []struct {
		z, want float64
	}{
		{0, 1},
		{300, 0.5},
		{-150, 2},
		{-299.9, 100}, // near-zero denominator saturates
		{-300, 100},
		{-600, -1},
	}
	for _, tt := range tests {
		if got := o.Perspective(tt.z); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Perspective(%v) = %v, want %v", tt.z, got, tt.want)
		}
	}
}

func TestOrbit_RotatePi(t *testing.T) {
	o := Orbit{RotX: math.Pi}
	p := o.Rotate(mgl64.Vec3{1, 2, 3})
	want := mgl64.Vec3{1, -2, -3}
	if !p.ApproxEqualThreshold(want, 1e-12) {
		t.Errorf("Rotate = %v, want %v", p, want)
	}
}

func TestLens_Matrix(t *testing.T) {
	m := DefaultLens.Matrix(800, 400)
	if got := m.At(0, 0); math.Abs(got-2) > 1e-12 {
		t.Errorf("m00 = %v, want 2 (aspect 2 × f 1)", got)
	}
	if got := m.At(1, 1); math.Abs(got-1) > 1e-12 {
		t.Errorf("m11 = %v, want 1", got)
	}
	if m.At(3, 2) != 1 || m.At(3, 3) != 0 {
		t.Errorf("clip w row = %v %v, want 1 0", m.At(3, 2), m.At(3, 3))
	}
}

func TestPipeline_Project(t *testing.T) {
	pl := NewPipeline(DefaultLens, Pose{Translate: mgl64.Vec3{0, 0, 300}}, 800, 800)

	pt, ok := pl.Project(mgl64.Vec3{0, 0, 0})
	if !ok || pt.X != 400 || pt.Y != 400 {
		t.Errorf("origin = %v, %v, want (400,400) visible", pt, ok)
	}

	// +y is up on screen.
	up, _ := pl.Project(mgl64.Vec3{0, 75, 0})
	if up.Y >= 400 {
		t.Errorf("+y projected to %v, want above center", up)
	}
	// Behind the camera.
	if _, ok := pl.Project(mgl64.Vec3{0, 0, -400}); ok {
		t.Error("point behind the camera should be culled")
	}
	// Beyond the far plane.
	if _, ok := pl.Project(mgl64.Vec3{0, 0, 800}); ok {
		t.Error("point past the far plane should be culled")
	}
}

func TestPose_Rotation(t *testing.T) {
	r := Pose{RotZ: math.Pi / 2}.Rotation()
	v := r.Mul4x1(mgl64.Vec4{1, 0, 0, 1})
	// Rz(−π/2) turns +x to −y.
	if !v.ApproxEqualThreshold(mgl64.Vec4{0, -1, 0, 1}, 1e-12) {
		t.Errorf("rotated = %v, want [0 -1 0 1]", v)
	}
}
