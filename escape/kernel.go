// Package escape implements escape-time fractal kernels and a row-parallel
// renderer for them.
//
// A kernel iterates a single complex point until it escapes a bailout
// radius, converges, or hits the iteration limit. The renderer evaluates a
// kernel for every pixel of an image through a view.Mapper and a ColorFunc.
package escape

import (
	"image/color"
	"math"
	"math/cmplx"
)

// Result is the outcome of iterating one point.
type Result struct {
	// Iterations performed. Equals the limit for points that never escaped.
	Iterations int
	// Z is the last iterate, used for smooth coloring.
	Z complex128
	// Root is the index of the attractor a Newton iteration converged to,
	// or -1.
	Root int
}

// Kernel iterates a pixel's point p for at most max steps.
type Kernel interface {
	Iterate(p complex128, max int) Result
}

// ColorFunc maps a result to a pixel color.
type ColorFunc func(r Result, max int) color.RGBA

// Mandelbrot iterates z ← z² + p from z = 0 while |z|² < 4.
type Mandelbrot struct{}

// Iterate implements Kernel.
func (Mandelbrot) Iterate(p complex128, max int) Result {
	cr, ci := real(p), imag(p)
	var zr, zi float64
	n := 0
	for zr*zr+zi*zi < 4 && n < max {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		n++
	}
	return Result{Iterations: n, Z: complex(zr, zi), Root: -1}
}

// Julia iterates z ← z² + C from z = p while |z| < 2.
type Julia struct {
	C complex128
}

// DefaultJuliaC is the classic dendrite-spiral constant.
const DefaultJuliaC = complex(-0.7, 0.27015)

// Iterate implements Kernel.
func (k Julia) Iterate(p complex128, max int) Result {
	z := p
	n := 0
	for cmplx.Abs(z) < 2 && n < max {
		z = z*z + k.C
		n++
	}
	return Result{Iterations: n, Z: z, Root: -1}
}

// BurningShip iterates z ← (|Re z| + i|Im z|)² + p from z = 0.
type BurningShip struct{}

// Iterate implements Kernel.
func (BurningShip) Iterate(p complex128, max int) Result {
	cr, ci := real(p), imag(p)
	var zr, zi float64
	n := 0
	for zr*zr+zi*zi < 4 && n < max {
		ar, ai := math.Abs(zr), math.Abs(zi)
		zr, zi = ar*ar-ai*ai+cr, 2*ar*ai+ci
		n++
	}
	return Result{Iterations: n, Z: complex(zr, zi), Root: -1}
}

// Tricorn iterates z ← conj(z)² + p from z = 0. The bailout |z|² > 4 is
// tested before each step.
type Tricorn struct{}

// Iterate implements Kernel.
func (Tricorn) Iterate(p complex128, max int) Result {
	cr, ci := real(p), imag(p)
	var zr, zi float64
	n := 0
	for n < max {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > 4 {
			break
		}
		zr, zi = zr2-zi2+cr, -2*zr*zi+ci
		n++
	}
	return Result{Iterations: n, Z: complex(zr, zi), Root: -1}
}

// Phoenix iterates z ← z² + C + P·z₋₁ from z = p, z₋₁ = 0 while |z| < 2.
type Phoenix struct {
	C, P complex128
}

// Iterate implements Kernel.
func (k Phoenix) Iterate(p complex128, max int) Result {
	z, prev := p, complex128(0)
	n := 0
	for cmplx.Abs(z) < 2 && n < max {
		z, prev = z*z+k.C+k.P*prev, z
		n++
	}
	return Result{Iterations: n, Z: z, Root: -1}
}

// Biomorph iterates z ← z⁵ + C from z = p while |z| < 2.
//
// With Pickover set, an escaped point whose final |Re z| or |Im z| is below
// the bailout is reported as not escaped, producing Pickover's organism-like
// shapes.
type Biomorph struct {
	C        complex128
	Pickover bool
}

// Iterate implements Kernel.
func (k Biomorph) Iterate(p complex128, max int) Result {
	z := p
	n := 0
	for cmplx.Abs(z) < 2 && n < max {
		z2 := z * z
		z = z2*z2*z + k.C
		n++
	}
	if k.Pickover && n < max && (math.Abs(real(z)) < 2 || math.Abs(imag(z)) < 2) {
		n = max
	}
	return Result{Iterations: n, Z: z, Root: -1}
}

// CubeRoots are the solutions of z³ = 1.
var CubeRoots = [3]complex128{
	1,
	complex(-0.5, math.Sqrt(3)/2),
	complex(-0.5, -math.Sqrt(3)/2),
}

// Newton applies Newton-Raphson to f(z) = z³ − 1 from z = p.
// Iteration stops when z is within Tolerance of a root, when |f'(z)| drops
// below MinDerivative, or at the limit.
type Newton struct {
	Tolerance     float64
	MinDerivative float64
}

// DefaultNewton uses a 1e-4 convergence radius and a 1e-6 derivative floor.
var DefaultNewton = Newton{Tolerance: 1e-4, MinDerivative: 1e-6}

// Iterate implements Kernel.
func (k Newton) Iterate(p complex128, max int) Result {
	z := p
	n := 0
	for n < max {
		d := 3 * z * z
		if cmplx.Abs(d) < k.MinDerivative {
			break
		}
		z -= (z*z*z - 1) / d
		n++
		for i, root := range CubeRoots {
			if cmplx.Abs(z-root) < k.Tolerance {
				return Result{Iterations: n, Z: z, Root: i}
			}
		}
	}
	return Result{Iterations: n, Z: z, Root: -1}
}
