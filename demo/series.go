package demo

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/fractal/lyapunov"
)

// ErrSamples is returned by Series for a non-positive sample count.
var ErrSamples = errors.New("demo: sample count must be positive")

// Series is implemented by demos that can summarize their current state as
// a one-dimensional signal, for plotting in a terminal.
type Series interface {
	Demo
	Series(n int) (values []float64, caption string, err error)
}

// sampleX returns n evenly spaced x coordinates from pts[skip:].
func sampleX(pts []mgl64.Vec3, skip, n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrSamples
	}
	pts = pts[min(skip, len(pts)):]
	if len(pts) == 0 {
		return nil, nil
	}
	n = min(n, len(pts))
	out := make([]float64, n)
	for i := range out {
		out[i] = pts[i*len(pts)/n][0]
	}
	return out, nil
}

// Series samples x(t) along the trajectory.
func (d *Lorenz) Series(n int) ([]float64, string, error) {
	pts, err := d.points()
	if err != nil {
		return nil, "", err
	}
	v, err := sampleX(pts, 0, n)
	return v, fmt.Sprintf("Lorenz x(t)  sigma=%.1f rho=%.1f beta=%.3f", d.Sigma, d.Rho, d.Beta), err
}

// Series samples x(t) after the transient is skipped.
func (d *Aizawa) Series(n int) ([]float64, string, error) {
	pts, err := d.points()
	if err != nil {
		return nil, "", err
	}
	v, err := sampleX(pts, d.Skip, n)
	return v, fmt.Sprintf("Aizawa x(t)  a=%.2f b=%.2f", d.A, d.B), err
}

// Series samples x(t) after the transient is skipped.
func (d *ChenLee) Series(n int) ([]float64, string, error) {
	pts, err := d.points()
	if err != nil {
		return nil, "", err
	}
	v, err := sampleX(pts, d.Skip, n)
	return v, fmt.Sprintf("Chen-Lee x(t)  a=%.2f b=%.2f c=%.2f", d.A, d.B, d.C), err
}

// Series samples the exponent along the diagonal ra = rb.
func (d *Lyapunov) Series(n int) ([]float64, string, error) {
	if n <= 0 {
		return nil, "", ErrSamples
	}
	v, err := lyapunov.Diagonal(d.Range, d.Pattern, d.N, n)
	if err != nil {
		return nil, "", err
	}
	return v, fmt.Sprintf("Lyapunov λ on ra = rb in [%.4f, %.4f], pattern %s", d.Range.Min, d.Range.Max, d.Pattern), nil
}
