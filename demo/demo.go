// Package demo holds the interactive fractal and attractor demos.
//
// Every demo owns its view and parameters, renders into an *image.RGBA of
// any size, and reacts to [control.Event] input. Frontends never look inside
// a demo: they render, overlay [Demo.HUD], and forward events, redrawing
// whenever Handle reports a change.
//
// Demos are created through the registry:
//
//	d, err := demo.New("mandelbrot")
//	img := image.NewRGBA(image.Rect(0, 0, 800, 800))
//	err = d.Render(ctx, img)
package demo

import (
	"context"
	"image"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/control"
	"github.com/gogpu/fractal/geom"
	"github.com/gogpu/fractal/param"
)

// Demo is a single interactive visualization.
type Demo interface {
	// Name is the registry key, e.g. "burning-ship".
	Name() string
	// Title is the human-readable window title.
	Title() string
	// Size is the preferred image size.
	Size() image.Point

	// Render draws the current state into dst.
	Render(ctx context.Context, dst *image.RGBA, opts ...fractal.RenderOption) error
	// Handle applies an input event for an image of the given size and
	// reports whether the state changed.
	Handle(e control.Event, size image.Point) bool
	// Reset restores the initial view and parameters.
	Reset()

	// HUD returns the status lines shown in the top-left corner.
	HUD() []string
	// Help returns the control hints shown at the bottom.
	Help() []string
	// Params exposes the settable parameters.
	Params() param.Set
	// Screenshot is the default file name for saved frames.
	Screenshot() string
	// State fingerprints everything Render depends on except the size.
	State() string
}

// Vector is implemented by line-art demos that can describe a frame as
// resolution-specific vector paths, for SVG export.
type Vector interface {
	Demo
	Drawing(size image.Point) (*geom.Drawing, error)
}

// info carries the descriptive fields every demo shares.
type info struct {
	name, title, shot string
	size              image.Point
	help              []string
}

// Name implements Demo.
func (i info) Name() string { return i.name }

// Title implements Demo.
func (i info) Title() string { return i.title }

// Screenshot implements Demo.
func (i info) Screenshot() string { return i.shot }

// Help implements Demo.
func (i info) Help() []string { return i.help }

// Size implements Demo.
func (i info) Size() image.Point {
	if i.size == (image.Point{}) {
		return image.Pt(800, 800)
	}
	return i.size
}
