package demo

import (
	"image"
	"math"

	"github.com/gogpu/fractal/control"
	"github.com/gogpu/fractal/view"
)

// panZoom is a center+scale view moved by a left drag and zoomed by the
// wheel about the cursor.
//
// When fit is set the home view depends on the image size: it is computed
// on first use and again after every reset.
type panZoom struct {
	view, home view.Window
	factor     float64
	drag       control.Drag

	fit    func(size image.Point) view.Window
	fitted bool
}

func newPanZoom(home view.Window, factor float64) panZoom {
	return panZoom{view: home, home: home, factor: factor, drag: control.Drag{Button: control.Left}}
}

func newFitted(fit func(image.Point) view.Window, factor float64) panZoom {
	return panZoom{fit: fit, factor: factor, drag: control.Drag{Button: control.Left}}
}

func (p *panZoom) reset() {
	if p.fit != nil {
		p.view, p.home, p.fitted = view.Window{}, view.Window{}, false
		return
	}
	p.view = p.home
}

// ensure fits a size-dependent view the first time it is needed.
func (p *panZoom) ensure(size image.Point) {
	if p.fit == nil || p.fitted {
		return
	}
	p.home = p.fit(size)
	p.view, p.fitted = p.home, true
}

func (p *panZoom) handle(e control.Event, size image.Point) bool {
	p.ensure(size)
	if e.Kind == control.Wheel {
		switch {
		case e.WheelY > 0:
			p.view = p.view.ZoomAt(e.X, e.Y, size.X, size.Y, p.factor)
		case e.WheelY < 0:
			p.view = p.view.ZoomAt(e.X, e.Y, size.X, size.Y, 1/p.factor)
		default:
			return false
		}
		return true
	}
	dx, dy, ok := p.drag.Update(e)
	if ok {
		p.view = p.view.Pan(dx, dy)
	}
	return ok
}

// pixel maps world (x, y) to whole pixels, truncating like an integer
// raster would.
func (p *panZoom) pixel(x, y float64, size image.Point) (float64, float64) {
	px, py := p.view.ToPixel(x, y, size.X, size.Y)
	return float64(int(px)), float64(int(py))
}

// nearest maps world (x, y) to the closest whole pixel.
func (p *panZoom) nearest(x, y float64, size image.Point) (float64, float64) {
	px, py := p.view.ToPixel(x, y, size.X, size.Y)
	return math.Round(px), math.Round(py)
}
