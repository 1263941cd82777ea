package demo

import (
	"context"
	"image"
	"image/color"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/gg"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/geom"
)

// paint rasterizes d with gg and copies the result into dst.
func paint(ctx context.Context, dst *image.RGBA, d *geom.Drawing) error {
	start := time.Now()
	b := dst.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(d.Background))
	for _, l := range d.Layers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(l.Paths) == 0 {
			continue
		}
		dc.SetColor(l.Color)
		dc.SetLineWidth(max(l.Width, 1))
		for _, p := range l.Paths {
			if len(p) < 2 {
				continue
			}
			dc.MoveTo(p[0].X, p[0].Y)
			for _, q := range p[1:] {
				dc.LineTo(q.X, q.Y)
			}
			if l.Fill {
				dc.ClosePath()
			}
		}
		var err error
		if l.Fill {
			err = dc.Fill()
		} else {
			err = dc.Stroke()
		}
		if err != nil {
			return err
		}
	}
	draw.Draw(dst, b, dc.Image(), image.Point{}, draw.Src)

	fractal.Logger().Debug("demo: painted",
		"segments", d.Segments(), "size", b.Size(), "elapsed", time.Since(start))
	return nil
}

// fill sets every pixel of dst to c.
func fill(dst *image.RGBA, c color.RGBA) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// vectorRender is the Render implementation shared by Vector demos.
func vectorRender(ctx context.Context, v Vector, dst *image.RGBA) error {
	d, err := v.Drawing(dst.Bounds().Size())
	if err != nil {
		return err
	}
	return paint(ctx, dst, d)
}
