package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/demo"
	"github.com/gogpu/fractal/export"
	"github.com/gogpu/fractal/hud"
	"github.com/gogpu/fractal/param"
)

// newDemo creates the named demo with the -set assignments applied.
func (c *config) newDemo(name string) (demo.Demo, error) {
	d, err := demo.New(name)
	if err != nil {
		return nil, err
	}
	ps := d.Params()
	for _, a := range c.sets {
		err := ps.Parse(a)
		if c.all != "" && errors.Is(err, param.ErrUnknown) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return d, nil
}

func (c *config) size(d demo.Demo) image.Point {
	s := d.Size()
	if c.width > 0 {
		s.X = c.width
	}
	if c.height > 0 {
		s.Y = c.height
	}
	return s
}

// resolve picks the output path and format. An explicit -format wins over
// the extension of -o; without either the demo's screenshot name is used.
func (c *config) resolve(d demo.Demo, output string) (string, export.Format, error) {
	if c.format != "" {
		f, err := export.ParseFormat(c.format)
		if err != nil {
			return "", 0, err
		}
		if output == "" {
			output = export.WithExt(d.Screenshot(), f)
		}
		return output, f, nil
	}
	if output == "" {
		output = d.Screenshot()
	}
	f, err := export.FormatOf(output)
	return output, f, err
}

// renderOne renders d to output. With fallback set, a raster-only demo
// asked for SVG is written as PNG instead.
func renderOne(ctx context.Context, c *config, d demo.Demo, output string, fallback bool) (string, error) {
	path, f, err := c.resolve(d, output)
	if err != nil {
		return "", err
	}
	size := c.size(d)
	start := time.Now()

	if f.Vector() {
		v, ok := d.(demo.Vector)
		switch {
		case ok:
			dr, err := v.Drawing(size)
			if err != nil {
				return "", err
			}
			return path, export.SaveSVG(path, dr)
		case !fallback:
			return "", fmt.Errorf("%w: %s has no vector form", export.ErrFormat, d.Name())
		}
		f, path = export.PNG, export.WithExt(path, export.PNG)
	}

	var opts []fractal.RenderOption
	if c.workers > 0 {
		opts = append(opts, fractal.WithWorkers(c.workers))
	}
	img := image.NewRGBA(image.Rectangle{Max: size})
	if err := d.Render(ctx, img, opts...); err != nil {
		return "", fmt.Errorf("%s: %w", d.Name(), err)
	}
	if c.hud {
		o, err := c.overlay()
		if err != nil {
			return "", err
		}
		if err := o.Draw(img, d.HUD(), nil); err != nil {
			return "", err
		}
	}
	if err := export.SaveAs(path, img, f); err != nil {
		return "", err
	}
	fractal.Logger().Debug("fractal: rendered", "demo", d.Name(), "size", size, "elapsed", time.Since(start))
	return path, nil
}

func (c *config) overlay() (*hud.Overlay, error) {
	opts := []hud.Option{hud.WithButton(false)}
	if c.font != "" {
		face, err := hud.LoadFace(c.font, 14)
		if err != nil {
			return nil, err
		}
		opts = append(opts, hud.WithFace(face))
	}
	return hud.New(opts...), nil
}

// renderAll writes every registered demo into c.all, c.jobs at a time.
func renderAll(ctx context.Context, c *config, stdout io.Writer) error {
	if c.output != "" {
		return errors.New("-o cannot be combined with -all")
	}
	if err := os.MkdirAll(c.all, 0o755); err != nil {
		return err
	}
	names := demo.Available()
	paths := make([]string, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.jobs, 1))
	for i, name := range names {
		g.Go(func() error {
			d, err := c.newDemo(name)
			if err != nil {
				return err
			}
			out := ""
			if c.format == "" {
				out = filepath.Join(c.all, d.Screenshot())
			} else if f, err := export.ParseFormat(c.format); err == nil {
				out = filepath.Join(c.all, export.WithExt(d.Screenshot(), f))
			}
			paths[i], err = renderOne(ctx, c, d, out, true)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(stdout, "Saved", p)
	}
	return nil
}
