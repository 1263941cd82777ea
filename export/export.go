// Package export writes rendered frames to disk.
//
// Raster frames are encoded as PNG, BMP or JPEG. Line-art drawings can also
// be written as SVG, keeping their paths resolution independent.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/bmp"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/geom"
)

// ErrFormat is returned for unknown or unsupported output formats.
var ErrFormat = errors.New("export: unsupported format")

// Format is an output file format.
type Format int

// Supported formats.
const (
	PNG Format = iota
	BMP
	JPEG
	SVG
)

var names = [...]string{PNG: "png", BMP: "bmp", JPEG: "jpeg", SVG: "svg"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(names) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return names[f]
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	if f == JPEG {
		return ".jpg"
	}
	return "." + f.String()
}

// Vector reports whether f needs a drawing rather than pixels.
func (f Format) Vector() bool { return f == SVG }

// ParseFormat parses a format name such as "png" or "jpg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "svg":
		return SVG, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, s)
}

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// WithExt replaces the extension of name with the one for f.
func WithExt(name string, f Format) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + f.Ext()
}

// Encode writes img to w in a raster format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	}
	return fmt.Errorf("%w: %v is not a raster format", ErrFormat, f)
}

// EncodeSVG writes d to w as an SVG document.
func EncodeSVG(w io.Writer, d *geom.Drawing) error {
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Start(d.Width, d.Height)
	s.Rect(0, 0, d.Width, d.Height, s.RGB(int(d.Background.R), int(d.Background.G), int(d.Background.B)))
	for _, l := range d.Layers {
		if len(l.Paths) == 0 {
			continue
		}
		s.Gstyle(layerStyle(l))
		for _, p := range l.Paths {
			if len(p) < 2 {
				continue
			}
			xs, ys := coords(p)
			if l.Fill {
				s.Polygon(xs, ys)
			} else {
				s.Polyline(xs, ys)
			}
		}
		s.Gend()
	}
	s.End()
	return ew.err
}

func layerStyle(l geom.Layer) string {
	c := rgb(l.Color)
	if l.Fill {
		return "fill:" + c + ";stroke:none"
	}
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", c, math.Max(l.Width, 1))
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func coords(p []geom.Point) (xs, ys []int) {
	xs, ys = make([]int, len(p)), make([]int, len(p))
	for i, q := range p {
		xs[i], ys[i] = int(math.Round(q.X)), int(math.Round(q.Y))
	}
	return xs, ys
}

// errWriter keeps the first write error; svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Save writes img to path in the format given by its extension.
func Save(path string, img image.Image) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	return SaveAs(path, img, f)
}

// SaveAs writes img to path in format f, whatever the extension.
func SaveAs(path string, img image.Image, f Format) error {
	if f.Vector() {
		return fmt.Errorf("%w: %v is not a raster format", ErrFormat, f)
	}
	return create(path, func(w io.Writer) error { return Encode(w, img, f) })
}

// SaveSVG writes d to path as SVG.
func SaveSVG(path string, d *geom.Drawing) error {
	return create(path, func(w io.Writer) error { return EncodeSVG(w, d) })
}

func create(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	fractal.Logger().Info("export: saved", "path", path)
	return nil
}
