package main

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"

	"github.com/gogpu/fractal/demo"
)

const (
	plotWidth  = 70
	plotHeight = 15
)

// plot draws a terminal graph of the demo's one-dimensional summary:
// x(t) for attractors, the exponent along the diagonal for Lyapunov.
func plot(w io.Writer, d demo.Demo) error {
	s, ok := d.(demo.Series)
	if !ok {
		return fmt.Errorf("%s cannot be plotted (try lorenz, aizawa, chen-lee or lyapunov)", d.Name())
	}
	values, caption, err := s.Series(plotWidth)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("%s: nothing to plot", d.Name())
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption))
	_, err = fmt.Fprintln(w, graph)
	return err
}
