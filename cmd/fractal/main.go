// Command fractal renders the fractal and attractor demos to image files.
//
// Usage:
//
//	fractal -demo mandelbrot -o mandelbrot.png
//	fractal -demo lorenz -set rho=99.96 -format svg
//	fractal -all out/ -width 400 -height 400
//	fractal -demo lyapunov -plot
//	fractal -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/gogpu/fractal"
)

// setFlags collects repeated -set name=value flags.
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// has reports whether a parameter was assigned on the command line.
func (s setFlags) has(name string) bool {
	for _, a := range s {
		if n, _, _ := strings.Cut(a, "="); strings.TrimSpace(n) == name {
			return true
		}
	}
	return false
}

type config struct {
	demo    string
	output  string
	format  string
	width   int
	height  int
	sets    setFlags
	hud     bool
	font    string
	list    bool
	all     string
	jobs    int
	plot    bool
	workers int
	verbose bool
}

func parse(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("fractal", flag.ContinueOnError)
	fs.SetOutput(stderr)

	c := &config{}
	fs.StringVar(&c.demo, "demo", "mandelbrot", "demo to render (see -list)")
	fs.StringVar(&c.output, "o", "", "output file (default: the demo's screenshot name)")
	fs.StringVar(&c.format, "format", "", "output format: png, bmp, jpeg or svg (default: from -o)")
	fs.IntVar(&c.width, "width", 0, "image width (default: the demo's size)")
	fs.IntVar(&c.height, "height", 0, "image height (default: the demo's size)")
	fs.Var(&c.sets, "set", "set a demo parameter, name=value (repeatable)")
	fs.BoolVar(&c.hud, "hud", false, "draw the status text into the image")
	fs.StringVar(&c.font, "font", "", "TrueType font for -hud (default: built-in bitmap font)")
	fs.BoolVar(&c.list, "list", false, "list the demos and their parameters")
	fs.StringVar(&c.all, "all", "", "render every demo into this directory")
	fs.IntVar(&c.jobs, "jobs", runtime.NumCPU(), "demos rendered at once with -all")
	fs.BoolVar(&c.plot, "plot", false, "plot the demo as a terminal graph instead of rendering")
	fs.IntVar(&c.workers, "workers", 0, "render workers per image (default: GOMAXPROCS)")
	fs.BoolVar(&c.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return c, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	c, err := parse(args, stderr)
	if err != nil {
		return err
	}
	if c.verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	switch {
	case c.list:
		return list(stdout)
	case c.all != "":
		return renderAll(ctx, c, stdout)
	}

	d, err := c.newDemo(c.demo)
	if err != nil {
		return err
	}
	if d.Name() == "cantor" && !c.sets.has("iterations") {
		if err := promptIterations(d, stdin, stderr); err != nil {
			return err
		}
	}
	if c.plot {
		return plot(stdout, d)
	}
	path, err := renderOne(ctx, c, d, c.output, false)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Saved", path)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "fractal:", err)
		}
		os.Exit(1)
	}
}
