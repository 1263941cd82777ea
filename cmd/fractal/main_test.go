package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/fractal/demo"
	"github.com/gogpu/fractal/export"
	"github.com/gogpu/fractal/param"
)

func runArgs(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	out, _, err := runArgs(t, "", "-list")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range demo.Available() {
		if !strings.Contains(out, name) {
			t.Errorf("-list output missing %q", name)
		}
	}
	if !strings.Contains(out, "vector") || !strings.Contains(out, "raster") {
		t.Error("-list output missing the KIND column")
	}
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		args []string
		file string
	}{
		{[]string{"-demo", "mandelbrot", "-width", "40", "-height", "30", "-o", "m.png"}, "m.png"},
		{[]string{"-demo", "koch", "-width", "64", "-height", "64", "-format", "svg", "-o", "k.out"}, "k.out"},
		{[]string{"-demo", "vicsek", "-width", "64", "-height", "64", "-hud", "-o", "v.jpg"}, "v.jpg"},
	}
	for _, tt := range tests {
		for i, a := range tt.args {
			if a == "-o" {
				tt.args[i+1] = filepath.Join(dir, tt.args[i+1])
			}
		}
		out, _, err := runArgs(t, "", tt.args...)
		if err != nil {
			t.Errorf("run(%v) = %v", tt.args, err)
			continue
		}
		path := filepath.Join(dir, tt.file)
		if !strings.Contains(out, path) {
			t.Errorf("run(%v) output %q does not name %s", tt.args, out, path)
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("run(%v) wrote nothing to %s", tt.args, path)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		args []string
		want error
	}{
		{[]string{"-demo", "sierpinski"}, demo.ErrUnknownDemo},
		{[]string{"-demo", "mandelbrot", "-set", "zoom=2"}, param.ErrUnknown},
		{[]string{"-demo", "koch", "-set", "depth=99"}, param.ErrRange},
		{[]string{"-demo", "mandelbrot", "-format", "svg", "-o", filepath.Join(dir, "m.svg")}, export.ErrFormat},
		{[]string{"-demo", "mandelbrot", "-o", filepath.Join(dir, "m.gif")}, export.ErrFormat},
	}
	for _, tt := range tests {
		if _, _, err := runArgs(t, "", tt.args...); !errors.Is(err, tt.want) {
			t.Errorf("run(%v) error = %v, want %v", tt.args, err, tt.want)
		}
	}
}

func TestCantorPrompt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.png")
	_, stderr, err := runArgs(t, "many\n99\n3\n", "-demo", "cantor", "-width", "64", "-height", "64", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Invalid input", "between 0 and", "with 3 iterations"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("prompt output missing %q:\n%s", want, stderr)
		}
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}

	// An explicit -set skips the prompt.
	_, stderr, err = runArgs(t, "", "-demo", "cantor", "-set", "iterations=2", "-width", "32", "-height", "32", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(stderr, "Enter the number") {
		t.Error("prompted despite -set iterations")
	}
}

func TestPlot(t *testing.T) {
	out, _, err := runArgs(t, "", "-demo", "lyapunov", "-set", "iterations=100", "-plot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Lyapunov") {
		t.Errorf("plot output missing caption:\n%s", out)
	}
	if _, _, err := runArgs(t, "", "-demo", "mandelbrot", "-plot"); err == nil {
		t.Error("plotting mandelbrot succeeded")
	}
}

func TestRenderAll(t *testing.T) {
	if testing.Short() {
		t.Skip("renders every demo")
	}
	dir := t.TempDir()
	out, _, err := runArgs(t, "",
		"-all", dir, "-width", "32", "-height", "32", "-jobs", "4",
		"-set", "points=20000", "-format", "svg")
	if err != nil {
		t.Fatal(err)
	}
	n := strings.Count(out, "Saved")
	if n != len(demo.Available()) {
		t.Errorf("saved %d files, want %d", n, len(demo.Available()))
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var svg, png int
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".svg":
			svg++
		case ".png":
			png++
		}
	}
	if svg == 0 || png == 0 || svg+png != len(demo.Available()) {
		t.Errorf("got %d svg and %d png files", svg, png)
	}
}
