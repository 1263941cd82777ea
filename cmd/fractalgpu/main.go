// Command fractalgpu shows the demos in a GPU-composited window.
//
// Frames are rendered on the CPU, drawn into a gg canvas and presented by
// gogpu. Space cycles through the demos.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // register the GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/fractal/demo"
	"github.com/gogpu/fractal/viewer"
)

func main() {
	name := flag.String("demo", "mandelbrot", "first demo to show")
	flag.Parse()

	d, err := demo.New(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fractalgpu:", err)
		os.Exit(1)
	}
	ctx := context.Background()
	s := viewer.New(d, image.Point{})
	size := s.Size()

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(d.Title()).
		WithSize(size.X, size.Y).
		WithContinuousRender(false))

	var (
		canvas *ggcanvas.Canvas
		redraw *gogpu.AnimationToken
	)

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}
		s.Resize(image.Pt(w, h))
		stale := s.Dirty()
		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			if canvas, err = ggcanvas.New(provider, w, h); err != nil {
				log.Fatalf("fractalgpu: create canvas: %v", err)
			}
			stale = true
		}
		if cw, ch := canvas.Size(); cw != w || ch != h {
			if err := canvas.Resize(w, h); err != nil {
				log.Printf("fractalgpu: resize: %v", err)
			}
			stale = true
		}

		if stale {
			frame, err := s.Frame(ctx)
			if err != nil {
				log.Printf("fractalgpu: %v", err)
				return
			}
			buf := gg.ImageBufFromImage(frame)
			if err := canvas.Draw(func(cc *gg.Context) { cc.DrawImage(buf, 0, 0) }); err != nil {
				log.Printf("fractalgpu: draw: %v", err)
			}
		}
		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			log.Printf("fractalgpu: present: %v", err)
		}
		if redraw != nil {
			redraw.Stop()
			redraw = nil
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key != gpucontext.KeySpace {
			return
		}
		if err := s.Switch(demo.Next(s.Demo().Name(), 1)); err != nil {
			log.Printf("fractalgpu: %v", err)
			return
		}
		log.Printf("fractalgpu: showing %s", s.Demo().Title())
		if redraw == nil {
			redraw = app.StartAnimation()
		}
	})

	app.OnClose(func() {
		if redraw != nil {
			redraw.Stop()
		}
		gg.CloseAccelerator()
	})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
