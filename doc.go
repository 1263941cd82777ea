// Package fractal is a collection of fractal and chaotic-attractor demos.
//
// # Overview
//
// Every demo computes an image or a trajectory with a fixed numeric
// iteration, maps it to pixels with an affine or perspective transform and
// reacts to pan, zoom, rotate and parameter input:
//
//   - escape-time sets: Mandelbrot, Julia, Burning Ship, Tricorn, Phoenix,
//     Biomorph and Newton (z^3 - 1)
//   - Lyapunov exponent of the logistic map
//   - Lorenz, Chen-Lee and Aizawa attractors integrated with RK4
//   - Koch snowflake, Vicsek fractal, 3D H-curve
//   - L-systems: dragon curve and circular Cantor rings
//   - Barnsley fern
//
// # Quick Start
//
//	d, _ := demo.New("mandelbrot")
//	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
//	if err := d.Render(context.Background(), img); err != nil {
//	    log.Fatal(err)
//	}
//	export.Save("mandelbrot.png", img)
//
// # Architecture
//
// The numeric kernels live in small, frontend-free packages:
//   - view: pixel <-> world mappings (bounds rectangle, center+scale window)
//   - escape, lyapunov, ode, lsystem, geom, ifs: kernels
//   - palette: iteration counts and exponents to colors
//   - camera: rotation and perspective projection
//
// The demo package turns each kernel into an interactive [demo.Demo];
// viewer drives a demo from input events, and the commands under cmd/
// attach it to a PNG writer, an ebiten window, a terminal or a gogpu window.
//
// # Logging
//
// Logging is silent by default. See [SetLogger].
package fractal

// Version is the module release.
const Version = "0.3.0"
