package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/fractal/demo"
	"github.com/gogpu/fractal/param"
)

// promptIterations asks for the Cantor iteration count on in, repeating
// until it gets an acceptable value. The default is kept if in runs dry.
func promptIterations(d demo.Demo, in io.Reader, out io.Writer) error {
	ps := d.Params()
	p, ok := ps.Lookup("iterations")
	if !ok {
		return nil
	}
	fmt.Fprintln(out, "The figure's complexity grows exponentially with iterations.")
	fmt.Fprintf(out, "Values up to %d are accepted; 10-11 render quickly.\n", int(p.Max))

	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	for {
		fmt.Fprintf(out, "Enter the number of iterations (0-%d) [%s]: ", int(p.Max), p)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			fmt.Fprintln(out, "Invalid input. Please enter an integer.")
			continue
		}
		if err := ps.Set("iterations", float64(n)); err != nil {
			if errors.Is(err, param.ErrRange) {
				fmt.Fprintf(out, "Please enter a number between 0 and %d.\n", int(p.Max))
				continue
			}
			return err
		}
		fmt.Fprintf(out, "Generating the Cantor figure with %d iterations...\n", n)
		return nil
	}
}
