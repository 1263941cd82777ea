package demo

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownDemo is returned by New for a name nobody registered.
var ErrUnknownDemo = errors.New("demo: unknown demo")

// Factory creates a demo in its initial state.
type Factory func() Demo

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
	order      []string
)

// Register makes a demo available under name. Registering a name twice
// replaces the factory but keeps its position in [Available].
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[name]; !ok {
		order = append(order, name)
	}
	registry[name] = f
}

// New creates a fresh instance of the named demo.
func New(name string) (Demo, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownDemo, name, Sorted())
	}
	return f(), nil
}

// Available returns the registered names in registration order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return append([]string(nil), order...)
}

// Sorted returns the registered names in lexical order.
func Sorted() []string {
	names := Available()
	sort.Strings(names)
	return names
}

// Next returns the name after name in registration order, wrapping around.
// step may be negative.
func Next(name string, step int) string {
	names := Available()
	if len(names) == 0 {
		return name
	}
	for i, n := range names {
		if n == name {
			j := ((i+step)%len(names) + len(names)) % len(names)
			return names[j]
		}
	}
	return names[0]
}

func init() {
	Register("mandelbrot", func() Demo { return NewMandelbrot() })
	Register("julia", func() Demo { return NewJulia() })
	Register("burning-ship", func() Demo { return NewBurningShip() })
	Register("tricorn", func() Demo { return NewTricorn() })
	Register("phoenix", func() Demo { return NewPhoenix() })
	Register("biomorph", func() Demo { return NewBiomorph() })
	Register("newton", func() Demo { return NewNewton() })
	Register("lyapunov", func() Demo { return NewLyapunov() })
	Register("lorenz", func() Demo { return NewLorenz() })
	Register("chen-lee", func() Demo { return NewChenLee() })
	Register("aizawa", func() Demo { return NewAizawa() })
	Register("koch", func() Demo { return NewKoch() })
	Register("fern", func() Demo { return NewFern() })
	Register("dragon", func() Demo { return NewDragon() })
	Register("vicsek", func() Demo { return NewVicsek() })
	Register("cantor", func() Demo { return NewCantor() })
	Register("hcurve", func() Demo { return NewHCurve() })
}
