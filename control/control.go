// Package control defines frontend-neutral input events. Desktop, terminal
// and GPU frontends translate their native events into Event values and
// hand them to the demos.
package control

// Kind identifies the event type.
type Kind uint8

const (
	KeyPress Kind = iota
	ButtonDown
	ButtonUp
	Motion
	Wheel
	Resize
)

// Key is a printable key as its lower-case rune, or one of the named keys
// below.
type Key rune

// Named keys.
const (
	KeyNone Key = 0

	KeyUp Key = -1 - iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyTab
	KeyPageUp
	KeyPageDown
	KeyEnter
)

// Button is a mouse button.
type Button uint8

const (
	NoButton Button = iota
	Left
	Right
	Middle
)

// Event is a single input event in image pixel coordinates.
type Event struct {
	Kind   Kind
	Key    Key
	Button Button
	X, Y   float64
	// WheelY is positive for scrolling up (zoom in).
	WheelY float64
	// W and H carry the new size for Resize events.
	W, H int
}

// Press returns a KeyPress event for k.
func Press(k Key) Event { return Event{Kind: KeyPress, Key: k} }

// Click returns a ButtonDown event at (x, y).
func Click(b Button, x, y float64) Event {
	return Event{Kind: ButtonDown, Button: b, X: x, Y: y}
}

// Scroll returns a Wheel event at (x, y).
func Scroll(x, y, dy float64) Event {
	return Event{Kind: Wheel, X: x, Y: y, WheelY: dy}
}

// Drag tracks a pressed button across motion events.
type Drag struct {
	Button Button
	active bool
	lastX  float64
	lastY  float64
}

// Update feeds e to the tracker. On motion while the tracked button is down
// it returns the movement since the previous event and true.
func (d *Drag) Update(e Event) (dx, dy float64, moved bool) {
	switch e.Kind {
	case ButtonDown:
		if e.Button == d.Button {
			d.active = true
			d.lastX, d.lastY = e.X, e.Y
		}
	case ButtonUp:
		if e.Button == d.Button {
			d.active = false
		}
	case Motion:
		if d.active {
			dx, dy = e.X-d.lastX, e.Y-d.lastY
			d.lastX, d.lastY = e.X, e.Y
			return dx, dy, dx != 0 || dy != 0
		}
	}
	return 0, 0, false
}

// Active reports whether the tracked button is held.
func (d *Drag) Active() bool { return d.active }

// Rect is an integer pixel rectangle used for hit testing.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && x <= float64(r.X+r.W) &&
		y >= float64(r.Y) && y <= float64(r.Y+r.H)
}
