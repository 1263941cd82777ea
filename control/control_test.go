package control

import "testing"

func TestDrag(t *testing.T) {
	d := Drag{Button: Left}
	if _, _, moved := d.Update(Event{Kind: Motion, X: 5, Y: 5}); moved {
		t.Error("motion without a press should not drag")
	}
	d.Update(Click(Right, 0, 0))
	if d.Active() {
		t.Error("other button should not start the drag")
	}
	d.Update(Click(Left, 10, 10))
	dx, dy, moved := d.Update(Event{Kind: Motion, X: 13, Y: 6})
	if !moved || dx != 3 || dy != -4 {
		t.Errorf("Update = %v, %v, %v, want 3, -4, true", dx, dy, moved)
	}
	dx, _, _ = d.Update(Event{Kind: Motion, X: 14, Y: 6})
	if dx != 1 {
		t.Errorf("second motion dx = %v, want 1", dx)
	}
	d.Update(Event{Kind: ButtonUp, Button: Left})
	if _, _, moved := d.Update(Event{Kind: Motion, X: 20, Y: 20}); moved {
		t.Error("motion after release should not drag")
	}
}

func TestNamedKeysDistinct(t *testing.T) {
	keys := []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyEscape, KeyTab, KeyPageUp, KeyPageDown, KeyEnter}
	seen := map[Key]bool{}
	for _, k := range keys {
		if k >= 0 {
			t.Errorf("named key %d overlaps printable runes", k)
		}
		if seen[k] {
			t.Errorf("duplicate key %d", k)
		}
		seen[k] = true
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 680, Y: 10, W: 110, H: 30}
	tests := []struct {
		x, y float64
		want bool
	}{
		{680, 10, true},
		{790, 40, true},
		{735, 25, true},
		{679, 25, false},
		{735, 41, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
