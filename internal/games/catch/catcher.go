package catch

import "github.com/vovakirdan/eggcatch/internal/core"

// CatcherState is a read-only view of the basket.
// The basket sits on the floor: its top edge is at field height minus Height.
type CatcherState struct {
	X      float64 // Left edge
	Width  float64
	Height float64
}

// Top returns the Y coordinate of the basket's top edge.
func (c CatcherState) Top(field Playfield) float64 {
	return field.Height - c.Height
}

// Catcher owns the basket position and keeps it inside the playfield.
type Catcher struct {
	state      CatcherState
	fieldWidth float64
	active     bool
}

// NewCatcher creates an inactive basket centered on the floor.
func NewCatcher(field Playfield, width, height float64) *Catcher {
	c := &Catcher{
		state:      CatcherState{Width: width, Height: height},
		fieldWidth: field.Width,
	}
	c.Center()
	return c
}

// Center moves the basket to the middle of the floor.
func (c *Catcher) Center() {
	c.state.X = (c.fieldWidth - c.state.Width) / 2
}

// SetActive enables or disables movement.
func (c *Catcher) SetActive(active bool) {
	c.active = active
}

// Active reports whether movement requests are accepted.
func (c *Catcher) Active() bool {
	return c.active
}

// MaxX returns the largest allowed left edge.
func (c *Catcher) MaxX() float64 {
	return c.fieldWidth - c.state.Width
}

// MoveBy shifts the basket by delta, clamped to [0, field width - basket width],
// and returns the new left edge. While inactive the request is ignored.
func (c *Catcher) MoveBy(delta float64) float64 {
	if !c.active {
		return c.state.X
	}
	c.state.X = core.Clamp(c.state.X+delta, 0, c.MaxX())
	return c.state.X
}

// State returns a copy of the basket state.
func (c *Catcher) State() CatcherState {
	return c.state
}
