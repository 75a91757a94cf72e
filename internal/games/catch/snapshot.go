package catch

// EggView is the render-facing view of one egg.
type EggView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"r"`
	Color  string  `json:"color"`
}

// Snapshot captures what a renderer needs to draw one frame.
type Snapshot struct {
	State     string    `json:"state"`
	Round     int       `json:"round"`
	Tick      uint64    `json:"tick"`
	Score     int       `json:"score"`
	Remaining int       `json:"remaining"`
	Best      int       `json:"best"`
	EndReason string    `json:"end_reason,omitempty"`
	FieldW    float64   `json:"field_w"`
	FieldH    float64   `json:"field_h"`
	CatcherX  float64   `json:"catcher_x"`
	CatcherW  float64   `json:"catcher_w"`
	CatcherH  float64   `json:"catcher_h"`
	Eggs      []EggView `json:"eggs"`
	Caught    []EggView `json:"caught,omitempty"`
}

// Snapshot returns a read-only copy of the session for rendering.
func (s *Session) Snapshot() Snapshot {
	c := s.catcher.State()
	return Snapshot{
		State:     s.state.String(),
		Round:     s.round,
		Tick:      s.tick,
		Score:     s.score,
		Remaining: s.remaining,
		Best:      s.bestScore,
		EndReason: string(s.endReason),
		FieldW:    s.field.Width,
		FieldH:    s.field.Height,
		CatcherX:  c.X,
		CatcherW:  c.Width,
		CatcherH:  c.Height,
		Eggs:      eggViews(s.eggs),
		Caught:    eggViews(s.lastCaught),
	}
}

func eggViews(eggs []Egg) []EggView {
	views := make([]EggView, len(eggs))
	for i, e := range eggs {
		views[i] = EggView{X: e.X, Y: e.Y, Radius: e.Radius, Color: string(e.Color)}
	}
	return views
}
