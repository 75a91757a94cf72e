package catch

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eggcatch/internal/config"
	"github.com/vovakirdan/eggcatch/internal/core"
	"github.com/vovakirdan/eggcatch/internal/registry"
)

// Mode selects the round preset.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeMarathon Mode = "marathon"
)

const (
	hudRows = 1
	minCols = 24
	minRows = 10
	eggRune = '●'
)

// Package-level collaborators, set by the command layer before games are created.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the config file path used by new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig loads the configuration and applies the mode's round preset.
func LoadConfig(mode Mode) (config.CatchConfig, error) {
	cfg, err := config.LoadCatch(configPath)
	if err != nil {
		return config.CatchConfig{}, err
	}
	config.ApplyPreset(&cfg, mode.preset())
	return cfg, nil
}

func (m Mode) preset() config.RoundPreset {
	if m == ModeMarathon {
		return config.PresetMarathon
	}
	return config.PresetClassic
}

// Game adapts a Session to the registry.Game interface used by the terminal
// front ends. It also acts as the session's HUD.
type Game struct {
	mode    Mode
	session *Session
	err     error

	// HUD state, updated through the HUD callbacks.
	score     int
	remaining int
	final     int
	best      int
	ended     bool
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewMarathon creates a marathon mode game.
func NewMarathon() *Game {
	return &Game{mode: ModeMarathon}
}

func init() {
	registry.Register("eggcatch", func() registry.Game {
		return New()
	})
	registry.Register("eggcatch_marathon", func() registry.Game {
		return NewMarathon()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeMarathon {
		return "eggcatch_marathon"
	}
	return "eggcatch"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeMarathon {
		return "Egg Catch (Marathon)"
	}
	return "Egg Catch"
}

// Reset builds a fresh idle session. A nil best uses an in-memory store.
func (g *Game) Reset(cfg core.RuntimeConfig, best core.BestScores) {
	g.session = nil
	g.err = nil
	g.ended = false

	catchCfg, err := LoadConfig(g.mode)
	if err != nil {
		g.err = err
		logger.Error("could not load config", "game", g.ID(), "error", err)
		return
	}
	s, err := NewSession(catchCfg,
		WithBestScores(best),
		WithHUD(g),
		WithLogger(logger.With("game", g.ID())),
		WithSeed(cfg.Seed),
	)
	if err != nil {
		g.err = err
		logger.Error("invalid config", "game", g.ID(), "error", err)
		return
	}
	g.session = s
	g.score = 0
	g.remaining = s.Remaining()
	g.best = s.Best()
}

// Session returns the underlying session, nil if Reset failed.
func (g *Game) Session() *Session {
	return g.session
}

// Err returns the error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Advance moves the round clock forward by dt.
func (g *Game) Advance(dt time.Duration) {
	if g.session != nil {
		g.session.Advance(dt)
	}
}

// Step applies the frame's input and runs one simulation tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session
	if s == nil {
		return core.StepResult{State: g.State()}
	}

	switch s.State() {
	case StateIdle:
		if in.Has(core.ActionConfirm) {
			s.Start()
		}
	case StateEnded:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.ended = false
			s.Restart()
		}
	}

	if s.State() == StateRunning {
		for range in.Count(core.ActionLeft) {
			s.Move(DirLeft)
		}
		for range in.Count(core.ActionRight) {
			s.Move(DirRight)
		}
		s.Tick()
	}

	return core.StepResult{State: g.State()}
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	s := g.session
	return core.GameState{
		Score:     s.Score(),
		Remaining: s.Remaining(),
		Best:      s.Best(),
		Running:   s.State() == StateRunning,
		GameOver:  s.State() == StateEnded,
		EndReason: string(s.EndReason()),
		Ticks:     s.TickCount(),
	}
}

// ScoreChanged implements HUD.
func (g *Game) ScoreChanged(score, remaining int) {
	g.score = score
	g.remaining = remaining
}

// RoundEnded implements HUD.
func (g *Game) RoundEnded(final, best int) {
	g.final = final
	g.best = best
	g.ended = true
}

// Render draws the playfield scaled to the screen: one HUD row at the top,
// falling eggs, and the basket on the bottom row.
func (g *Game) Render(dst *core.Screen) {
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Configuration error")
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		return
	}
	if g.session == nil {
		return
	}
	if dst.Width() < minCols || dst.Height() < minRows {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	g.renderHUD(dst)
	g.renderField(dst)

	switch g.session.State() {
	case StateIdle:
		g.renderOverlay(dst, g.Title(), fmt.Sprintf("Best: %d", g.best), "ENTER to start  Q to quit")
	case StateEnded:
		headline := "TIME UP"
		if g.session.EndReason() == EndCaughtBad {
			headline = "GAME OVER"
		}
		g.renderOverlay(dst, headline,
			fmt.Sprintf("Score: %d  Best: %d", g.final, g.best),
			"R to play again  Q to quit")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	timer := fmt.Sprintf("Time: %ds", g.remaining)
	timerColor := core.ColorBrightWhite
	if g.remaining <= 5 {
		timerColor = core.ColorBrightRed
	}
	dst.DrawTextColored((dst.Width()-len(timer))/2, 0, timer, timerColor)
	best := fmt.Sprintf("Best: %d", g.best)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorGray)
}

func (g *Game) renderField(dst *core.Screen) {
	s := g.session
	field := s.Field()
	cols := dst.Width()
	rows := dst.Height() - hudRows

	for _, e := range s.eggs {
		x := core.ScaleToCell(e.X, field.Width, cols)
		y := hudRows + core.ScaleToCell(e.Y, field.Height, rows)
		dst.SetColored(x, y, eggRune, g.displayColor(e.Color))
	}

	c := s.Catcher()
	x0 := int(math.Round(c.X / field.Width * float64(cols)))
	w := max(int(math.Round(c.Width/field.Width*float64(cols))), 1)
	dst.DrawHLine(x0, dst.Height()-1, w, '▀', core.ColorBlue)
}

// displayColor maps an egg color to a terminal color, honoring a rule's
// display override. Unknown names render white.
func (g *Game) displayColor(c Color) core.Color {
	name := string(c)
	if rule, ok := g.session.cfg.Rules[name]; ok && rule.Display != "" {
		name = rule.Display
	}
	if tc, ok := core.ParseColor(name); ok {
		return tc
	}
	return core.ColorWhite
}

func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.CenteredRect(width+4, len(lines)*2+1, dst.Width(), dst.Height())
	dst.DrawRect(box.Inset(1), ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i*2, l)
	}
}
