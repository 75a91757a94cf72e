package catch

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eggcatch/internal/config"
	"github.com/vovakirdan/eggcatch/internal/core"
	"github.com/vovakirdan/eggcatch/internal/schedule"
)

// State is the lifecycle phase of a session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateEnded
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason explains why a round ended.
type EndReason string

const (
	EndNone      EndReason = ""
	EndTimeUp    EndReason = "time_up"
	EndCaughtBad EndReason = "game_over_color"
)

// Direction is a discrete movement intent.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// HUD receives score and timer updates from a session.
type HUD interface {
	// ScoreChanged is called whenever score or remaining time changes.
	ScoreChanged(score, remaining int)
	// RoundEnded is called once when a round ends.
	RoundEnded(final, best int)
}

type nopHUD struct{}

func (nopHUD) ScoreChanged(int, int) {}
func (nopHUD) RoundEnded(int, int)   {}

// Option configures a Session.
type Option func(*Session)

// WithBestScores sets the best score collaborator. Defaults to an in-memory store.
func WithBestScores(b core.BestScores) Option {
	return func(s *Session) {
		if b != nil {
			s.best = b
		}
	}
}

// WithHUD sets the HUD collaborator.
func WithHUD(h HUD) Option {
	return func(s *Session) {
		if h != nil {
			s.hud = h
		}
	}
}

// WithLogger sets the logger. Defaults to discarding output.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed seeds the spawner RNG. A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// Session owns one player's game: the round state machine, the live eggs, the
// basket and the timers. It is not safe for concurrent use; a single event
// loop calls Advance, Tick and the input methods.
type Session struct {
	cfg     config.CatchConfig
	field   Playfield
	rules   *RuleTable
	spawner *Spawner
	catcher *Catcher
	sched   *schedule.Scheduler
	best    core.BestScores
	hud     HUD
	logger  *log.Logger
	seed    int64

	clockTimer schedule.Timer
	spawnTimer schedule.Timer

	state      State
	round      int
	tick       uint64
	score      int
	remaining  int
	bestScore  int
	endReason  EndReason
	eggs       []Egg
	lastCaught []Egg
}

// NewSession validates cfg and returns an idle session with the best score loaded.
// An invalid configuration yields a *config.ConfigurationError.
func NewSession(cfg config.CatchConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rules, err := RulesFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:    cfg,
		field:  Playfield{Width: cfg.Field.Width, Height: cfg.Field.Height},
		rules:  rules,
		sched:  schedule.New(),
		best:   &MemoryBest{},
		hud:    nopHUD{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}

	s.spawner = NewSpawner(rand.New(rand.NewSource(s.seed)), s.field, cfg.Eggs, rules.Palette())
	s.catcher = NewCatcher(s.field, cfg.Catcher.Width, cfg.Catcher.Height)
	s.remaining = cfg.Round.DurationSecs
	s.enterIdle()
	return s, nil
}

// enterIdle loads the best score. A failing store counts as no prior best.
func (s *Session) enterIdle() {
	s.state = StateIdle
	best, err := s.best.LoadBest()
	if err != nil {
		s.logger.Warn("could not load best score", "error", err)
		best = 0
	}
	s.bestScore = best
}

// Start begins a round from Idle or Ended. While a round is running it does
// nothing and returns false.
func (s *Session) Start() bool {
	if s.state == StateRunning {
		return false
	}

	s.round++
	s.tick = 0
	s.score = 0
	s.remaining = s.cfg.Round.DurationSecs
	s.endReason = EndNone
	s.eggs = nil
	s.lastCaught = nil
	s.catcher.Center()
	s.catcher.SetActive(true)
	s.state = StateRunning

	// The clock is registered first so a round ending on a shared instant
	// never spawns a last egg.
	s.clockTimer = s.sched.Every(time.Second, s.countDown)
	s.spawnTimer = s.sched.Every(s.cfg.Eggs.SpawnInterval(), s.spawn)

	s.logger.Debug("round started", "round", s.round, "duration", s.remaining)
	s.hud.ScoreChanged(s.score, s.remaining)
	return true
}

// Restart starts a new round after the previous one ended. Same as Start.
func (s *Session) Restart() bool {
	return s.Start()
}

// Advance moves the session clock forward, running the countdown and the
// spawner for every interval that elapsed.
func (s *Session) Advance(dt time.Duration) {
	s.sched.Advance(dt)
}

// Tick runs one simulation step. Outside a running round it does nothing.
func (s *Session) Tick() StepResult {
	if s.state != StateRunning {
		return StepResult{}
	}

	res := Step(s.eggs, s.catcher.State(), s.field, s.rules)
	s.tick++
	s.eggs = res.Eggs
	s.lastCaught = res.Caught

	if res.ScoreDelta != 0 {
		s.score += res.ScoreDelta
		s.hud.ScoreChanged(s.score, s.remaining)
	}
	if res.Terminate {
		s.end(EndCaughtBad)
	}
	return res
}

// Move shifts the basket one step in dir. Ignored unless a round is running.
func (s *Session) Move(dir Direction) float64 {
	return s.catcher.MoveBy(float64(dir) * s.cfg.Catcher.Step)
}

func (s *Session) countDown() {
	if s.remaining > 0 {
		s.remaining--
	}
	s.hud.ScoreChanged(s.score, s.remaining)
	if s.remaining == 0 {
		s.end(EndTimeUp)
	}
}

func (s *Session) spawn() {
	s.eggs = append(s.eggs, s.spawner.Spawn())
}

// end stops the round. Both timers are unregistered so nothing fires afterwards.
func (s *Session) end(reason EndReason) {
	s.sched.Cancel(s.clockTimer)
	s.sched.Cancel(s.spawnTimer)
	s.clockTimer = schedule.Timer{}
	s.spawnTimer = schedule.Timer{}

	s.catcher.SetActive(false)
	s.state = StateEnded
	s.endReason = reason

	if s.score > s.bestScore {
		if err := s.best.SaveBest(s.score); err != nil {
			s.logger.Warn("could not save best score", "score", s.score, "error", err)
		}
		s.bestScore = s.score
	}

	s.logger.Info("round ended",
		"round", s.round,
		"reason", string(reason),
		"score", s.score,
		"best", s.bestScore,
		"ticks", s.tick,
	)
	s.hud.RoundEnded(s.score, s.bestScore)
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Score returns the current round score.
func (s *Session) Score() int { return s.score }

// Remaining returns the seconds left in the round.
func (s *Session) Remaining() int { return s.remaining }

// Best returns the best score known to this session.
func (s *Session) Best() int { return s.bestScore }

// EndReason returns why the last round ended.
func (s *Session) EndReason() EndReason { return s.endReason }

// Round returns how many rounds have been started.
func (s *Session) Round() int { return s.round }

// TickCount returns the simulation ticks run in the current round.
func (s *Session) TickCount() uint64 { return s.tick }

// Catcher returns the basket state.
func (s *Session) Catcher() CatcherState { return s.catcher.State() }

// Field returns the playfield dimensions.
func (s *Session) Field() Playfield { return s.field }

// Rules returns the color rule table.
func (s *Session) Rules() *RuleTable { return s.rules }

// Eggs returns a copy of the live eggs.
func (s *Session) Eggs() []Egg {
	return append([]Egg(nil), s.eggs...)
}
