package web

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/eggcatch/internal/config"
	"github.com/vovakirdan/eggcatch/internal/core"
	"github.com/vovakirdan/eggcatch/internal/games/catch"
	"github.com/vovakirdan/eggcatch/internal/storage"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
	maxMessage = 512
)

// ClientMessage is an input intent sent by the browser.
type ClientMessage struct {
	Action string `json:"action"` // "left", "right", "start" or "restart"
}

// ServerMessage is sent to the browser. Exactly one payload is set per Type.
type ServerMessage struct {
	Type   string          `json:"type"` // "config", "state", "hud" or "ended"
	Config *ClientConfig   `json:"config,omitempty"`
	State  *catch.Snapshot `json:"state,omitempty"`
	HUD    *HUDUpdate      `json:"hud,omitempty"`
	Ended  *RoundEnd       `json:"ended,omitempty"`
}

// ClientConfig describes the playfield so the client can scale its canvas.
type ClientConfig struct {
	GameID   string            `json:"game_id"`
	Title    string            `json:"title"`
	FieldW   float64           `json:"field_w"`
	FieldH   float64           `json:"field_h"`
	Duration int               `json:"duration"`
	Colors   map[string]string `json:"colors"` // Palette name to display color
}

// HUDUpdate carries score and timer changes.
type HUDUpdate struct {
	Score     int `json:"score"`
	Remaining int `json:"remaining"`
}

// RoundEnd is sent once when a round finishes.
type RoundEnd struct {
	Score  int    `json:"score"`
	Best   int    `json:"best"`
	Reason string `json:"reason"`
}

// connHUD queues HUD callbacks so the loop can send them after each step.
type connHUD struct {
	pending []ServerMessage
}

func (h *connHUD) ScoreChanged(score, remaining int) {
	h.pending = append(h.pending, ServerMessage{Type: "hud", HUD: &HUDUpdate{Score: score, Remaining: remaining}})
}

func (h *connHUD) RoundEnded(final, best int) {
	h.pending = append(h.pending, ServerMessage{Type: "ended", Ended: &RoundEnd{Score: final, Best: best}})
}

func (h *connHUD) drain() []ServerMessage {
	out := h.pending
	h.pending = nil
	return out
}

// serveConn runs one session for a connection. The loop goroutine owns the
// session and is the only writer; a reader goroutine forwards client intents.
func (s *Server) serveConn(ctx context.Context, conn *websocket.Conn, mode catch.Mode, logger *log.Logger) error {
	cfg, err := catch.LoadConfig(mode)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gameID := "eggcatch"
	if mode == catch.ModeMarathon {
		gameID = "eggcatch_marathon"
	}

	var best core.BestScores = &catch.MemoryBest{}
	if s.store != nil {
		best = s.store.BestFor(gameID)
	}
	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	hud := &connHUD{}
	session, err := catch.NewSession(cfg,
		catch.WithBestScores(best),
		catch.WithHUD(hud),
		catch.WithLogger(logger),
		catch.WithSeed(seed),
	)
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}

	conn.SetReadLimit(maxMessage)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	inputs := make(chan string, 16)
	readErr := make(chan error, 1)
	go func() {
		for {
			var msg ClientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				readErr <- err
				return
			}
			select {
			case inputs <- msg.Action:
			default:
				// Drop intents while the loop is behind.
			}
		}
	}()

	send := func(msg ServerMessage) error {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(msg)
	}
	sendAll := func(msgs []ServerMessage) error {
		for _, m := range msgs {
			if err := send(m); err != nil {
				return err
			}
		}
		return nil
	}
	sendState := func() error {
		snap := session.Snapshot()
		return send(ServerMessage{Type: "state", State: &snap})
	}

	if err := send(ServerMessage{Type: "config", Config: clientConfig(gameID, mode, cfg)}); err != nil {
		return err
	}
	if err := sendState(); err != nil {
		return err
	}

	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.TickRate))
	defer ticker.Stop()
	pinger := time.NewTicker(pingPeriod)
	defer pinger.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-readErr:
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err

		case action := <-inputs:
			applyAction(session, action)

		case now := <-ticker.C:
			msgs := s.frame(gameID, session, hud, now.Sub(last), logger)
			last = now
			if err := sendAll(msgs); err != nil {
				return err
			}
			if err := sendState(); err != nil {
				return err
			}

		case <-pinger.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		}
	}
}

// frame advances the clock and runs one tick, returning the queued HUD
// messages. Rounds only end inside frame, and an ended round is recorded
// before frame returns, so a restart read on the next loop iteration can
// never replace a round that has not been stored.
func (s *Server) frame(gameID string, session *catch.Session, hud *connHUD, dt time.Duration, logger *log.Logger) []ServerMessage {
	session.Advance(dt)
	session.Tick()

	msgs := hud.drain()
	for _, m := range msgs {
		if m.Type == "ended" {
			m.Ended.Reason = string(session.EndReason())
			s.recordRound(gameID, session, logger)
		}
	}
	return msgs
}

// applyAction maps a client intent onto the session.
func applyAction(session *catch.Session, action string) {
	switch action {
	case "left":
		session.Move(catch.DirLeft)
	case "right":
		session.Move(catch.DirRight)
	case "start":
		session.Start()
	case "restart":
		if session.State() == catch.StateEnded {
			session.Restart()
		}
	}
}

// recordRound stores a finished round. Best-effort: failures are only logged.
func (s *Server) recordRound(gameID string, session *catch.Session, logger *log.Logger) {
	if s.store == nil {
		return
	}
	_, err := s.store.SaveRound(storage.RoundRecord{
		GameID:    gameID,
		Score:     session.Score(),
		EndReason: string(session.EndReason()),
		Ticks:     int64(session.TickCount()),
	})
	if err != nil {
		logger.Warn("could not save round", "error", err)
	}
}

func clientConfig(gameID string, mode catch.Mode, cfg config.CatchConfig) *ClientConfig {
	colors := make(map[string]string, len(cfg.Palette))
	for _, name := range cfg.Palette {
		display := name
		if rule := cfg.Rules[name]; rule.Display != "" {
			display = rule.Display
		}
		colors[name] = display
	}
	title := "Egg Catch"
	if mode == catch.ModeMarathon {
		title = "Egg Catch (Marathon)"
	}
	return &ClientConfig{
		GameID:   gameID,
		Title:    title,
		FieldW:   cfg.Field.Width,
		FieldH:   cfg.Field.Height,
		Duration: cfg.Round.DurationSecs,
		Colors:   colors,
	}
}

var _ catch.HUD = (*connHUD)(nil)
