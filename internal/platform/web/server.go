// Package web serves the game to browsers: a static canvas client and a
// WebSocket endpoint that runs one session per connection on the server.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/eggcatch/internal/games/catch"
	"github.com/vovakirdan/eggcatch/internal/storage"
)

//go:embed static
var staticFiles embed.FS

// Config holds the web server settings.
type Config struct {
	Addr     string // host:port to listen on
	TickRate int    // Simulation ticks per second for every connection
	Seed     int64  // RNG seed for sessions; 0 seeds from the clock
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:     ":8080",
		TickRate: 60,
	}
}

// Server hosts the browser front end.
type Server struct {
	cfg      Config
	store    *storage.Store
	logger   *log.Logger
	upgrader websocket.Upgrader
	http     *http.Server
}

// NewServer creates a web server. The store may be nil.
func NewServer(cfg Config, store *storage.Store, logger *log.Logger) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		cfg:    cfg,
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			// Allow all origins; the game holds no credentials.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes: the static client at /, the game socket at
// /ws and the score table at /api/scores.
func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(static)))
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/api/scores", s.handleScores)
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting web server", "address", s.cfg.Addr)

	errc := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	mode := catch.ModeClassic
	if r.URL.Query().Get("mode") == string(catch.ModeMarathon) {
		mode = catch.ModeMarathon
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	logger := s.logger.With("remote", r.RemoteAddr, "mode", string(mode))
	logger.Info("connection opened")
	if err := s.serveConn(r.Context(), conn, mode, logger); err != nil {
		logger.Info("connection closed", "reason", err)
		return
	}
	logger.Info("connection closed")
}

// scoreRow is one entry of the /api/scores response.
type scoreRow struct {
	Score     int       `json:"score"`
	EndReason string    `json:"end_reason"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		gameID = "eggcatch"
	}

	rows := []scoreRow{}
	if s.store != nil {
		rounds, err := s.store.TopRounds(gameID, 10)
		if err != nil {
			s.logger.Error("cannot load scores", "game", gameID, "error", err)
			http.Error(w, "cannot load scores", http.StatusInternalServerError)
			return
		}
		for _, rd := range rounds {
			rows = append(rows, scoreRow{Score: rd.Score, EndReason: rd.EndReason, CreatedAt: rd.CreatedAt})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		s.logger.Warn("cannot write scores", "error", err)
	}
}
