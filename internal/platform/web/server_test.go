package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/eggcatch/internal/storage"
)

func newTestServer(t *testing.T, store *storage.Store) *httptest.Server {
	t.Helper()
	srv := NewServer(Config{TickRate: 60, Seed: 42}, store, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntil reads messages until match returns true or the deadline passes.
func readUntil(t *testing.T, conn *websocket.Conn, match func(ServerMessage) bool) ServerMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		var msg ServerMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if match(msg) {
			return msg
		}
	}
}

func TestServesClient(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "<canvas") {
		t.Error("index should contain the canvas")
	}
}

func TestSocketHandshake(t *testing.T) {
	ts := newTestServer(t, nil)
	conn := dial(t, ts, "")

	var first ServerMessage
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read: %v", err)
	}
	if first.Type != "config" || first.Config == nil {
		t.Fatalf("first message = %+v, want config", first)
	}
	if first.Config.FieldW != 480 || first.Config.FieldH != 640 || first.Config.Duration != 15 {
		t.Errorf("config = %+v", first.Config)
	}
	if first.Config.Colors["red"] != "red" {
		t.Errorf("colors = %v", first.Config.Colors)
	}

	msg := readUntil(t, conn, func(m ServerMessage) bool { return m.Type == "state" })
	if msg.State.State != "idle" {
		t.Errorf("initial state = %q, want idle", msg.State.State)
	}
}

func TestSocketStartAndMove(t *testing.T) {
	ts := newTestServer(t, nil)
	conn := dial(t, ts, "")
	readUntil(t, conn, func(m ServerMessage) bool { return m.Type == "state" })

	if err := conn.WriteJSON(ClientMessage{Action: "start"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	readUntil(t, conn, func(m ServerMessage) bool {
		return m.Type == "state" && m.State.State == "running"
	})

	if err := conn.WriteJSON(ClientMessage{Action: "left"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	msg := readUntil(t, conn, func(m ServerMessage) bool {
		return m.Type == "state" && m.State.CatcherX != 190
	})
	if msg.State.CatcherX != 180 {
		t.Errorf("CatcherX = %v, want 180", msg.State.CatcherX)
	}
}

func TestSocketMarathonMode(t *testing.T) {
	ts := newTestServer(t, nil)
	conn := dial(t, ts, "?mode=marathon")

	msg := readUntil(t, conn, func(m ServerMessage) bool { return m.Type == "config" })
	if msg.Config.GameID != "eggcatch_marathon" || msg.Config.Duration != 60 {
		t.Errorf("config = %+v, want marathon with 60s", msg.Config)
	}
}

func TestScoresEndpoint(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()
	store.SaveRound(storage.RoundRecord{GameID: "eggcatch", Score: 42, EndReason: "time_up"})

	ts := newTestServer(t, store)
	resp, err := http.Get(ts.URL + "/api/scores?game=eggcatch")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(body), `"score":42`) {
		t.Errorf("body = %s, want the saved round", body)
	}
}
