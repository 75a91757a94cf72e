package web

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/eggcatch/internal/config"
	"github.com/vovakirdan/eggcatch/internal/games/catch"
	"github.com/vovakirdan/eggcatch/internal/storage"
)

func TestFrameRecordsRoundBeforeRestart(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	srv := NewServer(DefaultConfig(), store, nil)
	hud := &connHUD{}
	session, err := catch.NewSession(config.DefaultCatchConfig(),
		catch.WithHUD(hud),
		catch.WithBestScores(store.BestFor("eggcatch")),
		catch.WithSeed(3),
	)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	applyAction(session, "start")
	hud.drain()

	// The countdown runs out inside one frame.
	msgs := srv.frame("eggcatch", session, hud, 16*time.Second, srv.logger)
	var ended *RoundEnd
	for _, m := range msgs {
		if m.Type == "ended" {
			ended = m.Ended
		}
	}
	if ended == nil || ended.Reason != "time_up" {
		t.Fatalf("frame messages = %+v, want an ended message with reason time_up", msgs)
	}

	rounds, err := store.RecentRounds("eggcatch", 10)
	if err != nil {
		t.Fatalf("RecentRounds: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("recorded %d rounds after the round ended, want 1", len(rounds))
	}

	// A restart on the next loop iteration starts a fresh round and
	// leaves the stored one alone.
	applyAction(session, "restart")
	if session.State() != catch.StateRunning {
		t.Fatalf("state after restart = %v, want running", session.State())
	}
	srv.frame("eggcatch", session, hud, time.Second/60, srv.logger)
	if rounds, _ = store.RecentRounds("eggcatch", 10); len(rounds) != 1 {
		t.Errorf("recorded %d rounds after restart, want 1", len(rounds))
	}
}
