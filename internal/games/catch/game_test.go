package catch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/eggcatch/internal/core"
	"github.com/vovakirdan/eggcatch/internal/registry"
)

// useDefaultConfig points the package at an empty config file so tests do not
// pick up a developer's ~/.eggcatch or ./configs overrides.
func useDefaultConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eggcatch.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	useDefaultConfig(t)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}, nil)
	if g.Err() != nil {
		t.Fatalf("Reset: %v", g.Err())
	}
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"eggcatch", "eggcatch_marathon"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, want %q", g.ID(), id)
		}
	}
}

func TestModeDurations(t *testing.T) {
	tests := []struct {
		game *Game
		want int
	}{
		{New(), 15},
		{NewMarathon(), 60},
	}
	for _, tt := range tests {
		t.Run(tt.game.ID(), func(t *testing.T) {
			g := newTestGame(t, tt.game)
			if got := g.State().Remaining; got != tt.want {
				t.Errorf("Remaining = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoadConfigKeepsConfiguredDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eggcatch.yaml")
	doc := "round:\n  duration_secs: 30\n  marathon_secs: 120\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	tests := []struct {
		mode Mode
		want int
	}{
		{ModeClassic, 30},
		{ModeMarathon, 120},
	}
	for _, tt := range tests {
		cfg, err := LoadConfig(tt.mode)
		if err != nil {
			t.Fatalf("LoadConfig(%s): %v", tt.mode, err)
		}
		if cfg.Round.DurationSecs != tt.want {
			t.Errorf("%s duration = %d, want %d", tt.mode, cfg.Round.DurationSecs, tt.want)
		}
	}

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, nil)
	if got := g.State().Remaining; got != 30 {
		t.Errorf("classic game Remaining = %d, want 30", got)
	}
}

func TestGameConfirmStartsRound(t *testing.T) {
	g := newTestGame(t, New())

	res := g.Step(press())
	if res.State.Running {
		t.Fatal("game should wait for confirm")
	}

	res = g.Step(press(core.ActionConfirm))
	if !res.State.Running {
		t.Fatal("confirm should start the round")
	}
}

func TestGameRepeatedMovesApplied(t *testing.T) {
	g := newTestGame(t, New())
	g.Step(press(core.ActionConfirm))

	g.Step(press(core.ActionLeft, core.ActionLeft, core.ActionLeft))
	if got := g.Session().Catcher().X; got != 160 {
		t.Errorf("X = %v after three lefts, want 160", got)
	}

	g.Step(press(core.ActionRight))
	if got := g.Session().Catcher().X; got != 170 {
		t.Errorf("X = %v after one right, want 170", got)
	}
}

func TestGameRestartAfterEnd(t *testing.T) {
	g := newTestGame(t, New())
	g.Step(press(core.ActionConfirm))
	g.Advance(15 * time.Second)
	g.Step(press())

	if st := g.State(); !st.GameOver || st.Running {
		t.Fatalf("state = %+v, want game over", st)
	}

	res := g.Step(press(core.ActionRestart))
	if !res.State.Running || res.State.Remaining != 15 || res.State.Score != 0 {
		t.Errorf("after restart state = %+v", res.State)
	}
	if g.Session().Round() != 2 {
		t.Errorf("Round = %d, want 2", g.Session().Round())
	}
}

func TestGameRenderIdle(t *testing.T) {
	g := newTestGame(t, New())
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	for _, want := range []string{"Score: 0", "Time: 15s", "Best: 0", "Egg Catch", "ENTER to start"} {
		if !strings.Contains(out, want) {
			t.Errorf("idle screen missing %q", want)
		}
	}
}

func TestGameRenderPlayfield(t *testing.T) {
	g := newTestGame(t, New())
	g.Step(press(core.ActionConfirm))
	g.Session().eggs = []Egg{{X: 240, Y: 320, Speed: 3, Radius: 10, Color: "yellow"}}

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// 240/480 of 80 columns, 320/640 of the 23 field rows below the HUD.
	if cell := scr.GetCell(40, 12); cell.Rune != eggRune || cell.Color != core.ColorYellow {
		t.Errorf("egg cell = %+v, want yellow %q", cell, eggRune)
	}

	// Basket spans columns 32..48 on the bottom row.
	for x := 32; x <= 48; x++ {
		if cell := scr.GetCell(x, 23); cell.Rune != '▀' || cell.Color != core.ColorBlue {
			t.Fatalf("basket cell %d = %+v", x, cell)
		}
	}
	if cell := scr.GetCell(31, 23); cell.Rune == '▀' {
		t.Error("basket drawn left of its edge")
	}
}

func TestGameRenderEnded(t *testing.T) {
	g := newTestGame(t, New())
	g.Step(press(core.ActionConfirm))
	g.Session().eggs = []Egg{overCatcher(g.Session(), "red")}
	g.Step(press())

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("terminating catch should show GAME OVER")
	}
	if !strings.Contains(out, "R to play again") {
		t.Error("ended screen should offer a restart")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, New())
	scr := core.NewScreen(20, 6)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestGameConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.DefaultConfig(), nil)
	if g.Err() == nil {
		t.Fatal("expected a configuration error")
	}

	res := g.Step(press(core.ActionConfirm))
	if res.State.Running {
		t.Error("broken game should not start")
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Configuration error") {
		t.Error("expected configuration error message")
	}
}

func TestGameBestFromStore(t *testing.T) {
	useDefaultConfig(t)
	store := &MemoryBest{}
	store.SaveBest(42)

	g := New()
	g.Reset(core.DefaultConfig(), store)
	if got := g.State().Best; got != 42 {
		t.Errorf("Best = %d, want 42", got)
	}
}
