package catch

import (
	"testing"

	"github.com/vovakirdan/eggcatch/internal/config"
)

var (
	testField   = Playfield{Width: 480, Height: 640}
	testCatcher = CatcherState{X: 190, Width: 100, Height: 20} // top edge at 620
)

func defaultRules(t *testing.T) *RuleTable {
	t.Helper()
	rules, err := RulesFromConfig(config.DefaultCatchConfig())
	if err != nil {
		t.Fatalf("RulesFromConfig: %v", err)
	}
	return rules
}

func TestStepRedTerminates(t *testing.T) {
	rules := defaultRules(t)
	eggs := []Egg{{X: 240, Y: 615, Speed: 3, Radius: 10, Color: "red"}}

	res := Step(eggs, testCatcher, testField, rules)

	if !res.Terminate {
		t.Error("catching red should signal termination")
	}
	if res.ScoreDelta != 0 {
		t.Errorf("ScoreDelta = %d, want 0", res.ScoreDelta)
	}
	if len(res.Caught) != 1 || len(res.Eggs) != 0 {
		t.Errorf("caught %d, live %d; want 1 and 0", len(res.Caught), len(res.Eggs))
	}
}

func TestStepExpiry(t *testing.T) {
	rules := defaultRules(t)
	eggs := []Egg{{X: 10, Y: 639, Speed: 3, Radius: 10, Color: "yellow"}}

	res := Step(eggs, testCatcher, testField, rules)

	if res.Expired != 1 {
		t.Errorf("Expired = %d, want 1", res.Expired)
	}
	if len(res.Eggs) != 0 || len(res.Caught) != 0 {
		t.Errorf("live %d, caught %d; want 0 and 0", len(res.Eggs), len(res.Caught))
	}
	if res.ScoreDelta != 0 || res.Terminate {
		t.Errorf("expiry should not score: delta %d, terminate %v", res.ScoreDelta, res.Terminate)
	}
}

func TestStepAdditive(t *testing.T) {
	rules := defaultRules(t)
	eggs := []Egg{
		{X: 220, Y: 615, Speed: 3, Radius: 10, Color: "yellow"},
		{X: 260, Y: 612, Speed: 4, Radius: 10, Color: "blue"},
		{X: 240, Y: 100, Speed: 3, Radius: 10, Color: "purple"},
	}

	res := Step(eggs, testCatcher, testField, rules)

	if res.ScoreDelta != 15 {
		t.Errorf("ScoreDelta = %d, want 15", res.ScoreDelta)
	}
	if len(res.Caught) != 2 {
		t.Errorf("caught %d eggs, want 2", len(res.Caught))
	}
	if len(res.Eggs) != 1 || res.Eggs[0].Color != "purple" {
		t.Errorf("live eggs = %+v, want the purple one", res.Eggs)
	}
}

func TestStepBoundaries(t *testing.T) {
	rules := defaultRules(t)

	tests := []struct {
		name    string
		egg     Egg // position before the step; speed 0 keeps it in place
		caught  bool
		expired bool
	}{
		{"bottom edge touches top, not caught", Egg{X: 240, Y: 610}, false, false},
		{"just past top", Egg{X: 240, Y: 610.5}, true, false},
		{"left edge excluded", Egg{X: 190, Y: 630}, false, false},
		{"right edge excluded", Egg{X: 290, Y: 630}, false, false},
		{"inside left edge", Egg{X: 190.5, Y: 630}, true, false},
		{"inside right edge", Egg{X: 289.5, Y: 630}, true, false},
		{"on the floor beside catcher stays live", Egg{X: 10, Y: 640}, false, false},
		{"on the floor over catcher caught", Egg{X: 240, Y: 640}, true, false},
		{"below the floor expires", Egg{X: 10, Y: 640.5}, false, true},
		{"below the floor over catcher expires", Egg{X: 240, Y: 641}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.egg
			e.Radius = 10
			e.Color = "green"
			res := Step([]Egg{e}, testCatcher, testField, rules)

			if got := len(res.Caught) == 1; got != tt.caught {
				t.Errorf("caught = %v, want %v", got, tt.caught)
			}
			if got := res.Expired == 1; got != tt.expired {
				t.Errorf("expired = %v, want %v", got, tt.expired)
			}
			if live := !tt.caught && !tt.expired; live != (len(res.Eggs) == 1) {
				t.Errorf("live eggs = %d", len(res.Eggs))
			}
		})
	}
}

func TestStepMonotonicFall(t *testing.T) {
	rules := defaultRules(t)
	eggs := []Egg{{X: 10, Y: 0, Speed: 3.5, Radius: 10, Color: "yellow"}}

	for n := 1; n <= 100; n++ {
		res := Step(eggs, testCatcher, testField, rules)
		if len(res.Eggs) != 1 {
			t.Fatalf("tick %d: egg removed early", n)
		}
		if want := 3.5 * float64(n); res.Eggs[0].Y != want {
			t.Fatalf("tick %d: Y = %v, want %v", n, res.Eggs[0].Y, want)
		}
		eggs = res.Eggs
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	rules := defaultRules(t)
	eggs := []Egg{
		{X: 240, Y: 615, Speed: 3, Radius: 10, Color: "yellow"},
		{X: 10, Y: 50, Speed: 3, Radius: 10, Color: "blue"},
	}
	before := append([]Egg(nil), eggs...)

	Step(eggs, testCatcher, testField, rules)

	for i := range eggs {
		if eggs[i] != before[i] {
			t.Errorf("egg %d mutated: %+v -> %+v", i, before[i], eggs[i])
		}
	}
}

func TestStepEmpty(t *testing.T) {
	res := Step(nil, testCatcher, testField, defaultRules(t))
	if len(res.Eggs) != 0 || res.ScoreDelta != 0 || res.Terminate || res.Expired != 0 {
		t.Errorf("empty step = %+v", res)
	}
}
