package catch

import (
	"math/rand"

	"github.com/vovakirdan/eggcatch/internal/config"
)

// Playfield is the area eggs fall through, in playfield units.
// Y grows downwards; the floor is at Y == Height.
type Playfield struct {
	Width  float64
	Height float64
}

// Egg is a falling object.
type Egg struct {
	X      float64 // Horizontal center
	Y      float64 // Vertical center, 0 at the top
	Speed  float64 // Units fallen per tick
	Radius float64
	Color  Color
}

// Spawner creates eggs at the top of the playfield.
type Spawner struct {
	rng     *rand.Rand
	field   Playfield
	eggs    config.EggConfig
	palette []Color
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, field Playfield, eggs config.EggConfig, palette []Color) *Spawner {
	return &Spawner{
		rng:     rng,
		field:   field,
		eggs:    eggs,
		palette: append([]Color(nil), palette...),
	}
}

// Spawn returns a new egg at Y = 0 with X uniform in [0, width), a color drawn
// uniformly from the palette and speed base + uniform [0, variance).
func (s *Spawner) Spawn() Egg {
	return Egg{
		X:      s.rng.Float64() * s.field.Width,
		Y:      0,
		Speed:  s.eggs.BaseSpeed + s.rng.Float64()*s.eggs.SpeedVariance,
		Radius: s.eggs.Radius,
		Color:  s.palette[s.rng.Intn(len(s.palette))],
	}
}
