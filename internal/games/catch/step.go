package catch

// StepResult reports what happened during one simulation tick.
type StepResult struct {
	Eggs       []Egg // Eggs still falling
	ScoreDelta int   // Sum of the score effects of every egg caught
	Terminate  bool  // A caught egg ends the round
	Caught     []Egg // Eggs caught this tick, after moving
	Expired    int   // Eggs that fell past the floor
}

// Step advances every egg by its speed and resolves catches and expiry.
//
// An egg is caught when its bottom (Y + Radius) is strictly below the basket's
// top edge, its center has not passed the floor (Y <= field height), and its
// center lies strictly between the basket's left and right edges. An egg that
// is not caught and whose center is past the floor (Y > field height) expires.
// Each egg is resolved exactly once; the input slice is never modified.
func Step(eggs []Egg, catcher CatcherState, field Playfield, rules *RuleTable) StepResult {
	res := StepResult{
		Eggs: make([]Egg, 0, len(eggs)),
	}
	top := catcher.Top(field)

	for _, e := range eggs {
		e.Y += e.Speed

		switch {
		case isCaught(e, catcher, top, field):
			effect := rules.EffectOf(e.Color)
			res.ScoreDelta += effect.ScoreDelta
			res.Terminate = res.Terminate || effect.Terminates
			res.Caught = append(res.Caught, e)
		case e.Y > field.Height:
			res.Expired++
		default:
			res.Eggs = append(res.Eggs, e)
		}
	}

	return res
}

func isCaught(e Egg, c CatcherState, top float64, field Playfield) bool {
	if e.Y+e.Radius <= top || e.Y > field.Height {
		return false
	}
	return e.X > c.X && e.X < c.X+c.Width
}
