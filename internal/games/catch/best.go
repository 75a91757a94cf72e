package catch

// MemoryBest keeps the best score in memory only.
type MemoryBest struct {
	score int
	saves int
}

// LoadBest returns the stored best score, 0 if none was saved.
func (m *MemoryBest) LoadBest() (int, error) {
	return m.score, nil
}

// SaveBest stores score as the new best.
func (m *MemoryBest) SaveBest(score int) error {
	m.score = score
	m.saves++
	return nil
}

// Saves returns how many times SaveBest was called.
func (m *MemoryBest) Saves() int {
	return m.saves
}
