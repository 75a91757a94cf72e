package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/eggcatch/internal/core"
)

var errNoStore = errors.New("storage: store is not open")

// LoadBest returns the best score for the given game, 0 if none was saved.
func (s *Store) LoadBest(gameID string) (int, error) {
	if s == nil || s.db == nil {
		return 0, errNoStore
	}

	var score int
	err := s.db.QueryRow("SELECT score FROM best_scores WHERE game_id = ?", gameID).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load best score: %w", err)
	}
	return score, nil
}

// SaveBest stores score as the best score for the given game.
// The caller decides whether the score beats the previous best.
func (s *Store) SaveBest(gameID string, score int) error {
	if s == nil || s.db == nil {
		return errNoStore
	}

	_, err := s.db.Exec(
		`INSERT INTO best_scores (game_id, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// BestKeeper binds the best score of one game to the store.
type BestKeeper struct {
	store  *Store
	gameID string
}

// BestFor returns a core.BestScores backed by the store for gameID.
func (s *Store) BestFor(gameID string) *BestKeeper {
	return &BestKeeper{store: s, gameID: gameID}
}

// LoadBest implements core.BestScores.
func (k *BestKeeper) LoadBest() (int, error) {
	return k.store.LoadBest(k.gameID)
}

// SaveBest implements core.BestScores.
func (k *BestKeeper) SaveBest(score int) error {
	return k.store.SaveBest(k.gameID, score)
}

var _ core.BestScores = (*BestKeeper)(nil)
