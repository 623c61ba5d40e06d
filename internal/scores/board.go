// Package scores keeps the run history of the process in memory.
// A board is shared by every session of a server, so all methods are safe
// for concurrent use. Nothing is written to disk.
package scores

import (
	"slices"
	"sync"
	"time"
)

// Entry represents a single finished run.
type Entry struct {
	ID        int64
	GameID    string
	Score     int // meters
	Won       bool
	Player    string // session user, empty for local play
	CreatedAt time.Time
}

// Board is an in-memory score table.
type Board struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  int64
	now     func() time.Time
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{nextID: 1, now: time.Now}
}

// SaveScore records a finished run and returns its ID.
func (b *Board) SaveScore(gameID, player string, score int, won bool) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.entries = append(b.entries, Entry{
		ID:        id,
		GameID:    gameID,
		Score:     score,
		Won:       won,
		Player:    player,
		CreatedAt: b.now(),
	})
	return id
}

// TopScores returns the best runs for a game, highest first. Ties keep the
// earlier run first.
func (b *Board) TopScores(gameID string, limit int) []Entry {
	if limit <= 0 {
		limit = 10
	}

	b.mu.RLock()
	var out []Entry
	for _, e := range b.entries {
		if e.GameID == gameID {
			out = append(out, e)
		}
	}
	b.mu.RUnlock()

	slices.SortStableFunc(out, func(x, y Entry) int {
		return y.Score - x.Score
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// HighScore returns the best score for a game, or 0 when it has no runs.
func (b *Board) HighScore(gameID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	best := 0
	for _, e := range b.entries {
		if e.GameID == gameID && e.Score > best {
			best = e.Score
		}
	}
	return best
}

// Recent returns the latest runs across all games, newest first.
func (b *Board) Recent(limit int) []Entry {
	if limit <= 0 {
		limit = 10
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	n := min(limit, len(b.entries))
	out := make([]Entry, 0, n)
	for i := len(b.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, b.entries[i])
	}
	return out
}

// Count returns the number of runs recorded for a game, or for every
// game when gameID is empty.
func (b *Board) Count(gameID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, e := range b.entries {
		if gameID == "" || e.GameID == gameID {
			n++
		}
	}
	return n
}
