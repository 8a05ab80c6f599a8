// Package dataset holds the active session's row collection. Every change is
// a whole-collection replace; there is no row-level mutation API.
package dataset

import (
	"errors"
	"sync"

	"revos/internal/analytics"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrNoPreview is returned when committing a preview token that was never
// staged or was already consumed.
var ErrNoPreview = errors.New("no staged preview for token")

// Store is the in-memory dataset for one session. It is constructed with the
// bundled default sample and torn down with the session.
type Store struct {
	mu       sync.RWMutex
	rows     []analytics.TopProblem
	defaults []analytics.TopProblem
	previews map[string][]analytics.TopProblem
}

// NewStore creates a store seeded with defaults.
func NewStore(defaults []analytics.TopProblem) *Store {
	s := &Store{
		defaults: cloneRows(defaults),
		previews: make(map[string][]analytics.TopProblem),
	}
	s.rows = cloneRows(defaults)
	return s
}

// Rows returns a copy of the current collection in stored order.
func (s *Store) Rows() []analytics.TopProblem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRows(s.rows)
}

// Count returns the current row count.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// ReplaceAll swaps the whole collection atomically. Used by confirmed imports
// and by persistence on startup.
func (s *Store) ReplaceAll(rows []analytics.TopProblem) {
	replacement := cloneRows(rows)
	s.mu.Lock()
	s.rows = replacement
	s.mu.Unlock()
	log.Debug().Int("rows", len(replacement)).Msg("Dataset replaced")
}

// Reset restores the bundled default sample.
func (s *Store) Reset() {
	s.mu.Lock()
	s.rows = cloneRows(s.defaults)
	s.mu.Unlock()
	log.Debug().Msg("Dataset reset to default sample")
}

// Clear empties the collection.
func (s *Store) Clear() {
	s.mu.Lock()
	s.rows = nil
	s.mu.Unlock()
	log.Debug().Msg("Dataset cleared")
}

// StagePreview parks a decoded import without touching the live collection
// and returns a token for a later commit or discard. The live dataset is only
// ever replaced through CommitPreview, so a discarded parse has no side
// effects.
func (s *Store) StagePreview(rows []analytics.TopProblem) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.previews[token] = cloneRows(rows)
	s.mu.Unlock()
	return token
}

// Preview returns the staged rows for a token.
func (s *Store) Preview(token string) ([]analytics.TopProblem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.previews[token]
	if !ok {
		return nil, false
	}
	return cloneRows(rows), true
}

// CommitPreview atomically replaces the live collection with the staged rows
// and consumes the token.
func (s *Store) CommitPreview(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.previews[token]
	if !ok {
		return ErrNoPreview
	}
	delete(s.previews, token)
	s.rows = rows
	log.Info().Int("rows", len(rows)).Msg("Import committed")
	return nil
}

// DiscardPreview drops a staged preview. Unknown tokens are a no-op.
func (s *Store) DiscardPreview(token string) {
	s.mu.Lock()
	delete(s.previews, token)
	s.mu.Unlock()
}

// cloneRows always returns a non-nil slice so an empty dataset serializes as
// [] rather than null.
func cloneRows(rows []analytics.TopProblem) []analytics.TopProblem {
	out := make([]analytics.TopProblem, len(rows))
	copy(out, rows)
	return out
}
