package quiz

import (
	"context"

	"github.com/karupanerura/lazyload"
	"github.com/karupanerura/lazyload/flight"
)

// Store holds the question set shared by every quiz page.
// The questions are fetched at most once, however many pages ask for them.
type Store struct {
	cache *flight.Cache[Question]
}

// NewStore creates a new Store backed by the source.
func NewStore(source lazyload.ListSource[Question], opts ...flight.Option[Question]) *Store {
	return &Store{cache: flight.New(source, opts...)}
}

// Prefetch starts loading the questions without waiting for them.
func (s *Store) Prefetch() *flight.Flight[Question] {
	return s.cache.Request()
}

// Questions returns the questions, loading them if needed.
func (s *Store) Questions(ctx context.Context) ([]Question, error) {
	return s.cache.EnsureLoaded(ctx)
}

// Start waits for the questions and starts a new session over them.
func (s *Store) Start(ctx context.Context) (*Session, error) {
	questions, err := s.Questions(ctx)
	if err != nil {
		return nil, err
	}
	return NewSession(questions)
}

// State returns a snapshot of the underlying cache.
func (s *Store) State() flight.State[Question] {
	return s.cache.State()
}
