package store

import "sync"

// Store keeps the fitted-model registry with concurrency safety.
type Store struct {
	mu       sync.Mutex
	state    *State
	filePath string
}

// Open creates a Store, loading or initializing the registry from disk.
func Open(filePath string) (*Store, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	s := &Store{state: state, filePath: filePath}
	if err := s.save(); err != nil {
		return nil, err
	}
	return s, nil
}

// Put records the latest fitted model for a ticker and persists the registry.
func (s *Store) Put(ticker string, rec ModelRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Models[ticker] = rec
	return s.save()
}

// Get returns the stored model for a ticker.
func (s *Store) Get(ticker string) (ModelRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.state.Models[ticker]
	return rec, ok
}

// Snapshot returns a copy of the current registry.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	models := make(map[string]ModelRecord, len(s.state.Models))
	for k, v := range s.state.Models {
		models[k] = v
	}
	return State{Models: models, UpdatedAt: s.state.UpdatedAt}
}

func (s *Store) save() error {
	return SaveState(s.filePath, s.state)
}
