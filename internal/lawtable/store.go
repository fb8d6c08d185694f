package lawtable

import (
	"sync"
	"sync/atomic"

	"gifttax/internal/model"
)

// Store holds the current LawContext. Readers never lock; Reload installs a
// freshly built context with a single pointer swap.
type Store struct {
	path    string
	load    func(string) model.LawContext
	current atomic.Pointer[model.LawContext]
	mu      sync.Mutex // serializes reloads
}

// NewStore loads the table at path once and keeps it
func NewStore(path string) *Store {
	return NewStoreWithLoader(path, Load)
}

// NewStoreWithLoader is NewStore with a custom loader
func NewStoreWithLoader(path string, load func(string) model.LawContext) *Store {
	s := &Store{path: path, load: load}
	lc := load(path)
	s.current.Store(&lc)
	return s
}

// Current returns the installed context. The table it points to must be
// treated as read-only.
func (s *Store) Current() model.LawContext {
	return *s.current.Load()
}

// Reload rebuilds the context from the store's path and installs it
func (s *Store) Reload() model.LawContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	lc := s.load(s.path)
	s.current.Store(&lc)
	return lc
}

func (s *Store) Path() string {
	return s.path
}
