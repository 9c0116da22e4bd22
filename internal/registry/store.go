package registry

import (
	"slices"
	"sync"

	"github.com/lilactown/react-repl/internal/fiber"
)

// Store maps root ids to the most recently committed root node of each
// application instance. Entries are replaced wholesale on every commit and
// never merged; an entry for a torn-down root simply goes stale.
type Store struct {
	mu    sync.RWMutex
	roots map[fiber.RootID]*fiber.Node
}

// Default is the process-wide store the capture hook writes into. It is
// intentionally global: it mirrors the host-wide registry of live
// application roots, of which a process has exactly one.
var Default = &Store{}

// Commit replaces the stored root for id. A nil root is stored as-is; the
// framework decides what a root means, this store only remembers the
// latest one.
func (s *Store) Commit(id fiber.RootID, root *fiber.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roots == nil {
		s.roots = make(map[fiber.RootID]*fiber.Node)
	}
	s.roots[id] = root
}

// Root returns the last committed root for id, or nil before any commit.
func (s *Store) Root(id fiber.RootID) *fiber.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roots[id]
}

// Current returns the root for the given id, defaulting to fiber.DefaultRoot
// when no id is passed. This is the common single-app entry point.
func (s *Store) Current(id ...fiber.RootID) *fiber.Node {
	if len(id) == 0 {
		return s.Root(fiber.DefaultRoot)
	}
	return s.Root(id[0])
}

// RootIDs returns every known root id in ascending order.
func (s *Store) RootIDs() []fiber.RootID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]fiber.RootID, 0, len(s.roots))
	for id := range s.roots {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of roots ever committed.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.roots)
}

// Reset drops every entry. Used by tests and by demo restarts; the live
// capture path never deletes.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roots = nil
}
