package devtools

import (
	"sync"

	"github.com/lilactown/react-repl/internal/fiber"
	"github.com/lilactown/react-repl/internal/registry"
)

// CommitFunc is the framework's commit notification signature. The
// framework invokes it once per committed frame with the renderer's id and
// the committed root value.
type CommitFunc func(rendererID int, root any, priorityLevel int, didError bool)

// Rooter is the probe for extracting the current tree node from whatever
// value the framework passes as the committed root.
type Rooter interface {
	CurrentNode() *fiber.Node
}

// Hook is the framework-facing notification object. The framework (or the
// demo producer standing in for it) calls OnCommitFiberRoot after every
// commit; anything already installed there keeps running after Install
// wraps it.
type Hook struct {
	mu                sync.Mutex
	OnCommitFiberRoot CommitFunc
}

// Commit invokes the current OnCommitFiberRoot, if any. Producers call
// this rather than reading the field so a concurrent Install is safe.
func (h *Hook) Commit(rendererID int, root any, priorityLevel int, didError bool) {
	h.mu.Lock()
	fn := h.OnCommitFiberRoot
	h.mu.Unlock()
	if fn != nil {
		fn(rendererID, root, priorityLevel, didError)
	}
}

var (
	global      = &Hook{}
	installOnce sync.Once
)

// Global returns the process-wide hook object. Like the registry's default
// store it is deliberately a singleton: it models the one well-known hook
// a host process exposes to devtools subscribers.
func Global() *Hook {
	return global
}

// Install patches the global hook so every commit is captured into store,
// wrapping any subscriber already present so it still runs first. Repeat
// calls are no-ops; installation happens once per process.
func Install(store *registry.Store) {
	installOnce.Do(func() {
		install(global, store)
	})
}

func install(h *Hook, store *registry.Store) {
	h.mu.Lock()
	defer h.mu.Unlock()

	prev := h.OnCommitFiberRoot
	h.OnCommitFiberRoot = func(rendererID int, root any, priorityLevel int, didError bool) {
		if prev != nil {
			prev(rendererID, root, priorityLevel, didError)
		}
		store.Commit(fiber.RootID(rendererID), rootNode(root))
	}
}

// rootNode resolves the committed root value to its current tree node: a
// raw node is taken as-is, a Rooter is asked, and anything else captures
// as nil (an empty commit, visible to queries as an absent tree).
func rootNode(root any) *fiber.Node {
	switch r := root.(type) {
	case *fiber.Node:
		return r
	case Rooter:
		return r.CurrentNode()
	default:
		return nil
	}
}
