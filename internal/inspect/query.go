package inspect

import (
	"iter"
	"reflect"
	"strings"

	"github.com/lilactown/react-repl/internal/fiber"
	"github.com/lilactown/react-repl/internal/registry"
)

// FindAll yields every node under the named roots whose ElementType is
// identical to elementType, in pre-order per root. With no roots given it
// searches all known roots in ascending id order. The sequence is lazy:
// breaking out stops the underlying walk.
func FindAll(store *registry.Store, elementType any, roots ...fiber.RootID) iter.Seq[*fiber.Node] {
	return func(yield func(*fiber.Node) bool) {
		for _, id := range searchRoots(store, roots) {
			for n := range fiber.Walk(store.Root(id)) {
				if identical(n.ElementType, elementType) && !yield(n) {
					return
				}
			}
		}
	}
}

// FindFirst returns the first FindAll match, or nil when there is none.
func FindFirst(store *registry.Store, elementType any, roots ...fiber.RootID) *fiber.Node {
	for n := range FindAll(store, elementType, roots...) {
		return n
	}
	return nil
}

// FindByLabel yields nodes whose display label contains the query,
// case-insensitively. This powers interactive search; programmatic lookup
// should use FindAll's identity matching.
func FindByLabel(store *registry.Store, query string, roots ...fiber.RootID) iter.Seq[*fiber.Node] {
	q := strings.ToLower(query)
	return func(yield func(*fiber.Node) bool) {
		for _, id := range searchRoots(store, roots) {
			for n := range fiber.Walk(store.Root(id)) {
				if strings.Contains(strings.ToLower(fiber.TypeLabel(n)), q) && !yield(n) {
					return
				}
			}
		}
	}
}

func searchRoots(store *registry.Store, roots []fiber.RootID) []fiber.RootID {
	if len(roots) > 0 {
		return roots
	}
	return store.RootIDs()
}

// identical is == with a guard: element types are arbitrary values and a
// producer may use an uncomparable one, which must read as "no match"
// rather than panic.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}
