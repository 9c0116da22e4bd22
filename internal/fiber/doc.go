// Package fiber models the render tree of a running component framework
// and provides traversal, state reconstruction, and best-effort mutation
// over it.
//
// # Overview
//
// A fiber is one element's render-state record inside the framework's
// internal tree. The framework owns every fiber; this package never
// allocates, frees, or restructures them. It reads the navigation links
// (Return, Child, Sibling), normalizes the heterogeneous per-node payloads
// into one query surface, and offers a single narrow write path
// (TrySetState) that injects updates through the framework's own queue.
//
// # Node Payloads
//
// Each node carries three payloads whose shapes vary by node flavor:
//
//	ElementType:    component identity (pointer/string), nil for text nodes
//	Props:          string for text nodes, otherwise a data bag
//	MemoizedState:  nil | *StateCell chain | class-held bag
//
// The discriminant for state is the HookKinds side list, not the state
// value itself: a non-nil kinds list marks the node hook-based, and the
// kinds are paired positionally with the cell chain (kind i describes the
// cell after i Next hops).
//
// # Traversal
//
// Siblings, Children, and Walk return iter.Seq sequences. They are lazy
// and restartable: every range re-follows the live links, so a caller that
// re-resolves its root from the registry always walks the latest committed
// tree, and a caller ranging with an early break never visits the rest of
// the tree. Walk is pre-order depth-first.
//
// Traversal assumes the producer keeps the structure tree-shaped. A cyclic
// sibling chain makes the sequence infinite; no cycle guard is attempted.
//
// # Normalization
//
// Record is the lazy key/value view used for both props and class state
// bags. It resolves fields by reflection on demand instead of copying the
// bag, which keeps large or self-referential platform objects cheap until
// a field is actually read. Text-node string props normalize to the
// single-field record {text: ...}.
//
// StateOf folds the three state shapes into a tagged State value
// (StateNone | StateHooks | StateBag) so callers branch on one
// discriminant instead of re-probing node internals at every call site.
//
// # Mutation
//
// TrySetState applies only to class-based nodes and fails soft: a false
// result covers every precondition miss (hook-based node, missing state
// node, missing enqueue capability). HookView.Dispatch is the hook-side
// counterpart and mirrors calling the framework's update function
// directly, including the nil-func panic when no dispatch exists.
//
// # Ownership and Staleness
//
// All links are non-owning. A commit replaces the registry entry but does
// not mutate previously committed nodes, so a traversal holding nodes from
// an older commit stays internally consistent; it is merely stale. Nothing
// here guards against reading a tree the framework has since abandoned.
package fiber
