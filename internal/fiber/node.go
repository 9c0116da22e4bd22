package fiber

// RootID identifies one independently rendered application instance.
// The framework assigns ids; a single-app process conventionally uses 1.
type RootID int

// DefaultRoot is the root id used when a caller does not name one.
const DefaultRoot RootID = 1

// HookKind tags one cell in a node's hook chain. Kinds live in a side
// list on the node (Node.HookKinds) and are matched to cells by position.
type HookKind string

const (
	KindState  HookKind = "state"
	KindEffect HookKind = "effect"
	KindRef    HookKind = "ref"
	KindMemo   HookKind = "memo"
)

// TextLabel is the display label for nodes with a nil element type.
const TextLabel = "TEXT"

// Node is one element's render-state record in the framework's internal
// tree. The framework owns every node; this package only navigates and
// reads. Link fields are non-owning references whose validity ends at the
// framework's next commit.
type Node struct {
	// ElementType is the component identity that determined how this node
	// rendered: typically a pointer to a component definition, a string for
	// host elements, or nil for a text node. Queries match it with ==.
	ElementType any

	// Props holds the last rendered input: a plain string for text nodes,
	// otherwise a data bag (map, struct, or pointer to struct).
	Props any

	// MemoizedState is nil, the head of a hook cell chain, or an opaque
	// class-held state bag. Interpret it via HookKinds: a non-nil kinds
	// list marks the node hook-based.
	MemoizedState any

	// HookKinds is the side list of hook kinds, positionally matched to
	// the cell chain reached through MemoizedState. Nil for nodes without
	// hook state.
	HookKinds []HookKind

	// Return, Child, and Sibling are the navigation links. Any of them
	// may be nil.
	Return  *Node
	Child   *Node
	Sibling *Node

	// StateNode is the platform handle: a concrete host object, or for
	// class-based nodes an instance that may expose StateEnqueuer.
	StateNode any
}

// StateCell is one cell in a hook chain. Its kind is not stored here; the
// owning node's HookKinds list describes cell i after i Next hops.
type StateCell struct {
	Memoized any
	Queue    *UpdateQueue
	Next     *StateCell
}

// UpdateQueue exposes the framework's dispatch capability for one hook cell.
type UpdateQueue struct {
	Dispatch func(args ...any) any
}

// StateEnqueuer is the capability probe for class-based state updates.
// A class instance stored in Node.StateNode implements it when the node
// accepts imperative state injection.
type StateEnqueuer interface {
	EnqueueSetState(updater any)
}

// ChildNode returns the first child link, nil-soft.
func (n *Node) ChildNode() *Node {
	if n == nil {
		return nil
	}
	return n.Child
}

// Parent returns the return link, nil-soft.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.Return
}

// NextSibling returns the sibling link, nil-soft.
func (n *Node) NextSibling() *Node {
	if n == nil {
		return nil
	}
	return n.Sibling
}

// HasChild reports whether the node has at least one child.
func (n *Node) HasChild() bool {
	return n != nil && n.Child != nil
}

// IsText reports whether the node is a text node (nil element type).
func (n *Node) IsText() bool {
	return n != nil && n.ElementType == nil
}
