package fiber

import "fmt"

// StateKind discriminates the three shapes a node's associated state can
// take once normalized.
type StateKind int

const (
	// StateNone means the node holds no associated state.
	StateNone StateKind = iota

	// StateHooks means the state is a chain of hook cells.
	StateHooks

	// StateBag means the state is a class-held data bag.
	StateBag
)

// HookView is the normalized view of one hook cell: its kind from the side
// list, its current value, and the dispatch capability when the cell has an
// update queue. Dispatch is nil otherwise; calling a nil Dispatch is a
// usage error and panics like any nil func call.
type HookView struct {
	Kind     HookKind
	Value    any
	Dispatch func(args ...any) any

	// Truncated is set on the last view when the cell chain outran the
	// kinds side list and reconstruction stopped early.
	Truncated bool
}

// State is the tagged result of reconstructing a node's associated state.
// Exactly one of Hooks and Bag is meaningful, selected by Kind.
type State struct {
	Kind  StateKind
	Hooks []HookView
	Bag   Record
}

// HasHookState reports whether the node carries hook-based state: the
// presence of the kinds side list is the discriminant, not the shape of
// MemoizedState itself.
func HasHookState(n *Node) bool {
	return n != nil && n.HookKinds != nil
}

// HooksOf walks a hook-based node's cell chain, pairing cell i with
// HookKinds[i]. The chain and the side list should have equal length; when
// the side list is shorter the walk stops at its end and marks the last
// yielded view Truncated rather than misaligning silently. Returns nil for
// non-hook nodes.
func HooksOf(n *Node) []HookView {
	if !HasHookState(n) {
		return nil
	}
	cell, _ := n.MemoizedState.(*StateCell)
	views := make([]HookView, 0, len(n.HookKinds))
	for i := 0; cell != nil; i++ {
		if i >= len(n.HookKinds) {
			if len(views) > 0 {
				views[len(views)-1].Truncated = true
			}
			break
		}
		v := HookView{Kind: n.HookKinds[i], Value: cell.Memoized}
		if cell.Queue != nil {
			v.Dispatch = cell.Queue.Dispatch
		}
		views = append(views, v)
		cell = cell.Next
	}
	return views
}

// StateOf normalizes a node's associated state into the tagged State
// variant: hook views for hook-based nodes, a Record over the raw bag for
// class-based ones, StateNone when there is nothing to show.
func StateOf(n *Node) State {
	if n == nil {
		return State{Kind: StateNone}
	}
	if HasHookState(n) {
		return State{Kind: StateHooks, Hooks: HooksOf(n)}
	}
	if n.MemoizedState == nil {
		return State{Kind: StateNone}
	}
	return State{Kind: StateBag, Bag: NewRecord(n.MemoizedState)}
}

// TypeLabel renders a node's element type for display. Matching never uses
// this; FindAll compares raw identities.
func TypeLabel(n *Node) string {
	if n == nil {
		return ""
	}
	switch t := n.ElementType.(type) {
	case nil:
		return TextLabel
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case interface{ Name() string }:
		return t.Name()
	default:
		return fmt.Sprintf("%T", t)
	}
}
