package inspect

import "github.com/lilactown/react-repl/internal/fiber"

// Description is the eager, display-oriented materialization of one node
// and its whole subtree.
type Description struct {
	Type      any
	Label     string
	Props     fiber.Record
	State     fiber.State
	StateNode any
	Parent    *fiber.Node
	Children  []*Description
}

// Describe builds the full recursive description of n, or nil for a nil
// node. Unlike every other read in this package it is eager: cost is
// proportional to the subtree, so avoid calling it on large trees in hot
// paths.
func Describe(n *fiber.Node) *Description {
	if n == nil {
		return nil
	}
	d := &Description{
		Type:      n.ElementType,
		Label:     fiber.TypeLabel(n),
		Props:     fiber.PropsOf(n),
		State:     fiber.StateOf(n),
		StateNode: n.StateNode,
		Parent:    n.Parent(),
	}
	for c := range fiber.Children(n) {
		d.Children = append(d.Children, Describe(c))
	}
	return d
}
