package fiber

import "iter"

// Siblings yields n and every node reachable through Sibling links, in
// order, stopping at the first nil link. Yields nothing for a nil start.
// The sequence is recomputed from the live links on every range, so it
// always reflects whatever tree the caller currently holds.
func Siblings(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for cur := n; cur != nil; cur = cur.Sibling {
			if !yield(cur) {
				return
			}
		}
	}
}

// Children yields the node's children in sibling order. Empty when the
// node is nil or childless.
func Children(n *Node) iter.Seq[*Node] {
	return Siblings(n.ChildNode())
}

// Walk yields root and every descendant in pre-order: a node before its
// children, a subtree before its next sibling's subtree. Empty for a nil
// root. Walk never caches; ranging twice walks the links twice.
func Walk(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walk(root, yield)
	}
}

func walk(n *Node, yield func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !yield(n) {
		return false
	}
	for c := n.Child; c != nil; c = c.Sibling {
		if !walk(c, yield) {
			return false
		}
	}
	return true
}
