package fiber

// TrySetState enqueues a class-style state update on the node's instance.
// It is strictly best-effort and returns false, never panicking, when the
// node is hook-based, has no state node, or the state node does not expose
// the enqueue capability. The updater's shape is not validated; a bad
// updater fails inside the framework, not here.
func TrySetState(n *Node, updater any) bool {
	if n == nil || HasHookState(n) {
		return false
	}
	enq, ok := n.StateNode.(StateEnqueuer)
	if !ok {
		return false
	}
	enq.EnqueueSetState(updater)
	return true
}
