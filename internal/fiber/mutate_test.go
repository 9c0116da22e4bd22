package fiber

import "testing"

type instance struct {
	enqueued []any
}

func (i *instance) EnqueueSetState(updater any) {
	i.enqueued = append(i.enqueued, updater)
}

func TestTrySetStateSuccess(t *testing.T) {
	inst := &instance{}
	n := &Node{StateNode: inst, MemoizedState: map[string]any{"count": 1}}

	updater := map[string]any{"count": 2}
	if !TrySetState(n, updater) {
		t.Fatalf("TrySetState = false, want true")
	}
	if len(inst.enqueued) != 1 {
		t.Fatalf("enqueued %d updates, want 1", len(inst.enqueued))
	}
	if got := inst.enqueued[0].(map[string]any)["count"]; got != 2 {
		t.Fatalf("enqueued updater count = %v, want 2", got)
	}
}

func TestTrySetStateFailsSoft(t *testing.T) {
	cases := []struct {
		name string
		node *Node
	}{
		{"nil_node", nil},
		{"hook_based", &Node{HookKinds: []HookKind{KindState}, StateNode: &instance{}}},
		{"no_state_node", &Node{}},
		{"no_capability", &Node{StateNode: struct{}{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if TrySetState(tc.node, "update") {
				t.Fatalf("TrySetState = true, want false")
			}
		})
	}
}
