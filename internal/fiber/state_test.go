package fiber

import "testing"

// chainOf links the given values into a cell chain, attaching a queue with
// a recording dispatch to cells whose index appears in withQueue.
func chainOf(values []any, withQueue ...int) (*StateCell, *[]int) {
	var calls []int
	var head *StateCell
	for i := len(values) - 1; i >= 0; i-- {
		cell := &StateCell{Memoized: values[i], Next: head}
		for _, q := range withQueue {
			if q == i {
				idx := i
				cell.Queue = &UpdateQueue{Dispatch: func(args ...any) any {
					calls = append(calls, idx)
					return nil
				}}
			}
		}
		head = cell
	}
	return head, &calls
}

func TestHasHookState(t *testing.T) {
	cases := []struct {
		name string
		node *Node
		want bool
	}{
		{"nil_node", nil, false},
		{"no_kinds", &Node{MemoizedState: map[string]any{"n": 1}}, false},
		{"empty_kinds", &Node{HookKinds: []HookKind{}}, true},
		{"kinds", &Node{HookKinds: []HookKind{KindState}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasHookState(tc.node); got != tc.want {
				t.Fatalf("HasHookState = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHooksOfPairsKindsPositionally(t *testing.T) {
	head, _ := chainOf([]any{1, "two", 3.0})
	n := &Node{
		HookKinds:     []HookKind{KindState, KindRef, KindMemo},
		MemoizedState: head,
	}

	views := HooksOf(n)
	if len(views) != 3 {
		t.Fatalf("len(views) = %d, want 3", len(views))
	}
	wantKinds := []HookKind{KindState, KindRef, KindMemo}
	wantValues := []any{1, "two", 3.0}
	for i, v := range views {
		if v.Kind != wantKinds[i] {
			t.Fatalf("views[%d].Kind = %q, want %q", i, v.Kind, wantKinds[i])
		}
		if v.Value != wantValues[i] {
			t.Fatalf("views[%d].Value = %v, want %v", i, v.Value, wantValues[i])
		}
		if v.Truncated {
			t.Fatalf("views[%d].Truncated = true on a matched chain", i)
		}
	}
}

func TestHooksOfDispatchOnlyWhenQueued(t *testing.T) {
	head, calls := chainOf([]any{10, 20}, 0)
	n := &Node{
		HookKinds:     []HookKind{KindState, KindEffect},
		MemoizedState: head,
	}

	views := HooksOf(n)
	if views[0].Dispatch == nil {
		t.Fatalf("views[0].Dispatch = nil, want the queue's dispatch")
	}
	if views[1].Dispatch != nil {
		t.Fatalf("views[1].Dispatch present on a queue-less cell")
	}

	views[0].Dispatch(5)
	if len(*calls) != 1 || (*calls)[0] != 0 {
		t.Fatalf("dispatch calls = %v, want [0]", *calls)
	}
}

func TestHooksOfTruncatesOnShortKindsList(t *testing.T) {
	head, _ := chainOf([]any{1, 2, 3})
	n := &Node{
		HookKinds:     []HookKind{KindState, KindState},
		MemoizedState: head,
	}

	views := HooksOf(n)
	if len(views) != 2 {
		t.Fatalf("len(views) = %d, want 2 (truncated to kinds list)", len(views))
	}
	if !views[1].Truncated {
		t.Fatalf("last view not marked Truncated after early stop")
	}
}

func TestHooksOfNonHookNode(t *testing.T) {
	if got := HooksOf(&Node{MemoizedState: map[string]any{"x": 1}}); got != nil {
		t.Fatalf("HooksOf on bag node = %v, want nil", got)
	}
	if got := HooksOf(nil); got != nil {
		t.Fatalf("HooksOf(nil) = %v, want nil", got)
	}
}

func TestStateOfVariants(t *testing.T) {
	head, _ := chainOf([]any{7})

	cases := []struct {
		name string
		node *Node
		want StateKind
	}{
		{"nil_node", nil, StateNone},
		{"stateless", &Node{}, StateNone},
		{"hooks", &Node{HookKinds: []HookKind{KindState}, MemoizedState: head}, StateHooks},
		{"bag", &Node{MemoizedState: map[string]any{"count": 4}}, StateBag},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := StateOf(tc.node)
			if st.Kind != tc.want {
				t.Fatalf("StateOf.Kind = %v, want %v", st.Kind, tc.want)
			}
		})
	}

	st := StateOf(&Node{MemoizedState: map[string]any{"count": 4}})
	if v, ok := st.Bag.Get("count"); !ok || v != 4 {
		t.Fatalf("bag Get(count) = %v, %v, want 4, true", v, ok)
	}
}

type named struct{ name string }

func (c *named) Name() string { return c.name }

func TestTypeLabel(t *testing.T) {
	cases := []struct {
		name string
		node *Node
		want string
	}{
		{"nil_node", nil, ""},
		{"text", &Node{Props: "hi"}, TextLabel},
		{"host_string", &Node{ElementType: "div"}, "div"},
		{"named", &Node{ElementType: &named{name: "Counter"}}, "Counter"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TypeLabel(tc.node); got != tc.want {
				t.Fatalf("TypeLabel = %q, want %q", got, tc.want)
			}
		})
	}
}
