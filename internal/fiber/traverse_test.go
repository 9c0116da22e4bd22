package fiber

import (
	"slices"
	"testing"
)

// buildTree wires root -> A -> B with C as A's next sibling and returns
// all four nodes. Shape matches the smallest tree that exercises both
// descent and sibling advance:
//
//	root
//	├── A
//	│   └── B
//	└── C
func buildTree() (root, a, b, c *Node) {
	root = &Node{ElementType: "root"}
	a = &Node{ElementType: "A", Return: root}
	b = &Node{ElementType: "B", Return: a}
	c = &Node{ElementType: "C", Return: root}
	root.Child = a
	a.Child = b
	a.Sibling = c
	return root, a, b, c
}

func labels(seq func(yield func(*Node) bool)) []string {
	var out []string
	for n := range seq {
		out = append(out, TypeLabel(n))
	}
	return out
}

func TestAccessorsNilSoft(t *testing.T) {
	var n *Node
	if n.ChildNode() != nil || n.Parent() != nil || n.NextSibling() != nil {
		t.Fatalf("nil node accessors should all return nil")
	}
	if n.HasChild() {
		t.Fatalf("HasChild on nil node = true, want false")
	}
}

func TestWalkPreOrder(t *testing.T) {
	root, _, _, _ := buildTree()
	got := labels(Walk(root))
	want := []string{"root", "A", "B", "C"}
	if !slices.Equal(got, want) {
		t.Fatalf("Walk order = %v, want %v", got, want)
	}
}

func TestWalkNilRootIsEmpty(t *testing.T) {
	if got := labels(Walk(nil)); len(got) != 0 {
		t.Fatalf("Walk(nil) yielded %v, want nothing", got)
	}
}

func TestWalkVisitsEachNodeOnce(t *testing.T) {
	root, _, _, _ := buildTree()
	seen := make(map[*Node]int)
	for n := range Walk(root) {
		seen[n]++
	}
	if len(seen) != 4 {
		t.Fatalf("visited %d distinct nodes, want 4", len(seen))
	}
	for n, count := range seen {
		if count != 1 {
			t.Fatalf("node %s visited %d times, want 1", TypeLabel(n), count)
		}
	}
}

func TestWalkShortCircuits(t *testing.T) {
	root, _, _, _ := buildTree()
	var got []string
	for n := range Walk(root) {
		got = append(got, TypeLabel(n))
		if TypeLabel(n) == "A" {
			break
		}
	}
	want := []string{"root", "A"}
	if !slices.Equal(got, want) {
		t.Fatalf("short-circuited walk = %v, want %v", got, want)
	}
}

func TestWalkIsRestartable(t *testing.T) {
	root, _, _, _ := buildTree()
	seq := Walk(root)
	first := labels(seq)
	second := labels(seq)
	if !slices.Equal(first, second) {
		t.Fatalf("second range = %v, want %v", second, first)
	}

	// A restarted walk must observe link changes made between ranges.
	root.Child.Sibling = nil
	third := labels(seq)
	want := []string{"root", "A", "B"}
	if !slices.Equal(third, want) {
		t.Fatalf("walk after unlink = %v, want %v", third, want)
	}
}

func TestChildrenEqualsSiblingChainOfChild(t *testing.T) {
	root, a, _, _ := buildTree()

	cases := []struct {
		name string
		node *Node
		want []string
	}{
		{"root", root, []string{"A", "C"}},
		{"inner", a, []string{"B"}},
		{"leaf", a.Child, nil},
		{"nil", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := labels(Children(tc.node))
			chain := labels(Siblings(tc.node.ChildNode()))
			if !slices.Equal(got, chain) {
				t.Fatalf("Children = %v, Siblings(Child) = %v, want equal", got, chain)
			}
			if !slices.Equal(got, tc.want) {
				t.Fatalf("Children = %v, want %v", got, tc.want)
			}
			if (len(got) == 0) == tc.node.HasChild() {
				t.Fatalf("empty children (%d) disagrees with HasChild (%v)", len(got), tc.node.HasChild())
			}
		})
	}
}

func TestSiblingsStartsAtNode(t *testing.T) {
	_, a, _, _ := buildTree()
	got := labels(Siblings(a))
	want := []string{"A", "C"}
	if !slices.Equal(got, want) {
		t.Fatalf("Siblings = %v, want %v", got, want)
	}
}
