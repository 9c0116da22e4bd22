package ui

import (
	"fmt"
	"strings"

	"github.com/lilactown/react-repl/internal/fiber"
)

// row is one visible line in the tree pane.
type row struct {
	node  *fiber.Node
	depth int
}

// flatten materializes the committed tree into display rows, pre-order.
// The UI rebuilds rows on every snapshot so the pane always shows the
// latest commit; the core's lazy walks stay lazy, materialization happens
// only at this display edge.
func flatten(root *fiber.Node) []row {
	var rows []row
	var rec func(n *fiber.Node, depth int)
	rec = func(n *fiber.Node, depth int) {
		if n == nil {
			return
		}
		rows = append(rows, row{node: n, depth: depth})
		for c := range fiber.Children(n) {
			rec(c, depth+1)
		}
	}
	rec(root, 0)
	return rows
}

// rowLabel renders one row's text: indentation, display label, and a
// short annotation for the node's state shape.
func rowLabel(r row) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", r.depth))

	if r.node.IsText() {
		b.WriteString(fmt.Sprintf("%q", previewText(r.node)))
		return b.String()
	}

	b.WriteString(fiber.TypeLabel(r.node))
	switch st := fiber.StateOf(r.node); st.Kind {
	case fiber.StateHooks:
		b.WriteString(fmt.Sprintf("  [hooks:%d]", len(st.Hooks)))
	case fiber.StateBag:
		b.WriteString("  [state]")
	}
	return b.String()
}

const textPreviewLimit = 24

func previewText(n *fiber.Node) string {
	s, _ := n.Props.(string)
	if runes := []rune(s); len(runes) > textPreviewLimit {
		return string(runes[:textPreviewLimit-1]) + "…"
	}
	return s
}

// clampCursor keeps the selection inside the row slice after a snapshot
// shrinks the tree.
func clampCursor(cursor, rows int) int {
	if rows == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= rows {
		return rows - 1
	}
	return cursor
}
