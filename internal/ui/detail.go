package ui

import (
	"fmt"
	"strings"

	"github.com/lilactown/react-repl/internal/fiber"
)

// detailLines renders the detail pane body for one node: its identity,
// props record, and reconstructed state. Pure so it can be tested without
// a terminal.
func detailLines(n *fiber.Node, s Styles) []string {
	if n == nil {
		return []string{s.MutedText.Render("no node selected")}
	}

	var lines []string
	lines = append(lines, s.AccentText.Render(fiber.TypeLabel(n)))

	if parent := n.Parent(); parent != nil {
		lines = append(lines, s.MutedText.Render("parent: "+fiber.TypeLabel(parent)))
	}
	if n.StateNode != nil {
		lines = append(lines, s.MutedText.Render(fmt.Sprintf("state node: %T", n.StateNode)))
	}

	lines = append(lines, "", s.KindText.Render("props"))
	lines = append(lines, recordLines(fiber.PropsOf(n), s)...)

	lines = append(lines, "", s.KindText.Render("state"))
	lines = append(lines, stateLines(fiber.StateOf(n), s)...)

	return lines
}

func recordLines(r fiber.Record, s Styles) []string {
	keys := r.Keys()
	if len(keys) == 0 {
		return []string{s.MutedText.Render("  (none)")}
	}
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		v, _ := r.Get(k)
		lines = append(lines, "  "+s.Text.Render(k)+": "+s.ValueText.Render(formatValue(v)))
	}
	return lines
}

func stateLines(st fiber.State, s Styles) []string {
	switch st.Kind {
	case fiber.StateHooks:
		if len(st.Hooks) == 0 {
			return []string{s.MutedText.Render("  (hook-based, no cells)")}
		}
		lines := make([]string, 0, len(st.Hooks))
		for i, h := range st.Hooks {
			line := fmt.Sprintf("  %d %s: %s", i, s.KindText.Render(string(h.Kind)), s.ValueText.Render(formatValue(h.Value)))
			if h.Dispatch != nil {
				line += s.MutedText.Render("  (dispatch)")
			}
			if h.Truncated {
				line += s.DangerText.Render("  (chain truncated)")
			}
			lines = append(lines, line)
		}
		return lines
	case fiber.StateBag:
		return recordLines(st.Bag, s)
	default:
		return []string{s.MutedText.Render("  (none)")}
	}
}

const valueLimit = 60

func formatValue(v any) string {
	var out string
	switch val := v.(type) {
	case nil:
		out = "nil"
	case string:
		out = fmt.Sprintf("%q", val)
	default:
		out = fmt.Sprintf("%v", val)
	}
	if runes := []rune(out); len(runes) > valueLimit {
		out = string(runes[:valueLimit-1]) + "…"
	}
	return strings.ReplaceAll(out, "\n", "\\n")
}
