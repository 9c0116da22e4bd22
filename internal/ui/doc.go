// Package ui implements the Bubble Tea terminal front end for react-repl.
//
// # Overview
//
// The UI is a two-pane inspector over the registry's latest committed
// tree: a tree pane listing every node in pre-order with depth
// indentation, and a detail pane showing the selected node's props and
// reconstructed state. A tick message re-fetches the current root at the
// configured cadence, so the display follows the live application without
// any push channel from the producer.
//
// # Layout
//
//	┌ header: tool name, active root ──────────────────────┐
//	├ tree pane (pre-order rows) ┬ detail pane (viewport) ─┤
//	├ footer: key hints / search input ────────────────────┤
//	└──────────────────────────────────────────────────────┘
//
// # Display Edge
//
// Materialization happens only here: flatten walks the committed tree
// into rows once per snapshot, and detailLines formats one node's records
// on selection. The core packages stay lazy; the UI pays the eager cost
// because it is the one consumer that genuinely needs the whole picture.
//
// # Theming
//
// Themes are lipgloss palettes cycled with T and persisted through the
// prefs package. GetTheme falls back to Dracula for unknown names so a
// stale prefs file never breaks startup.
package ui
