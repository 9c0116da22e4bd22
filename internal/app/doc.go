// Package app provides the orchestration layer for react-repl.
//
// # Overview
//
// This package is the composition root. It loads configuration and user
// preferences, performs the one side-effecting installation step (patching
// the global devtools hook so commits are captured into the default
// registry), optionally starts the built-in demo producer, and hands
// control to the TUI.
//
// # Startup Sequence
//
//	Run()
//	 ├─> config.Load()        tool settings (root id, tick cadence)
//	 ├─> prefs.Load()         cosmetic preferences (theme)
//	 ├─> devtools.Install()   patch the global hook, once per process
//	 ├─> demoapp producer     commits frames through the hook (optional)
//	 └─> ui.Run()             inspector TUI, blocks until quit
//
// # Data Flow
//
//	producer ──commit──> devtools hook ──capture──> registry.Default
//	                                                     │
//	ui tick ──fetch root──────────────────────────<──────┘
//
// The hook installation happens before any producer starts so the very
// first committed frame is already captured; the UI merely polls the
// registry and needs no channel back to the producer.
package app
