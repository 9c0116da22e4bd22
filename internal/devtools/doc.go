// Package devtools installs the commit-capture hook that feeds the
// registry.
//
// # Overview
//
// Frameworks with devtools support expose a well-known hook object and
// call its OnCommitFiberRoot after finalizing each frame. This package
// owns the Go rendition of that object (Global) and the one side-effecting
// installation step (Install) that patches capture logic into it.
//
// # Wrapping Semantics
//
// Install never displaces an existing subscriber. The patched callback
// invokes whatever was installed before it, then records the commit, so a
// real devtools frontend and this tool can observe the same stream. The
// capture write is fire-and-forget: it replaces one registry entry and
// returns. Panics raised by a wrapped subscriber are not recovered; the
// contract is identical to patching the hook by hand.
//
// # Once-Only Installation
//
// Installation is guarded by sync.Once. The hook is patched during process
// startup (the "developer preload") and repeat calls do nothing, which
// keeps the subscriber chain from growing if wiring code runs twice.
// Tests exercise the unexported install directly against private hooks
// and stores.
package devtools
