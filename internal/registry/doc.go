// Package registry holds the latest committed render tree per application
// root.
//
// # Overview
//
// The registry is the hand-off point between the capture hook and every
// inspection operation. The hook writes one entry per root id on each
// framework commit; traversal, queries, and the UI read whichever entry is
// current when they start.
//
// # Concurrency Model
//
// The store is a single-writer, many-reader table guarded by an RWMutex.
// The capture hook is the only writer in a live process. Readers take the
// lock only for the map lookup; once a reader holds a root node it walks
// the tree outside the lock. That is safe because committed trees are
// never mutated in place: a new commit replaces the table entry and
// leaves the old object graph intact. Reads are therefore snapshot-consistent
// per call, but two calls spanning a commit may see different trees.
//
// # Lifecycle
//
// Entries are created on a root's first commit and overwritten on each
// subsequent one. Nothing deletes them: a root torn down by the framework
// leaves a stale entry behind, which is accepted. Reset exists for tests
// and demo restarts only.
//
// # The Default Store
//
// Default is process-global on purpose. It models the host's single
// registry of live application roots, the same way the framework's own
// devtools hook object is a process-wide singleton. Code under test
// constructs private Stores instead.
package registry
