// Package reactive provides the ownership-scope lifecycle for Graft.
//
// Every hydration pass runs under an Owner. Replacement subtrees spliced into
// the live tree register their teardown with the Owner via OnCleanup; the
// subtree is detached only when that Owner (or an ancestor) is disposed, which
// may be long after the traversal that created it returned.
//
// Owners form a hierarchy: disposing an Owner disposes its children first,
// then runs its own cleanups in reverse registration order.
//
// Signal[T] is a minimal observable value container, used for completion
// flags ("hydration of this region is done") and for embedding applications
// that want to react to hydration state:
//
//	done := reactive.NewSignal(false)
//	done.Subscribe(func(v bool) { ... })
//	done.Set(true)
package reactive
