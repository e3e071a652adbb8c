// Package dom is Graft's view of the live node tree.
//
// The live tree is an x/net/html node tree: the document as the host parser
// built it, mutated in place as hydration splices replacements in. The
// package provides index-based child access (DOM childNodes semantics),
// splice primitives (InsertBefore, Detach), attribute helpers, and fragment
// parsing in an element context.
//
// Two capability variants exist behind the Backend interface: Live carries
// the full semantics; Null is the stand-in for environments with no live
// tree at all, where every operation is a no-op returning empty results.
// Default returns Live unless the build carries the graft_nodom tag.
package dom
