// Package vdom describes replacement subtrees for hydration.
//
// A VNode tree is a lightweight description of markup that a subtree builder
// returns; Materialize turns it into live nodes ready to be spliced into the
// document. There is deliberately no diffing, patching, or keyed
// reconciliation here: replacements are built once and inserted once.
//
// Elements are created with variadic factory functions:
//
//	Div(Class("card"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Pre-existing live nodes (typically the original children of a replaced
// element) are re-embedded with Adopt/AdoptAll:
//
//	Div(Style("border: 1px solid red"),
//	    vdom.AdoptAll(orig.ExtractChildren()),
//	)
package vdom
