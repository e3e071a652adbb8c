package hydrate

import (
	"golang.org/x/net/html"

	"github.com/graft-dev/graft/pkg/confined"
	"github.com/graft-dev/graft/pkg/reactive"
	"github.com/graft-dev/graft/pkg/vdom"
)

// frame is one suspended level of the depth-first walk: the parent node and
// the child index to resume at.
type frame struct {
	node  *html.Node
	index int
}

// Hydrate walks the subtree rooted at root depth-first in document order,
// testing every node against replace exactly once, the root included. Each
// match is spliced eagerly: the replacement is inserted before the matched
// element, its disposal is registered on owner, and the element is detached
// before the walk proceeds. The walk never descends into a replacement or a
// detached subtree.
//
// The walk uses an explicit frame stack, so trees nested far beyond the call
// stack limit are fine.
func (h *Hydrator) Hydrate(owner *reactive.Owner, root *html.Node, replace Replacer) {
	if !h.backend.Live() {
		return
	}
	if _, replaced := h.checkNode(owner, root, 0, replace); replaced {
		return
	}
	h.walk(owner, root, replace)
}

// HydrateChildren is Hydrate without the root test: the subtree below node
// is walked, node itself is left alone. Entry points that already consumed
// the root use this.
func (h *Hydrator) HydrateChildren(owner *reactive.Owner, node *html.Node, replace Replacer) {
	if !h.backend.Live() {
		return
	}
	h.walk(owner, node, replace)
}

func (h *Hydrator) walk(owner *reactive.Owner, root *html.Node, replace Replacer) {
	current := root
	index := 0
	var stack []frame

	for {
		if c := h.backend.ChildAt(current, index); c != nil {
			if next, replaced := h.checkNode(owner, c, index, replace); replaced {
				index = next
				continue
			}
			if h.backend.HasChildren(c) {
				stack = append(stack, frame{node: current, index: index + 1})
				current = c
				index = 0
			} else {
				index++
			}
		} else if len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			current = top.node
			index = top.index
		} else {
			return
		}
	}
}

// checkNode tests one node against replace and performs the splice on a
// match. It returns the index at which the caller should resume iterating
// the parent's child list, and whether a replacement happened.
//
// The resume index must be recomputed by scanning forward from start: the
// insertion shifted the ordinal positions of the matched element and every
// sibling after it.
func (h *Hydrator) checkNode(owner *reactive.Owner, node *html.Node, start int, replace Replacer) (int, bool) {
	if node.Type != html.ElementNode {
		return 0, false
	}
	builder, ok := replace(node)
	if !ok {
		return 0, false
	}

	nodes := vdom.Materialize(builder())

	parent := node.Parent
	if parent == nil {
		panic("hydrate: matched element has no parent at replacement time")
	}
	for _, n := range nodes {
		h.backend.InsertBefore(parent, n, node)
	}
	h.registerDisposal(owner, nodes)

	// Find the position the matched element now occupies.
	index := start
	for c := h.backend.ChildAt(parent, index); c != nil; c = h.backend.ChildAt(parent, index) {
		if c == node {
			break
		}
		index++
	}
	h.backend.Detach(node)

	return index, true
}

// registerDisposal hands the replacement subtree to the owner scope: exactly
// one callback per replacement, detaching whichever of its nodes are still
// attached when the scope is torn down.
func (h *Hydrator) registerDisposal(owner *reactive.Owner, nodes []*html.Node) {
	if owner == nil || len(nodes) == 0 {
		return
	}
	wrapped := confined.Of(nodes)
	backend := h.backend
	owner.OnCleanup(func() {
		for _, n := range wrapped.Get() {
			backend.Detach(n)
		}
	})
}
