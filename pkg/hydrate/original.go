package hydrate

import (
	"golang.org/x/net/html"

	"github.com/graft-dev/graft/pkg/confined"
	"github.com/graft-dev/graft/pkg/dom"
)

// OriginalElement is an exclusive capture of a live element, used to move
// the children that element already has somewhere else in the replacement
// output without copying or re-parsing.
//
// The capture is only meaningful while the underlying element stays in the
// document. Operating on a capture whose element has since been detached is
// a fatal invariant violation, never a silent empty result.
type OriginalElement struct {
	backend dom.Backend
	el      *confined.Value[*html.Node]
}

// Capture captures el with the given Hydrator's backend. With the live
// backend, el must be a live element node.
func (h *Hydrator) Capture(el *html.Node) *OriginalElement {
	if h.backend.Live() && !dom.IsElement(el) {
		panic("hydrate: Capture requires an element node")
	}
	return &OriginalElement{
		backend: h.backend,
		el:      confined.Of(el),
	}
}

// Capture captures el with the build-selected backend.
func Capture(el *html.Node) *OriginalElement {
	return defaultHydrator.Capture(el)
}

// Element returns the captured element.
func (o *OriginalElement) Element() *html.Node {
	return o.el.Get()
}

// ExtractChildren detaches and returns, in document order, every child the
// captured element holds at this moment. With the null backend it returns
// nil.
//
// The capture must still be live: an element that has been removed from its
// tree since capture (its parent link severed) triggers a panic rather than
// a silently stale or empty result. Elements inside detached fragments that
// are about to be spliced in still count as live, which is what hierarchical
// builder recursion relies on.
func (o *OriginalElement) ExtractChildren() []*html.Node {
	if !o.backend.Live() {
		return nil
	}
	el := o.el.Get()
	if el == nil || el.Parent == nil {
		panic("hydrate: captured element has been removed from its tree")
	}
	return o.backend.ExtractChildren(el)
}
