package hydrate

import (
	"golang.org/x/net/html"

	"github.com/graft-dev/graft/pkg/dom"
	"github.com/graft-dev/graft/pkg/vdom"
)

// Replacer decides, per element, whether to replace it. Returning a Builder
// and true triggers replacement; returning false leaves the element and its
// descendants to ordinary traversal. It is called once per element visited,
// in document order, and must not mutate the subtree being traversed except
// through the engine's own insertion point.
type Replacer func(el *html.Node) (Builder, bool)

// Builder produces the replacement subtree for one matched element. It is
// invoked exactly once per match, synchronously, at the point of replacement.
type Builder func() *vdom.VNode

// Hydrator runs hydration passes against a dom.Backend.
//
// The zero-value-equivalent New() uses the backend selected at build time,
// which is the live tree unless the build carries the graft_nodom tag; with
// the null backend every pass is a no-op.
type Hydrator struct {
	backend dom.Backend
}

// HydratorOption configures a Hydrator.
type HydratorOption func(*Hydrator)

// WithBackend overrides the build-selected backend.
func WithBackend(b dom.Backend) HydratorOption {
	return func(h *Hydrator) {
		h.backend = b
	}
}

// New creates a Hydrator.
func New(opts ...HydratorOption) *Hydrator {
	h := &Hydrator{backend: dom.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Backend returns the backend this Hydrator operates on.
func (h *Hydrator) Backend() dom.Backend {
	return h.backend
}

// defaultHydrator backs the package-level convenience functions.
var defaultHydrator = New()
