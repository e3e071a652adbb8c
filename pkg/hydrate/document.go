package hydrate

import (
	"sync/atomic"

	"golang.org/x/net/html"

	"github.com/graft-dev/graft/pkg/dom"
	"github.com/graft-dev/graft/pkg/reactive"
)

// documentStarted guards whole-document hydration. The document is hydrated
// exactly once per process even if entry is triggered more than once (e.g.
// once synchronously and once from a load event); only the single
// not-started to started transition proceeds.
var documentStarted atomic.Bool

// resetDocumentGuard rewinds the once-guard. Tests only.
func resetDocumentGuard() {
	documentStarted.Store(false)
}

// HydrateBody hydrates the whole document, starting at the body: every
// element under the body is tested against replace, exactly once per
// process. Duplicate calls return nil without touching the tree.
//
// The returned Owner holds the disposal callbacks of every replacement this
// pass spliced in; disposing it tears them all down.
func (h *Hydrator) HydrateBody(doc *html.Node, replace Replacer, opts ...Option) *reactive.Owner {
	if !documentStarted.CompareAndSwap(false, true) {
		return nil
	}

	o := applyOpts(opts)
	owner := reactive.NewOwner(nil)

	if h.backend.Live() {
		body := dom.FindBody(doc)
		if body == nil {
			panic("hydrate: document has no body")
		}
		h.HydrateChildren(owner, body, replace)
	}

	h.finish(o)
	return owner
}

// HydrateBody is the package-level form of Hydrator.HydrateBody.
func HydrateBody(doc *html.Node, replace Replacer, opts ...Option) *reactive.Owner {
	return defaultHydrator.HydrateBody(doc, replace, opts...)
}
