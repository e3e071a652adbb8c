package hydrate

import (
	"golang.org/x/net/html"

	"github.com/graft-dev/graft/pkg/reactive"
)

// entryOpts holds per-entry-point options.
type entryOpts struct {
	done *reactive.Signal[bool]
}

// Option configures a hydration entry point.
type Option func(*entryOpts)

// WithDone supplies a completion flag: it is set to true exactly once, after
// the entry point's traversal fully completes. Embedding applications
// observe "hydration of this region is done" through it instead of polling
// the tree.
func WithDone(flag *reactive.Signal[bool]) Option {
	return func(o *entryOpts) {
		o.done = flag
	}
}

func applyOpts(opts []Option) entryOpts {
	var o entryOpts
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// finish fires the completion flag. The flag tracks traversal completion,
// so it stays untouched on the null backend where no traversal runs.
func (h *Hydrator) finish(o entryOpts) {
	if h.backend.Live() && o.done != nil {
		o.done.Set(true)
	}
}

// RenderChildren moves the captured element's original children into target,
// in original order. No further traversal runs: the caller already knows
// there is nothing deeper to hydrate.
func (h *Hydrator) RenderChildren(owner *reactive.Owner, orig *OriginalElement, target *html.Node, opts ...Option) {
	o := applyOpts(opts)
	if h.backend.Live() {
		for _, c := range orig.ExtractChildren() {
			h.backend.Append(target, c)
		}
	}
	h.finish(o)
}

// RenderChildrenCont moves the captured element's original children into
// target, then runs the engine over each moved child with replace. This is
// how elements deeper under an already-hydrated region get their own chance
// at replacement; a Builder that wants hierarchical recursion calls this
// with the same replace it was matched by.
func (h *Hydrator) RenderChildrenCont(owner *reactive.Owner, orig *OriginalElement, target *html.Node, replace Replacer, opts ...Option) {
	o := applyOpts(opts)
	if h.backend.Live() {
		children := orig.ExtractChildren()
		for _, c := range children {
			h.backend.Append(target, c)
		}
		for _, c := range children {
			h.Hydrate(owner, c, replace)
		}
	}
	h.finish(o)
}

// RenderStringCont parses markup into a detached fragment in target's
// context, mounts it at target, then runs the engine over each mounted node
// with replace. There is no capture step: the fragment is new, no
// pre-existing element is being taken over. Whatever the parser does with
// malformed markup is passed through unchanged.
func (h *Hydrator) RenderStringCont(owner *reactive.Owner, markup string, target *html.Node, replace Replacer, opts ...Option) error {
	o := applyOpts(opts)
	if h.backend.Live() {
		nodes, err := h.backend.ParseFragment(markup, target)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			h.backend.Append(target, n)
		}
		for _, n := range nodes {
			h.Hydrate(owner, n, replace)
		}
	}
	h.finish(o)
	return nil
}

// RenderChildren moves orig's children into target using the build-selected
// backend.
func RenderChildren(owner *reactive.Owner, orig *OriginalElement, target *html.Node, opts ...Option) {
	defaultHydrator.RenderChildren(owner, orig, target, opts...)
}

// RenderChildrenCont is the package-level form of
// Hydrator.RenderChildrenCont.
func RenderChildrenCont(owner *reactive.Owner, orig *OriginalElement, target *html.Node, replace Replacer, opts ...Option) {
	defaultHydrator.RenderChildrenCont(owner, orig, target, replace, opts...)
}

// RenderStringCont is the package-level form of Hydrator.RenderStringCont.
func RenderStringCont(owner *reactive.Owner, markup string, target *html.Node, replace Replacer, opts ...Option) error {
	return defaultHydrator.RenderStringCont(owner, markup, target, replace, opts...)
}
