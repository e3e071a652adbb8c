// Package rules maps marker attributes to named subtree builders.
//
// The hydration engine itself imposes no schema on what a predicate
// inspects. This package provides the common case: elements carry a marker
// attribute (data-graft by default) whose value names a registered builder.
// The CLI and the preview server drive their passes through a Registry.
package rules

import (
	"sort"
	"sync"

	"golang.org/x/net/html"

	"github.com/graft-dev/graft/pkg/dom"
	"github.com/graft-dev/graft/pkg/hydrate"
	"github.com/graft-dev/graft/pkg/reactive"
	"github.com/graft-dev/graft/pkg/vdom"
)

// DefaultAttr is the marker attribute matched when none is configured.
const DefaultAttr = "data-graft"

// DefaultName is the builder looked up when the marker attribute has no
// value.
const DefaultName = "default"

// BuildContext carries what a builder needs to compose its replacement,
// including the running pass's own predicate for hierarchical recursion.
type BuildContext struct {
	Hydrator *hydrate.Hydrator
	Owner    *reactive.Owner

	// Replace is the predicate of the pass that matched this element. A
	// builder that re-embeds original content passes it to
	// RenderChildrenCont so nested markers get their own chance.
	Replace hydrate.Replacer
}

// BuilderFunc produces the replacement subtree for one matched element.
type BuilderFunc func(ctx *BuildContext, orig *hydrate.OriginalElement) *vdom.VNode

// Registry holds named builders.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]BuilderFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]BuilderFunc)}
}

// Register adds or replaces a named builder.
func (r *Registry) Register(name string, fn BuilderFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[name] = fn
}

// Lookup returns the named builder.
func (r *Registry) Lookup(name string) (BuilderFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.builders[name]
	return fn, ok
}

// Names returns the registered builder names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Replacer returns a hydrate.Replacer that matches elements carrying attr
// and dispatches to the builder named by the attribute's value (empty value
// means DefaultName). Elements naming an unregistered builder are left
// untouched. The returned predicate hands itself to builders through the
// BuildContext, so builders can recurse.
func (r *Registry) Replacer(h *hydrate.Hydrator, owner *reactive.Owner, attr string) hydrate.Replacer {
	if attr == "" {
		attr = DefaultAttr
	}

	var replace hydrate.Replacer
	replace = func(el *html.Node) (hydrate.Builder, bool) {
		name, ok := dom.Attr(el, attr)
		if !ok {
			return nil, false
		}
		if name == "" {
			name = DefaultName
		}
		fn, ok := r.Lookup(name)
		if !ok {
			return nil, false
		}
		return func() *vdom.VNode {
			ctx := &BuildContext{Hydrator: h, Owner: owner, Replace: replace}
			return fn(ctx, h.Capture(el))
		}, true
	}
	return replace
}

// WrapBuilder returns a builder that wraps the original children in a div
// with the given class and keeps hydrating inside the wrapper.
func WrapBuilder(class string) BuilderFunc {
	return func(ctx *BuildContext, orig *hydrate.OriginalElement) *vdom.VNode {
		wrapper := dom.NewElement("div", html.Attribute{Key: "class", Val: class})
		ctx.Hydrator.RenderChildrenCont(ctx.Owner, orig, wrapper, ctx.Replace)
		return vdom.Adopt(wrapper)
	}
}

// DefaultRegistry returns a Registry with the stock default builder: wrap
// original content in a <div class="graft-replaced"> and continue hydrating
// inside it.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(DefaultName, WrapBuilder("graft-replaced"))
	return r
}
