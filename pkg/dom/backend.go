package dom

import "golang.org/x/net/html"

// Backend is the capability surface the hydration engine runs against.
//
// Live is the full implementation over the x/net/html tree. Null is the
// variant for contexts with no live tree: every operation is a no-op
// returning empty results, so the same entry points compile and run but do
// nothing. The variant is fixed at build/configuration time, not per call.
type Backend interface {
	// Live reports whether this backend operates on a real node tree.
	Live() bool

	ChildAt(n *html.Node, i int) *html.Node
	HasChildren(n *html.Node) bool
	InsertBefore(parent, node, ref *html.Node)
	Append(parent, node *html.Node)
	Detach(n *html.Node)
	IsAttached(n *html.Node) bool

	// ExtractChildren detaches and returns, in document order, every child
	// el currently holds.
	ExtractChildren(el *html.Node) []*html.Node

	ParseFragment(markup string, context *html.Node) ([]*html.Node, error)
}

// LiveBackend operates on the real node tree.
type LiveBackend struct{}

func (LiveBackend) Live() bool { return true }

func (LiveBackend) ChildAt(n *html.Node, i int) *html.Node { return ChildAt(n, i) }

func (LiveBackend) HasChildren(n *html.Node) bool { return HasChildren(n) }

func (LiveBackend) InsertBefore(parent, node, ref *html.Node) { InsertBefore(parent, node, ref) }

func (LiveBackend) Append(parent, node *html.Node) { Append(parent, node) }

func (LiveBackend) Detach(n *html.Node) { Detach(n) }

func (LiveBackend) IsAttached(n *html.Node) bool { return IsAttached(n) }

func (LiveBackend) ExtractChildren(el *html.Node) []*html.Node {
	var out []*html.Node
	for el.FirstChild != nil {
		c := el.FirstChild
		el.RemoveChild(c)
		out = append(out, c)
	}
	return out
}

func (LiveBackend) ParseFragment(markup string, context *html.Node) ([]*html.Node, error) {
	return ParseFragment(markup, context)
}

// NullBackend is the no-live-tree variant. All operations are no-ops.
type NullBackend struct{}

func (NullBackend) Live() bool { return false }

func (NullBackend) ChildAt(*html.Node, int) *html.Node { return nil }

func (NullBackend) HasChildren(*html.Node) bool { return false }

func (NullBackend) InsertBefore(_, _, _ *html.Node) {}

func (NullBackend) Append(_, _ *html.Node) {}

func (NullBackend) Detach(*html.Node) {}

func (NullBackend) IsAttached(*html.Node) bool { return false }

func (NullBackend) ExtractChildren(*html.Node) []*html.Node { return nil }

func (NullBackend) ParseFragment(string, *html.Node) ([]*html.Node, error) { return nil, nil }
