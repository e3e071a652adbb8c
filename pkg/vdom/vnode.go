package vdom

import "golang.org/x/net/html"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <b>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
	KindAdopted               // Pre-existing live node re-embedded as-is
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	case KindAdopted:
		return "Adopted"
	default:
		return "Unknown"
	}
}

// VNode describes a replacement subtree before it is materialized into live
// nodes. Unlike a full virtual DOM there is no diffing and no keyed
// reconciliation: a VNode is built once, materialized once, and spliced in.
type VNode struct {
	Kind     VKind      // Node type
	Tag      string     // Element tag name (e.g., "div")
	Attrs    []Attr     // Attributes in declaration order
	Children []*VNode   // Child nodes
	Text     string     // For KindText and KindRaw
	Node     *html.Node // For KindAdopted: the live node to move in
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value string
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Adopt wraps a pre-existing live node so it can be placed inside a
// replacement subtree without copying or re-parsing. The node is moved, not
// cloned: materializing the subtree re-parents it.
func Adopt(n *html.Node) *VNode {
	return &VNode{Kind: KindAdopted, Node: n}
}

// AdoptAll wraps a sequence of live nodes, preserving their order.
func AdoptAll(nodes []*html.Node) *VNode {
	frag := &VNode{Kind: KindFragment}
	for _, n := range nodes {
		if n != nil {
			frag.Children = append(frag.Children, Adopt(n))
		}
	}
	return frag
}
