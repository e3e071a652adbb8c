package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(markup string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: markup,
	}
}

// Frag groups children without a wrapper element.
func Frag(children ...any) *VNode {
	node := &VNode{Kind: KindFragment}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// Common attribute shorthands

func Class(v string) Attr       { return Attr{Key: "class", Value: v} }
func ID(v string) Attr          { return Attr{Key: "id", Value: v} }
func Style(v string) Attr       { return Attr{Key: "style", Value: v} }
func Href(v string) Attr        { return Attr{Key: "href", Value: v} }
func Src(v string) Attr         { return Attr{Key: "src", Value: v} }
func Title(v string) Attr       { return Attr{Key: "title", Value: v} }
func Data(key, v string) Attr   { return Attr{Key: "data-" + key, Value: v} }
func AttrOf(key, v string) Attr { return Attr{Key: key, Value: v} }
