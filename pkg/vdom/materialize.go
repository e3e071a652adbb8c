package vdom

import (
	"golang.org/x/net/html"

	"github.com/graft-dev/graft/pkg/dom"
)

// Materialize builds the live nodes described by v, in document order.
//
// Element and text nodes are created fresh. Raw markup goes through the
// fragment parser with the usual HTML5 error recovery. Adopted nodes are
// detached from wherever they currently sit and returned as-is, which is how
// original children move into a replacement without copying.
//
// A failure inside materialization is a builder failure: it is not caught
// here and aborts the hydration pass that triggered it.
func Materialize(v *VNode) []*html.Node {
	if v == nil {
		return nil
	}

	switch v.Kind {
	case KindText:
		return []*html.Node{dom.NewText(v.Text)}

	case KindRaw:
		nodes, err := dom.ParseFragment(v.Text, nil)
		if err != nil {
			panic("vdom: materialize raw markup: " + err.Error())
		}
		return nodes

	case KindAdopted:
		if v.Node == nil {
			return nil
		}
		dom.Detach(v.Node)
		return []*html.Node{v.Node}

	case KindFragment:
		var out []*html.Node
		for _, child := range v.Children {
			out = append(out, Materialize(child)...)
		}
		return out

	case KindElement:
		el := dom.NewElement(v.Tag)
		for _, a := range v.Attrs {
			dom.SetAttr(el, a.Key, a.Value)
		}
		for _, child := range v.Children {
			for _, n := range Materialize(child) {
				dom.Append(el, n)
			}
		}
		return []*html.Node{el}

	default:
		return nil
	}
}
