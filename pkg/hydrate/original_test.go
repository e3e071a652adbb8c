package hydrate

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/graft-dev/graft/pkg/dom"
)

func TestCapture(t *testing.T) {
	t.Run("requires an element", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic for non-element capture")
			}
		}()
		Capture(dom.NewText("not an element"))
	})

	t.Run("null backend accepts anything", func(t *testing.T) {
		h := New(WithBackend(dom.NullBackend{}))
		orig := h.Capture(nil)
		if got := orig.ExtractChildren(); got != nil {
			t.Errorf("ExtractChildren on null backend = %v, want nil", got)
		}
	})
}

func TestExtractChildren(t *testing.T) {
	t.Run("original order, detached", func(t *testing.T) {
		body := parseBody(t, `<div>a<span>b</span><em>c</em></div>`)
		div := body.FirstChild

		orig := Capture(div)
		children := orig.ExtractChildren()

		if len(children) != 3 {
			t.Fatalf("got %d children, want 3", len(children))
		}
		if children[0].Type != html.TextNode || children[0].Data != "a" {
			t.Errorf("first child = %+v, want text a", children[0])
		}
		if children[1].Data != "span" || children[2].Data != "em" {
			t.Errorf("order = %v %v, want span em", children[1].Data, children[2].Data)
		}
		if div.FirstChild != nil {
			t.Error("children were not moved out of the element")
		}
	})

	t.Run("sees mutations since capture", func(t *testing.T) {
		body := parseBody(t, `<div><span></span></div>`)
		div := body.FirstChild

		orig := Capture(div)
		dom.Append(div, dom.NewElement("em"))

		children := orig.ExtractChildren()
		if len(children) != 2 || children[1].Data != "em" {
			t.Errorf("children = %v, want [span em]", children)
		}
	})

	t.Run("detached element fails fatally", func(t *testing.T) {
		body := parseBody(t, `<div><span></span></div>`)
		div := body.FirstChild

		orig := Capture(div)
		dom.Detach(div)

		defer func() {
			if recover() == nil {
				t.Fatal("expected panic extracting from a detached element")
			}
		}()
		orig.ExtractChildren()
	})
}
