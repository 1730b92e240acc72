package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// AdaptGomponentToTempl lets a gomponents node be rendered wherever a
// templ.Component is expected.
func AdaptGomponentToTempl(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// AdaptTemplToGomponent lets a templ component sit inside a gomponents tree.
// gomponents does not pass a context down, so the component renders with
// context.Background().
func AdaptTemplToGomponent(component templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return component.Render(context.Background(), w)
	})
}
