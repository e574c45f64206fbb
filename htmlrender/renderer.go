// Package htmlrender maps markup nodes to HTML. Math is left in place, delimited, for a client side math renderer.
package htmlrender

import (
	"fmt"
	"io"
	"strings"

	"github.com/eolymp/go-markup"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Renderer struct {
	highlight   bool
	classPrefix string
	mathClass   string
}

func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		highlight: true,
		mathClass: "math-context",
	}

	for _, option := range options {
		if err := option(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Render writes nodes as HTML fragment.
func (r *Renderer) Render(w io.Writer, nodes []markup.Node) error {
	for _, node := range r.Nodes(nodes) {
		if err := html.Render(w, node); err != nil {
			return fmt.Errorf("unable to render html: %w", err)
		}
	}

	return nil
}

// Nodes converts markup nodes to HTML nodes.
func (r *Renderer) Nodes(nodes []markup.Node) []*html.Node {
	var out []*html.Node
	for _, node := range nodes {
		out = append(out, r.node(node))
	}

	return out
}

func (r *Renderer) node(node markup.Node) *html.Node {
	switch n := node.(type) {
	case *markup.Text:
		return text(n.Data)
	case *markup.Group:
		return r.wrap(element(atom.Div, attr("class", r.mathClass)), n.Children)
	case *markup.Span:
		if n.Style.IsZero() {
			return r.wrap(element(atom.Span), n.Children)
		}

		return r.wrap(element(atom.Span, attr("style", n.Style.CSS())), n.Children)
	case *markup.Link:
		return r.wrap(element(atom.A, attr("href", n.Href)), n.Children)
	case *markup.Math:
		class := "math"
		if n.Display {
			class = "math display"
		}

		span := element(atom.Span, attr("class", class))
		span.AppendChild(text(n.Data))

		return span
	case *markup.Center:
		return r.wrap(element(atom.Div, attr("style", "text-align:center")), n.Children)
	case *markup.List:
		return r.list(n)
	case *markup.Table:
		return r.table(n)
	case *markup.Code:
		return r.code(n)
	default:
		return text("")
	}
}

// wrap appends children to the parent and returns the parent
func (r *Renderer) wrap(parent *html.Node, children []markup.Node) *html.Node {
	for _, child := range children {
		parent.AppendChild(r.node(child))
	}

	return parent
}

func (r *Renderer) list(n *markup.List) *html.Node {
	list := element(atom.Ul)
	if n.Ordered {
		list = element(atom.Ol)
	}

	for _, item := range n.Items {
		list.AppendChild(r.wrap(element(atom.Li), item))
	}

	return list
}

func (r *Renderer) table(n *markup.Table) *html.Node {
	table := element(atom.Table)

	for _, row := range n.Rows {
		tr := element(atom.Tr)

		for index, cell := range row {
			var attrs []html.Attribute
			if index < len(n.Columns) {
				attrs = cellAttributes(n.Columns[index])
			}

			tr.AppendChild(r.wrap(element(atom.Td, attrs...), cell))
		}

		table.AppendChild(tr)
	}

	return table
}

func (r *Renderer) code(n *markup.Code) *html.Node {
	code := element(atom.Code, attr("class", "language-"+n.Language))

	if r.highlight {
		r.highlightCode(code, n.Language, n.Data)
	} else {
		code.AppendChild(text(n.Data))
	}

	pre := element(atom.Pre)
	pre.AppendChild(code)

	return pre
}

func cellAttributes(column markup.ColumnSpec) (attrs []html.Attribute) {
	var borders []string
	if column.BorderLeft {
		borders = append(borders, "border-left")
	}

	if column.BorderRight {
		borders = append(borders, "border-right")
	}

	if len(borders) > 0 {
		attrs = append(attrs, attr("class", strings.Join(borders, " ")))
	}

	switch column.Align {
	case "l":
		attrs = append(attrs, attr("style", "text-align:left"))
	case "c":
		attrs = append(attrs, attr("style", "text-align:center"))
	case "r":
		attrs = append(attrs, attr("style", "text-align:right"))
	}

	return
}

func element(tag atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag.String(), DataAtom: tag, Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}
