package markup

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Render writes nodes back as markup source.
func Render(w io.Writer, nodes []Node) error {
	return renderChildren(w, nodes)
}

func render(w io.Writer, node Node) error {
	switch n := node.(type) {
	case *Text:
		_, err := fmt.Fprint(w, n.Data)
		return err
	case *Math:
		_, err := fmt.Fprint(w, n.Data)
		return err
	case *Group:
		return renderChildren(w, n.Children)
	case *Span:
		return renderChildrenAndWrap(w, n.Children, "\\"+n.Command+"{", "}")
	case *Link:
		if len(n.Children) == 1 {
			if text, ok := n.Children[0].(*Text); ok && text.Data == n.Href {
				_, err := fmt.Fprint(w, "\\url{", n.Href, "}")
				return err
			}
		}

		return renderChildrenAndWrap(w, n.Children, "\\href{"+n.Href+"}{", "}")
	case *Center:
		return renderChildrenAndWrap(w, n.Children, "\\begin{center}\n", "\n\\end{center}")
	case *Code:
		_, err := fmt.Fprint(w, "\\begin{"+n.Language+"}\n", n.Data, "\n\\end{"+n.Language+"}")
		return err
	case *List:
		return renderList(w, n)
	case *Table:
		return renderTable(w, n)
	default:
		return fmt.Errorf("unexpected node %T", node)
	}
}

func renderChildren(w io.Writer, nodes []Node) error {
	for _, child := range nodes {
		if err := render(w, child); err != nil {
			return err
		}
	}

	return nil
}

func renderChildrenAndWrap(w io.Writer, nodes []Node, prefix, suffix string) error {
	if _, err := fmt.Fprint(w, prefix); err != nil {
		return err
	}

	if err := renderChildren(w, nodes); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, suffix); err != nil {
		return err
	}

	return nil
}

func renderList(w io.Writer, node *List) error {
	name := "itemize"
	if node.Ordered {
		name = "enumerate"
	}

	if _, err := fmt.Fprint(w, "\\begin{"+name+"}\n"); err != nil {
		return err
	}

	for _, item := range node.Items {
		if err := renderChildrenAndWrap(w, item, "\\item ", "\n"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "\\end{"+name+"}")
	return err
}

func renderTable(w io.Writer, node *Table) error {
	colspec := ""
	if len(node.Columns) > 0 {
		colspec = "{" + columnSpecString(node.Columns) + "}"
	}

	var rows []string
	for _, row := range node.Rows {
		var cells []string
		for _, cell := range row {
			buffer := bytes.NewBuffer(nil)
			if err := renderChildren(buffer, cell); err != nil {
				return err
			}

			cells = append(cells, buffer.String())
		}

		rows = append(rows, strings.Join(cells, " & "))
	}

	_, err := fmt.Fprint(w, "\\begin{tabular}"+colspec+"\n", strings.Join(rows, " \\\\\n"), "\n\\end{tabular}")
	return err
}
