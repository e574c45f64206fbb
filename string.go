package markup

import "strings"

// String extracts text content: plain text, math and code sources, in document order.
func String(nodes []Node) string {
	var b strings.Builder

	Walk(nodes, func(node Node) bool {
		switch n := node.(type) {
		case *Text:
			b.WriteString(n.Data)
		case *Math:
			b.WriteString(n.Data)
		case *Code:
			b.WriteString(n.Data)
		}

		return true
	})

	return b.String()
}

// Walk visits nodes depth-first. Children of a node are skipped if visit returns false.
func Walk(nodes []Node, visit func(Node) bool) {
	for _, node := range nodes {
		if !visit(node) {
			continue
		}

		switch n := node.(type) {
		case *Span:
			Walk(n.Children, visit)
		case *Link:
			Walk(n.Children, visit)
		case *Center:
			Walk(n.Children, visit)
		case *Group:
			Walk(n.Children, visit)
		case *List:
			for _, item := range n.Items {
				Walk(item, visit)
			}
		case *Table:
			for _, row := range n.Rows {
				for _, cell := range row {
					Walk(cell, visit)
				}
			}
		}
	}
}
