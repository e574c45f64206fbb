package markup

import (
	"strings"
)

// environments recognized by the block parser, any other \begin{...} is left to the inline parser as text
var environments = map[string]bool{
	"itemize":   true,
	"enumerate": true,
	"center":    true,
	"tabular":   true,
	"cpp":       true,
	"java":      true,
	"python":    true,
}

// Parse translates a whole document: environments become block nodes, text around them is parsed by Inline and
// wrapped in groups. Nodes are returned in source order.
//
// Environments do not nest, an environment is closed by the first \end with the same name.
func Parse(source string) (nodes []Node) {
	pending := 0

	// names without \end{name} in the rest of the source, any later \begin with such name is text
	unclosed := map[string]bool{}

	for pos := 0; pos < len(source); {
		index := strings.Index(source[pos:], "\\begin{")
		if index < 0 {
			break
		}

		start := pos + index

		name, body, end, ok := environment(source, start, unclosed)
		if !ok {
			pos = start + 1
			continue
		}

		nodes = appendInline(nodes, source[pending:start])
		nodes = append(nodes, block(name, body))

		pending, pos = end, end
	}

	return appendInline(nodes, source[pending:])
}

// environment reads \begin{name}...\end{name} at position "start", end is position right after \end{name}
func environment(source string, start int, unclosed map[string]bool) (name, body string, end int, ok bool) {
	s := newScanner(source)
	s.pos = start + len("\\begin{")

	name = s.word()
	if s.peek() != '}' || !environments[name] || unclosed[name] {
		return "", "", 0, false
	}

	content := s.pos + 1
	terminator := "\\end{" + name + "}"

	stop := strings.Index(source[content:], terminator)
	if stop < 0 {
		unclosed[name] = true
		return "", "", 0, false
	}

	return name, source[content : content+stop], content + stop + len(terminator), true
}

func appendInline(nodes []Node, text string) []Node {
	if text == "" {
		return nodes
	}

	return append(nodes, Inline(text, false)...)
}

func block(name, body string) Node {
	switch name {
	case "itemize", "enumerate":
		return list(name, body)
	case "center":
		return &Center{Children: Inline(strings.TrimSpace(body), true)}
	case "tabular":
		return tabular(body)
	default:
		return &Code{Language: name, Data: strip(body)}
	}
}

// list reads an environment with multiple items defined by \item command, text before the first \item is ignored
func list(name, body string) *List {
	node := &List{Ordered: name == "enumerate"}

	fragments := strings.Split(body, "\\item")
	for _, fragment := range fragments[1:] {
		node.Items = append(node.Items, Inline(strings.TrimSpace(fragment), true))
	}

	return node
}

// tabular reads tabular environment, where cells are separated by "&" and rows are separated by \\
func tabular(body string) *Table {
	node := &Table{}

	s := newScanner(strings.TrimLeft(body, " \t\r\n"))
	if colspec, ok := s.parameter(); ok {
		node.Columns = ColumnSpecs(colspec)
	}

	for _, line := range split(s.src[s.pos:], "\\\\") {
		line = strings.ReplaceAll(line, "\\hline", "")
		if strings.TrimSpace(line) == "" {
			continue
		}

		var row [][]Node
		for _, cell := range split(line, "&") {
			row = append(row, Inline(strings.TrimSpace(cell), true))
		}

		node.Rows = append(node.Rows, row)
	}

	return node
}

// split cuts text by separator, separators inside math regions and escaped characters (eg. \&) are not cut
func split(text, sep string) (parts []string) {
	s := newScanner(text)
	start := 0

	for !s.eof() {
		switch {
		case strings.HasPrefix(s.src[s.pos:], sep):
			parts = append(parts, text[start:s.pos])
			s.pos += len(sep)
			start = s.pos
		case s.peek() == '\\':
			s.pos += 2
		case s.peek() == '$':
			s.readMath()
		default:
			s.pos++
		}
	}

	return append(parts, text[start:])
}
