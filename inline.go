package markup

// Inline translates a text fragment without block environments into nodes.
//
// Math regions are copied verbatim, recognized commands become spans and links, everything else is plain text.
// When nested is false the result is wrapped in a single *Group, otherwise nodes are returned as is, to be embedded
// into a parent node.
func Inline(text string, nested bool) []Node {
	children := inline(Dashes(text))
	if nested {
		return children
	}

	return []Node{&Group{Children: children}}
}

func inline(text string) (nodes []Node) {
	s := newScanner(text)
	pending := 0 // beginning of text which is not yet added to nodes

	emit := func(start int, node Node) {
		nodes = appendText(nodes, text[pending:start])
		nodes = append(nodes, node)
		pending = s.pos
	}

	for !s.eof() {
		start := s.pos

		switch s.peek() {
		case '$':
			if node, ok := s.readMath(); ok {
				emit(start, node)
			}
		case '\\':
			name := s.readBackslash()
			if name == "" || !isCommand(name) {
				continue
			}

			if node, ok := command(s, name); ok {
				emit(start, node)
			}
		default:
			s.pos++
		}
	}

	return appendText(nodes, text[pending:])
}

// command reads parameters of the command at the cursor, if they can't be read the cursor stays after command name
func command(s *scanner, name string) (Node, bool) {
	arg, ok := s.parameter()
	if !ok {
		return nil, false
	}

	switch name {
	case "url":
		return &Link{Href: arg, Children: []Node{&Text{Data: arg}}}, true
	case "href":
		text, ok := s.parameter()
		if !ok {
			return &Link{Href: arg, Children: []Node{&Text{Data: arg}}}, true
		}

		return &Link{Href: arg, Children: Inline(text, true)}, true
	default:
		style, _ := LookupStyle(name)
		return &Span{Command: name, Style: style, Children: Inline(arg, true)}, true
	}
}

// isCommand returns true for command names recognized by inline parser
func isCommand(name string) bool {
	switch name {
	case "href", "url", "textrm", "textup", "textnormal":
		return true
	default:
		_, ok := styles[name]
		return ok
	}
}
