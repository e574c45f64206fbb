package markup

import "unicode/utf8"

// appendText adds text node to the list, merging it with the previous text node if there is one
func appendText(nodes []Node, data string) []Node {
	if data == "" {
		return nodes
	}

	if len(nodes) > 0 {
		if last, ok := nodes[len(nodes)-1].(*Text); ok {
			last.Data += data
			return nodes
		}
	}

	return append(nodes, &Text{Data: data})
}

// strip removes exactly one character from both ends of the string
func strip(s string) string {
	_, first := utf8.DecodeRuneInString(s)
	_, last := utf8.DecodeLastRuneInString(s)

	if first+last >= len(s) {
		return ""
	}

	return s[first : len(s)-last]
}

func delimiter(display bool) string {
	if display {
		return "$$"
	}

	return "$"
}
