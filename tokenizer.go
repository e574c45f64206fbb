package markup

import "strings"

// maxBraceDepth is how many levels of nested {} a command argument may contain
const maxBraceDepth = 1

// scanner is a cursor over markup source. Reads never fail: a read which does not match returns false and leaves
// the cursor where the caller can resume scanning as plain text.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}

	return s.src[s.pos]
}

// readMath reads math region starting at the current "$". Region is delimited by $...$ or $$...$$, escaped \$ does
// not close it. If the region is not closed, cursor skips the opening delimiter and false is returned.
func (s *scanner) readMath() (*Math, bool) {
	start := s.pos
	display := strings.HasPrefix(s.src[start:], "$$")
	open := delimiter(display)

	end := closing(s.src, start+len(open), open)
	if end < 0 {
		s.pos = start + len(open)
		return nil, false
	}

	s.pos = end + len(open)
	return &Math{Display: display, Data: s.src[start:s.pos]}, true
}

// readBackslash reads what follows "\" at the cursor: a command name or an escaped dollar sign. It returns the
// command name, an empty name means there is no command here and the cursor is past the consumed text.
func (s *scanner) readBackslash() string {
	s.pos++

	// \$ is a dollar sign, not a math delimiter
	if s.peek() == '$' {
		s.pos++
		return ""
	}

	return s.word()
}

// word reads sequence of letters
func (s *scanner) word() string {
	start := s.pos
	for !s.eof() && isLetter(s.src[s.pos]) {
		s.pos++
	}

	return s.src[start:s.pos]
}

// parameter reads obligatory parameter wrapped in {}, it may include up to maxBraceDepth levels of nested braces.
// The cursor does not move if parameter can not be read.
func (s *scanner) parameter() (string, bool) {
	if s.peek() != '{' {
		return "", false
	}

	depth := 0
	for i := s.pos + 1; i < len(s.src); i++ {
		switch s.src[i] {
		case '{':
			if depth == maxBraceDepth {
				return "", false
			}

			depth++
		case '}':
			if depth > 0 {
				depth--
				continue
			}

			value := s.src[s.pos+1 : i]
			s.pos = i + 1

			return value, true
		}
	}

	return "", false
}

// closing returns position of the first unescaped delimiter at or after "from", or -1
func closing(src string, from int, delim string) int {
	for i := from; i < len(src); i++ {
		if src[i] == '\\' {
			i++
			continue
		}

		if strings.HasPrefix(src[i:], delim) {
			return i
		}
	}

	return -1
}

// isLetter returns true for a letter
func isLetter(r byte) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
