package markup

import (
	"strings"
	"unicode"
)

type ColumnSpec struct {
	BorderLeft  bool   `json:"borderLeft,omitempty"`  // column should have left border
	BorderRight bool   `json:"borderRight,omitempty"` // column should have right border
	Align       string `json:"align"`                 // column alignment: c, l or r
}

// ColumnSpecs reads column spec of tabular environment, eg. "|c|l r|". A "|" next to an alignment letter becomes a
// border of that column, spaces are ignored and other characters break the adjacency.
// todo: add support for repeated syntax *{x}{...}
func ColumnSpecs(raw string) (spec []ColumnSpec) {
	var prev rune

	for _, char := range raw {
		switch {
		case unicode.IsSpace(char):
			continue
		case char == '|' && isAlign(prev):
			spec[len(spec)-1].BorderRight = true
		case isAlign(char):
			spec = append(spec, ColumnSpec{BorderLeft: prev == '|', Align: string(char)})
		}

		prev = char
	}

	return
}

func isAlign(char rune) bool {
	return char == 'c' || char == 'l' || char == 'r'
}

// columnSpecString formats column specs back to tabular syntax, eg. "|c|l|"
func columnSpecString(spec []ColumnSpec) string {
	var b strings.Builder
	for i, column := range spec {
		if column.BorderLeft && (i == 0 || !spec[i-1].BorderRight) {
			b.WriteByte('|')
		}

		b.WriteString(column.Align)

		if column.BorderRight {
			b.WriteByte('|')
		}
	}

	return b.String()
}
