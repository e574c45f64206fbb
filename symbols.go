package markup

import "strings"

// Dashes replaces dash ligatures: "---" becomes an em dash, then any remaining "--" becomes an en dash.
func Dashes(text string) string {
	text = strings.ReplaceAll(text, "---", "—")
	return strings.ReplaceAll(text, "--", "–")
}
