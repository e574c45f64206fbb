package markup

import "strings"

// Style is a declarative text style attached to a formatting command. Empty fields are not set.
type Style struct {
	FontWeight     string `json:"fontWeight,omitempty"`
	FontStyle      string `json:"fontStyle,omitempty"`
	FontFamily     string `json:"fontFamily,omitempty"`
	TextDecoration string `json:"textDecoration,omitempty"`
	TextTransform  string `json:"textTransform,omitempty"`
	FontSize       string `json:"fontSize,omitempty"`
}

// IsZero returns true if style has no properties set
func (s Style) IsZero() bool {
	return s == Style{}
}

// CSS returns style as css declaration list, eg. "font-weight:bold;font-style:italic"
func (s Style) CSS() string {
	var decl []string

	add := func(prop, value string) {
		if value != "" {
			decl = append(decl, prop+":"+value)
		}
	}

	add("font-weight", s.FontWeight)
	add("font-style", s.FontStyle)
	add("font-family", s.FontFamily)
	add("text-decoration", s.TextDecoration)
	add("text-transform", s.TextTransform)
	add("font-size", s.FontSize)

	return strings.Join(decl, ";")
}

var (
	bold      = Style{FontWeight: "bold"}
	italic    = Style{FontStyle: "italic"}
	monospace = Style{FontFamily: "monospace"}
)

var styles = map[string]Style{
	"bf":           bold,
	"textbf":       bold,
	"bfseries":     bold,
	"it":           italic,
	"textit":       italic,
	"itshape":      italic,
	"emph":         italic,
	"textsl":       italic,
	"tt":           monospace,
	"texttt":       monospace,
	"t":            monospace,
	"textsf":       {FontFamily: "sans-serif"},
	"textmd":       {FontWeight: "normal"},
	"underline":    {TextDecoration: "underline"},
	"sout":         {TextDecoration: "line-through"},
	"textsc":       {TextTransform: "uppercase", FontSize: "0.8em"},
	"tiny":         {FontSize: "0.5em"},
	"scriptsize":   {FontSize: "0.7em"},
	"footnotesize": {FontSize: "0.8em"},
	"small":        {FontSize: "0.9em"},
	"normalsize":   {FontSize: "1em"},
	"large":        {FontSize: "1.2em"},
	"Large":        {FontSize: "1.44em"},
	"LARGE":        {FontSize: "1.728em"},
	"huge":         {FontSize: "2.074em"},
	"Huge":         {FontSize: "2.488em"},
}

// LookupStyle returns style for a formatting command name (without backslash).
func LookupStyle(name string) (Style, bool) {
	s, ok := styles[name]
	return s, ok
}
