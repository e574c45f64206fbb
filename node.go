package markup

import "encoding/json"

type Kind string

const (
	TextKind   Kind = "text"
	SpanKind   Kind = "span"
	LinkKind   Kind = "link"
	MathKind   Kind = "math"
	ListKind   Kind = "list"
	TableKind  Kind = "table"
	CodeKind   Kind = "code"
	CenterKind Kind = "center"
	GroupKind  Kind = "group"
)

// Node is one element of the translated tree. The set of implementations is closed, use a type switch over
// *Text, *Span, *Link, *Math, *List, *Table, *Code, *Center and *Group.
type Node interface {
	Kind() Kind
	node()
}

// Text is a run of plain text.
type Text struct {
	Data string `json:"data"`
}

// Span is an inline styled fragment produced by a formatting command, eg. \textbf{...}.
type Span struct {
	Command  string `json:"command"`
	Style    Style  `json:"style"`
	Children []Node `json:"children,omitempty"`
}

// Link is produced by \href and \url.
type Link struct {
	Href     string `json:"href"`
	Children []Node `json:"children,omitempty"`
}

// Math is a math region passed verbatim to the math renderer. Data keeps the delimiters.
type Math struct {
	Display bool   `json:"display"`
	Data    string `json:"data"`
}

// Content returns math source without $ or $$ delimiters.
func (n *Math) Content() string {
	d := len(delimiter(n.Display))
	if len(n.Data) < 2*d {
		return ""
	}

	return n.Data[d : len(n.Data)-d]
}

// List is itemize (unordered) or enumerate (ordered) environment.
type List struct {
	Ordered bool     `json:"ordered"`
	Items   [][]Node `json:"items"`
}

// Table is tabular environment: rows of cells, each cell is a sequence of inline nodes.
type Table struct {
	Columns []ColumnSpec `json:"columns,omitempty"`
	Rows    [][][]Node   `json:"rows"`
}

// Code is a source code block, Language is the environment name (cpp, java or python).
type Code struct {
	Language string `json:"language"`
	Data     string `json:"data"`
}

// Center is center environment.
type Center struct {
	Children []Node `json:"children,omitempty"`
}

// Group wraps nodes of one top-level inline fragment, math renderer typesets each group as a single scope.
type Group struct {
	Children []Node `json:"children,omitempty"`
}

func (*Text) Kind() Kind   { return TextKind }
func (*Span) Kind() Kind   { return SpanKind }
func (*Link) Kind() Kind   { return LinkKind }
func (*Math) Kind() Kind   { return MathKind }
func (*List) Kind() Kind   { return ListKind }
func (*Table) Kind() Kind  { return TableKind }
func (*Code) Kind() Kind   { return CodeKind }
func (*Center) Kind() Kind { return CenterKind }
func (*Group) Kind() Kind  { return GroupKind }

func (*Text) node()   {}
func (*Span) node()   {}
func (*Link) node()   {}
func (*Math) node()   {}
func (*List) node()   {}
func (*Table) node()  {}
func (*Code) node()   {}
func (*Center) node() {}
func (*Group) node()  {}

func (n *Text) MarshalJSON() ([]byte, error) {
	type alias Text
	return marshal(n.Kind(), (*alias)(n))
}

func (n *Span) MarshalJSON() ([]byte, error) {
	type alias Span
	return marshal(n.Kind(), (*alias)(n))
}

func (n *Link) MarshalJSON() ([]byte, error) {
	type alias Link
	return marshal(n.Kind(), (*alias)(n))
}

func (n *Math) MarshalJSON() ([]byte, error) {
	type alias Math
	return marshal(n.Kind(), (*alias)(n))
}

func (n *List) MarshalJSON() ([]byte, error) {
	type alias List
	return marshal(n.Kind(), (*alias)(n))
}

func (n *Table) MarshalJSON() ([]byte, error) {
	type alias Table
	return marshal(n.Kind(), (*alias)(n))
}

func (n *Code) MarshalJSON() ([]byte, error) {
	type alias Code
	return marshal(n.Kind(), (*alias)(n))
}

func (n *Center) MarshalJSON() ([]byte, error) {
	type alias Center
	return marshal(n.Kind(), (*alias)(n))
}

func (n *Group) MarshalJSON() ([]byte, error) {
	type alias Group
	return marshal(n.Kind(), (*alias)(n))
}

// marshal adds "kind" discriminator to the encoded node
func marshal(kind Kind, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	out := []byte(`{"kind":"` + string(kind) + `"`)
	if len(data) > 2 {
		out = append(out, ',')
	}

	return append(out, data[1:]...), nil
}
