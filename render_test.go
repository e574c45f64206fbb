package markup_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eolymp/go-markup"
	"github.com/google/go-cmp/cmp"
)

func TestRender(t *testing.T) {
	tt := []struct {
		name     string
		render   string
		document []markup.Node
	}{
		{
			name:     "simple formatting",
			render:   "odd \\textbf{foo bar} baz",
			document: seq(group(text("odd "), span("textbf", bold, text("foo bar")), text(" baz"))),
		},
		{
			name:     "nested formatting",
			render:   "odd \\textbf{foo \\textit{bar}} baz",
			document: seq(group(text("odd "), span("textbf", bold, text("foo "), span("textit", italic, text("bar"))), text(" baz"))),
		},
		{
			name:     "math",
			render:   "foo $a_i$ and $$b$$",
			document: seq(group(text("foo "), math("$a_i$"), text(" and "), display("$$b$$"))),
		},
		{
			name:     "links",
			render:   "\\url{http://x.com} or \\href{http://y.com}{\\it{here}}",
			document: seq(group(link("http://x.com", text("http://x.com")), text(" or "), link("http://y.com", span("it", italic, text("here"))))),
		},
		{
			name:     "itemize",
			render:   "\\begin{itemize}\n\\item A\n\\item B\n\\end{itemize}",
			document: seq(&markup.List{Items: items(seq(text("A")), seq(text("B")))}),
		},
		{
			name:     "enumerate",
			render:   "\\begin{enumerate}\n\\item \\bf{A}\n\\end{enumerate}",
			document: seq(&markup.List{Ordered: true, Items: items(seq(span("bf", bold, text("A"))))}),
		},
		{
			name:     "center",
			render:   "\\begin{center}\n$x$\n\\end{center}",
			document: seq(&markup.Center{Children: seq(math("$x$"))}),
		},
		{
			name:     "code",
			render:   "\\begin{cpp}\nint main(){}\n\\end{cpp}",
			document: seq(&markup.Code{Language: "cpp", Data: "int main(){}"}),
		},
		{
			name:   "tabular",
			render: "\\begin{tabular}{|c|c|}\n1 & 2 \\\\\n3 & 4\n\\end{tabular}",
			document: seq(&markup.Table{
				Columns: []markup.ColumnSpec{
					{BorderLeft: true, BorderRight: true, Align: "c"},
					{BorderLeft: true, BorderRight: true, Align: "c"},
				},
				Rows: [][][]markup.Node{
					{seq(text("1")), seq(text("2"))},
					{seq(text("3")), seq(text("4"))},
				},
			}),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			buffer := bytes.NewBuffer(nil)

			err := markup.Render(buffer, tc.document)
			if err != nil {
				t.Fatal("unable to render:", err)
			}

			got := buffer.String()
			want := tc.render

			if got != want {
				t.Errorf("Rendered markup does not match:\nWANT:\n  %#v\nGOT:\n  %#v\n", want, got)
			}

			if diff := cmp.Diff(tc.document, markup.Parse(got)); diff != "" {
				t.Errorf("Rendered markup parses into a different tree (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRender_RoundTrip(t *testing.T) {
	source := strings.Join([]string{
		"Given $n$ numbers --- find the \\textbf{largest} one.",
		"\\begin{itemize}\n\\item first\n\\item see \\url{https://eolymp.com}\n\\end{itemize}",
		"Example:",
		"\\begin{python}\nprint(max(map(int, input().split())))\n\\end{python}",
		"\\begin{center}\n$$\\sum_{i=1}^n a_i$$\n\\end{center}",
	}, "\n")

	first := markup.Parse(source)

	buffer := bytes.NewBuffer(nil)
	if err := markup.Render(buffer, first); err != nil {
		t.Fatal("unable to render:", err)
	}

	second := markup.Parse(buffer.String())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Tree changed after render (-first +second):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	nodes := markup.Parse("Let $n$ be \\textbf{even}:\n\\begin{enumerate}\\item \\url{http://x.com}\\end{enumerate}\\begin{cpp}\nint n;\n\\end{cpp}")

	got := markup.String(nodes)
	want := "Let $n$ be even:\nhttp://x.comint n;"

	if got != want {
		t.Errorf("String does not match:\n want %#v\n  got %#v", want, got)
	}
}

func TestWalk(t *testing.T) {
	nodes := markup.Parse("\\textbf{a \\it{b}} \\begin{tabular}{c}\\url{x}\\end{tabular}")

	var kinds []markup.Kind
	markup.Walk(nodes, func(node markup.Node) bool {
		kinds = append(kinds, node.Kind())
		return node.Kind() != markup.LinkKind
	})

	want := []markup.Kind{
		markup.GroupKind, markup.SpanKind, markup.TextKind, markup.SpanKind, markup.TextKind, markup.TextKind,
		markup.TableKind, markup.LinkKind,
	}

	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("Visited kinds do not match (-want +got):\n%s", diff)
	}
}
