package markup_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/eolymp/go-markup"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestDashes(t *testing.T) {
	tt := map[string]string{
		"a-b":     "a-b",
		"a--b":    "a–b",
		"a---b":   "a—b",
		"a----b":  "a—-b",
		"a-----b": "a—–b",
		"------":  "——",
	}

	for input, want := range tt {
		if got := markup.Dashes(input); got != want {
			t.Errorf("Dashes(%q): want %q, got %q", input, want, got)
		}
	}
}

func FuzzDashes(f *testing.F) {
	for _, seed := range []string{"", "-", "--", "---", "----", "a--b---c-----d", "—--"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		once := markup.Dashes(input)
		if twice := markup.Dashes(once); twice != once {
			t.Errorf("Dashes is not idempotent for %q: %q then %q", input, once, twice)
		}

		if strings.Contains(once, "--") {
			t.Errorf("Dashes left a double hyphen in %q", once)
		}
	})
}

func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"\\",
		"$",
		"$$",
		"{{{}}}",
		"\\textbf{",
		"\\textbf{a{b}c}",
		"\\href{x}{",
		"\\href{x}{\\bf{y}}",
		"\\begin{itemize}",
		"\\begin{itemize}\\item",
		"\\begin{tabular}{|c|}a&b\\\\c\\end{tabular}",
		"\\begin{cpp}\\end{cpp}",
		"\\begin{",
		"$\\$",
		"\\$$$",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		nodes := markup.Parse(input)

		_ = markup.String(nodes)

		if err := markup.Render(bytes.NewBuffer(nil), nodes); err != nil {
			t.Errorf("Unable to render %q: %v", input, err)
		}
	})
}

func FuzzMathPassthrough(f *testing.F) {
	for _, seed := range []string{"abc", "\\bf{x}", "a_{i}", "\\textbf{y} + 1"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, body string) {
		// delimiters, dash ligatures and a trailing escape change the region itself
		body = strings.TrimRight(strings.NewReplacer("$", "", "-", "").Replace(body), "\\")
		if body == "" {
			return
		}

		nodes := markup.Inline("prefix $"+body+"$ suffix", true)
		want := []markup.Node{
			&markup.Text{Data: "prefix "},
			&markup.Math{Data: "$" + body + "$"},
			&markup.Text{Data: " suffix"},
		}

		if diff := cmp.Diff(want, nodes); diff != "" {
			t.Errorf("Math %q is not passed through (-want +got):\n%s", body, diff)
		}
	})
}

func TestParse_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	source := "Find \\textbf{all} $x$:\n\\begin{enumerate}\\item a\\item \\href{http://x.com}{b}\\end{enumerate}\\begin{cpp}\nint x;\n\\end{cpp}"
	want := markup.Parse(source)

	var wg sync.WaitGroup
	results := make([][]markup.Node, 16)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = markup.Parse(source)
		}(i)
	}

	wg.Wait()

	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Result #%d differs (-want +got):\n%s", i, diff)
		}
	}
}
