package htmlrender

import (
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	lexerCache   = make(map[string]chroma.Lexer)
	lexerCacheMu sync.RWMutex
)

// lexer finds chroma lexer by code block language, nil if there is no lexer for the language
func lexer(language string) chroma.Lexer {
	lexerCacheMu.RLock()
	l, ok := lexerCache[language]
	lexerCacheMu.RUnlock()

	if ok {
		return l
	}

	l = lexers.Get(language)
	if l != nil {
		l = chroma.Coalesce(l)
	}

	lexerCacheMu.Lock()
	lexerCache[language] = l
	lexerCacheMu.Unlock()

	return l
}

// highlightCode appends source code to the parent as a sequence of spans classified by token type. Source is appended as
// plain text when language is unknown or source can not be tokenized.
func (r *Renderer) highlightCode(parent *html.Node, language, source string) {
	l := lexer(language)
	if l == nil {
		parent.AppendChild(text(source))
		return
	}

	iterator, err := l.Tokenise(nil, source)
	if err != nil {
		parent.AppendChild(text(source))
		return
	}

	for _, token := range iterator.Tokens() {
		if token.Value == "" {
			continue
		}

		class := tokenClass(token.Type)
		if class == "" {
			parent.AppendChild(text(token.Value))
			continue
		}

		span := element(atom.Span, attr("class", r.classPrefix+class))
		span.AppendChild(text(token.Value))
		parent.AppendChild(span)
	}
}

// tokenClass returns short css class for the token type, falling back to its sub category and category
func tokenClass(t chroma.TokenType) string {
	for _, candidate := range []chroma.TokenType{t, t.SubCategory(), t.Category()} {
		if class, ok := chroma.StandardTypes[candidate]; ok && class != "" {
			return class
		}
	}

	return ""
}
