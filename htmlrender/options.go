package htmlrender

import "fmt"

type Option func(r *Renderer) error

// WithHighlight enables syntax highlighting of code blocks
func WithHighlight(flag bool) Option {
	return func(r *Renderer) error {
		r.highlight = flag
		return nil
	}
}

// WithClassPrefix sets prefix for css classes of highlighted code tokens, eg. "chroma-" gives "chroma-k" for keywords
func WithClassPrefix(prefix string) Option {
	return func(r *Renderer) error {
		r.classPrefix = prefix
		return nil
	}
}

// WithMathClass sets css class of the containers the math renderer is expected to process.
func WithMathClass(class string) Option {
	return func(r *Renderer) error {
		if class == "" {
			return fmt.Errorf("math class can not be empty")
		}

		r.mathClass = class
		return nil
	}
}
