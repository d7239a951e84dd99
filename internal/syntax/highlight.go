// Package syntax colors Wolfram-language source for the terminal panes.
package syntax

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter renders single lines of cell content with ANSI colors. Cell
// headers need no special casing: "(* ... *)" is a comment in the language,
// so the lexer styles them as comments on its own.
type Highlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// NewHighlighter builds a highlighter for the given chroma style name.
// Unknown names fall back to chroma's default style.
func NewHighlighter(theme string) *Highlighter {
	lexer := lexers.Get("mathematica")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Highlighter{
		lexer:     chroma.Coalesce(lexer),
		style:     styles.Get(theme),
		formatter: formatters.TTY256,
	}
}

// Line highlights one line. On any tokenization or formatting problem the
// line comes back unstyled rather than failing the render.
func (h *Highlighter) Line(line string) string {
	if line == "" {
		return line
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return line
	}
	return strings.TrimRight(buf.String(), "\n")
}
