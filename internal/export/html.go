package export

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"

	"nbdiff/internal/celldiff"
)

var tokenClass = map[chroma.TokenType]string{
	chroma.Keyword:       "hl-k",
	chroma.NameBuiltin:   "hl-b",
	chroma.NameFunction:  "hl-f",
	chroma.LiteralString: "hl-s",
	chroma.LiteralNumber: "hl-n",
	chroma.Operator:      "hl-o",
	chroma.Comment:       "hl-c",
}

// HTML renders the pair as a self-contained side-by-side report with
// inline styles, suitable for sharing without the terminal UI.
func HTML(leftTitle, rightTitle, leftText, rightText string) ([]byte, error) {
	left := celldiff.ForSide(leftText, rightText, celldiff.Left)
	right := celldiff.ForSide(leftText, rightText, celldiff.Right)
	rows := celldiff.AlignRows(left, right)

	hl := newLineHighlighter()

	data := reportData{LeftTitle: leftTitle, RightTitle: rightTitle}
	for _, row := range rows {
		var r htmlRow
		if row.Left >= 0 {
			line := left[row.Left]
			r.LeftNo = strconv.Itoa(row.Left + 1)
			r.LeftClass = cellClass(line)
			r.LeftHTML = hl.render(line)
		} else {
			r.LeftClass = "pad"
		}
		if row.Right >= 0 {
			line := right[row.Right]
			r.RightNo = strconv.Itoa(row.Right + 1)
			r.RightClass = cellClass(line)
			r.RightHTML = hl.render(line)
		} else {
			r.RightClass = "pad"
		}
		data.Rows = append(data.Rows, r)
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}

	minifier := minify.New()
	minifier.AddFunc("text/css", css.Minify)
	minifier.AddFunc("text/html", minhtml.Minify)
	out, err := minifier.Bytes("text/html", buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("minifying report: %w", err)
	}
	return out, nil
}

type reportData struct {
	LeftTitle  string
	RightTitle string
	Rows       []htmlRow
}

type htmlRow struct {
	LeftNo     string
	RightNo    string
	LeftClass  string
	RightClass string
	LeftHTML   template.HTML
	RightHTML  template.HTML
}

func cellClass(line celldiff.RenderLine) string {
	kind := ""
	switch line.Kind {
	case celldiff.LineUnchanged:
		kind = "unchanged"
	case celldiff.LineAdded:
		kind = "added"
	case celldiff.LineRemoved:
		kind = "removed"
	case celldiff.LineModified:
		kind = "modified"
	}
	if line.IsBlockHeader {
		return kind + " head"
	}
	return kind
}

type lineHighlighter struct {
	lexer chroma.Lexer
}

func newLineHighlighter() *lineHighlighter {
	lexer := lexers.Get("mathematica")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &lineHighlighter{lexer: chroma.Coalesce(lexer)}
}

// render produces the cell markup for one line. Unchanged lines get
// syntax classes; changed lines get ins/del marks from their spans.
func (hl *lineHighlighter) render(line celldiff.RenderLine) template.HTML {
	if line.Kind == celldiff.LineUnchanged {
		return hl.highlight(line.Text())
	}

	var sb strings.Builder
	for _, span := range line.Spans {
		switch span.Kind {
		case celldiff.SpanInserted:
			sb.WriteString("<ins>")
			sb.WriteString(html.EscapeString(span.Text))
			sb.WriteString("</ins>")
		case celldiff.SpanDeleted:
			sb.WriteString("<del>")
			sb.WriteString(html.EscapeString(span.Text))
			sb.WriteString("</del>")
		default:
			sb.WriteString(html.EscapeString(span.Text))
		}
	}
	return template.HTML(sb.String())
}

func (hl *lineHighlighter) highlight(line string) template.HTML {
	it, err := hl.lexer.Tokenise(nil, line)
	if err != nil {
		return template.HTML(html.EscapeString(line))
	}
	tokens := it.Tokens()
	// The lexer guarantees a trailing newline; drop it so the cell
	// stays a single visual line.
	if n := len(tokens); n > 0 {
		tokens[n-1].Value = strings.TrimRight(tokens[n-1].Value, "\n")
	}

	var sb strings.Builder
	for _, token := range tokens {
		class := classFor(token.Type)
		if class != "" {
			fmt.Fprintf(&sb, "<span class=%q>", class)
		}
		sb.WriteString(html.EscapeString(token.Value))
		if class != "" {
			sb.WriteString("</span>")
		}
	}
	return template.HTML(sb.String())
}

func classFor(t chroma.TokenType) string {
	if s, ok := tokenClass[t]; ok {
		return s
	}
	if s, ok := tokenClass[t.SubCategory()]; ok {
		return s
	}
	if s, ok := tokenClass[t.Category()]; ok {
		return s
	}
	return ""
}

var reportTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.LeftTitle}} vs {{.RightTitle}}</title>
<style>
body { margin: 0; color: #1f2328; background: #ffffff; font: 13px/1.45 ui-monospace, SFMono-Regular, Menlo, Consolas, monospace; }
header { padding: 10px 16px; border-bottom: 1px solid #d1d9e0; font-weight: 600; }
table.diff { width: 100%; border-collapse: collapse; table-layout: fixed; }
th { padding: 6px 8px; text-align: left; border-bottom: 1px solid #d1d9e0; background: #f6f8fa; }
td.no { width: 3.5em; padding: 0 8px; text-align: right; color: #59636e; vertical-align: top; user-select: none; }
td.line { padding: 0 8px; }
td.line pre { margin: 0; min-height: 1.45em; font: inherit; white-space: pre-wrap; word-break: break-all; }
td.line.added { background: #dafbe1; }
td.line.removed { background: #ffebe9; }
td.line.modified { background: #fff8c5; }
td.line.pad { background: #f6f8fa; }
td.line.head { font-weight: 600; }
ins { background: #abf2bc; text-decoration: none; }
del { background: #ffc1c0; text-decoration: none; }
.hl-k { color: #cf222e; }
.hl-b { color: #0550ae; }
.hl-f { color: #6639ba; }
.hl-s { color: #0a3069; }
.hl-n { color: #0550ae; }
.hl-o { color: #57606a; }
.hl-c { color: #59636e; font-style: italic; }
</style>
</head>
<body>
<header>{{.LeftTitle}} vs {{.RightTitle}}</header>
<table class="diff">
<colgroup><col class="no"><col><col class="no"><col></colgroup>
<thead><tr><th></th><th>{{.LeftTitle}}</th><th></th><th>{{.RightTitle}}</th></tr></thead>
<tbody>
{{- range .Rows}}
<tr><td class="no">{{.LeftNo}}</td><td class="line {{.LeftClass}}"><pre>{{.LeftHTML}}</pre></td><td class="no">{{.RightNo}}</td><td class="line {{.RightClass}}"><pre>{{.RightHTML}}</pre></td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))
