package blog

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

// CodeBlockClass is set on the <pre> around every fenced code block so the
// page stylesheet can target highlighted and plain blocks alike.
const CodeBlockClass = "hljs-pre"

// Renderer turns markdown with a YAML front matter block into HTML.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				meta.Meta,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github-dark"),
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(true),
						chromahtml.PreventSurroundingPre(true),
					),
					highlighting.WithWrapperRenderer(wrapCodeBlock),
				),
			),
		),
	}
}

// Render converts src and returns the HTML body and the front matter.
func (r *Renderer) Render(src []byte) (string, map[string]interface{}, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext()
	if err := r.md.Convert(src, &buf, parser.WithContext(ctx)); err != nil {
		return "", nil, fmt.Errorf("convert markdown: %w", err)
	}

	fm, err := meta.TryGet(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("parse front matter: %w", err)
	}
	return buf.String(), fm, nil
}

// wrapCodeBlock gives every fenced block the same <pre>. Blocks without a
// language count as plaintext; blocks in a language chroma does not know get
// no language class.
func wrapCodeBlock(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	if !entering {
		_, _ = w.WriteString("</code></pre>\n")
		return
	}

	_, _ = w.WriteString(`<pre class="` + CodeBlockClass + `"><code`)
	lang, ok := c.Language()
	switch {
	case !ok || len(lang) == 0:
		_, _ = w.WriteString(` class="hljs language-plaintext"`)
	case c.Highlighted():
		_, _ = w.WriteString(` class="hljs language-`)
		_, _ = w.Write(util.EscapeHTML(lang))
		_ = w.WriteByte('"')
	}
	_ = w.WriteByte('>')
}
