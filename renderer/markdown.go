package renderer

import (
	"bytes"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// RenderResult wraps HTML markup and the plain text it was rendered from.
type RenderResult struct {
	HTML      []byte
	PlainText string
}

// Renderer turns entry descriptions written in markdown into HTML fragments.
type Renderer struct {
	md       goldmark.Markdown
	minifier *Minifier
}

// New constructs a renderer with GitHub-flavored markdown and syntax highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
					chromahtml.ClassPrefix("z-"),
					chromahtml.PreventSurroundingPre(true),
				),
				highlighting.WithWrapperRenderer(codeWrapper),
			),
		),
	)
	return &Renderer{md: md, minifier: NewMinifier()}
}

// Render converts markdown into HTML. Raw HTML in the source is escaped.
func (r *Renderer) Render(src []byte) (*RenderResult, error) {
	reader := text.NewReader(src)
	doc := r.md.Parser().Parse(reader)

	plain := &strings.Builder{}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if node, ok := n.(*ast.Text); ok && entering {
			plain.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				plain.WriteByte(' ')
			}
		}
		if _, ok := n.(*ast.Paragraph); ok && !entering {
			plain.WriteByte(' ')
		}
		return ast.WalkContinue, nil
	})

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return nil, err
	}
	return &RenderResult{HTML: buf.Bytes(), PlainText: strings.Join(strings.Fields(plain.String()), " ")}, nil
}

// MinifyHTML optimizes rendered page markup.
func (r *Renderer) MinifyHTML(raw []byte) ([]byte, error) {
	return r.minifier.Bytes(MediaHTML, raw)
}

// Minifier exposes the shared minifier for theme assets.
func (r *Renderer) Minifier() *Minifier {
	return r.minifier
}

func codeWrapper(w util.BufWriter, ctx highlighting.CodeBlockContext, entering bool) {
	lang := "text"
	if raw, ok := ctx.Language(); ok && len(raw) > 0 {
		lang = string(raw)
	}
	lang = string(util.EscapeHTML([]byte(lang)))
	if entering {
		_, _ = fmt.Fprintf(w, `<pre tabindex="0" class="z-chroma language-%[1]s"><code data-lang="%[1]s">`, lang)
		return
	}
	_, _ = w.WriteString("</code></pre>\n")
}
