package html

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// DefaultStyle is the chroma theme used for code blocks.
const DefaultStyle = "monokai"

// Renderer converts post markdown to HTML.
// Raw HTML in the source is dropped; fenced code blocks are highlighted with inline styles.
type Renderer struct {
	md goldmark.Markdown
}

// Option configures the Renderer.
type Option func(*codeRenderer)

// WithStyle selects the chroma theme. Unknown names fall back to chroma's default.
func WithStyle(name string) Option {
	return func(c *codeRenderer) {
		c.style = styles.Get(name)
	}
}

// New builds a GFM renderer.
func New(opts ...Option) *Renderer {
	code := &codeRenderer{
		style:     styles.Get(DefaultStyle),
		formatter: chromahtml.New(chromahtml.TabWidth(4)),
	}
	for _, opt := range opts {
		opt(code)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			// Lower value wins over the default HTML renderer (1000).
			renderer.WithNodeRenderers(util.Prioritized(code, 200)),
		),
	)
	return &Renderer{md: md}
}

// Render converts markdown to an HTML fragment.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown render failed: %w", err)
	}
	return buf.String(), nil
}

type codeRenderer struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func (c *codeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, c.renderFencedCode)
}

func (c *codeRenderer) renderFencedCode(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(source))
	}

	lexer := lexers.Get(string(n.Language(source)))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code.String())
	if err != nil {
		return ast.WalkStop, err
	}
	if err := c.formatter.Format(w, c.style, iterator); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}
