package render

import (
	"bytes"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// MarkdownRenderer renders the blog's markdown dialect: GFM tables,
// strikethrough, task lists, bare-URL autolinks, :emoji: shorthand,
// heading anchors, and raw HTML passed through untouched.
type MarkdownRenderer struct {
	md goldmark.Markdown
}

func NewMarkdownRenderer() *MarkdownRenderer {
	exts := []goldmark.Extender{
		extension.GFM,
		extension.Linkify,
		extension.Strikethrough,
		extension.Table,
		emoji.Emoji,
	}
	return &MarkdownRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(exts...),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

func (r *MarkdownRenderer) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
