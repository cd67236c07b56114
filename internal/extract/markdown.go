package extract

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor handles Markdown files using goldmark. Headings and
// body blocks are flattened into prose in document order; the whole
// document is one logical page.
type MarkdownExtractor struct{}

func (p *MarkdownExtractor) Pages(r io.Reader, filename string) ([]Page, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var buf strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		t := nodeText(n, src)
		if t == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(t)
	}

	return []Page{{Number: 1, Text: buf.String()}}, nil
}

// nodeText gets the text content of a goldmark AST node. A block's
// inline children cover the same source bytes as its Lines, so each
// node contributes either its children or its Lines, never both.
func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	writeNodeText(&buf, n, src)
	return strings.TrimSpace(buf.String())
}

func writeNodeText(buf *bytes.Buffer, n ast.Node, src []byte) {
	if !n.HasChildren() {
		if n.Type() == ast.TypeBlock {
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
		}
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
			continue
		}
		if c.Type() == ast.TypeBlock && buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		writeNodeText(buf, c, src)
	}
}
