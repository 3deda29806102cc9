package extractor

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// extractMarkdown emits one line per source line of every text block. List
// items are prefixed with a bullet glyph so the list grammar recognizes them.
func extractMarkdown(src []byte) (string, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var lines []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		lines = appendMarkdownBlock(lines, n, src, 0)
	}
	return strings.Join(lines, "\n"), nil
}

func appendMarkdownBlock(lines []string, n ast.Node, src []byte, depth int) []string {
	switch node := n.(type) {
	case *ast.List:
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			lines = appendListItem(lines, item, src, depth)
		}
		return lines
	case *ast.ThematicBreak, *ast.HTMLBlock:
		return lines
	}

	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return append(lines, blockLines(n, src)...)
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		lines = appendMarkdownBlock(lines, c, src, depth)
	}
	return lines
}

func appendListItem(lines []string, item ast.Node, src []byte, depth int) []string {
	glyph := "• "
	if depth > 0 {
		glyph = strings.Repeat("  ", depth) + "◦ "
	}
	first := true
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if list, ok := c.(*ast.List); ok {
			lines = appendMarkdownBlock(lines, list, src, depth+1)
			continue
		}
		for _, l := range blockLines(c, src) {
			if first {
				l = glyph + l
				first = false
			}
			lines = append(lines, l)
		}
	}
	return lines
}

func blockLines(n ast.Node, src []byte) []string {
	var out []string
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		if l := strings.TrimSpace(string(seg.Value(src))); l != "" {
			out = append(out, l)
		}
	}
	return out
}
