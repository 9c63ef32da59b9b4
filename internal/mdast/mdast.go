// Package mdast provides generic, dialect-agnostic structural queries
// over a goldmark syntax tree: plain-text extraction, heading lookup,
// section slicing, and code-block/link collection. It carries no
// knowledge of the cheatsheet content dialects.
package mdast

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// CodeBlock is a fenced code block lifted out of the tree. Language is
// empty when the fence carries no info string.
type CodeBlock struct {
	Language string
	Code     string
}

// Link is a hyperlink with its rendered text.
type Link struct {
	Title string
	URL   string
}

// Tree pairs a parsed document with its source bytes. goldmark nodes
// reference the source through segments, so the two always travel
// together.
type Tree struct {
	doc    ast.Node
	source []byte
}

var engine = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.TaskList),
)

// Parse builds a block-level syntax tree for the supplied markdown.
func Parse(source []byte) *Tree {
	reader := text.NewReader(source)
	doc := engine.Parser().Parse(reader)
	return &Tree{doc: doc, source: source}
}

// Source returns the raw bytes the tree was parsed from.
func (t *Tree) Source() []byte { return t.source }

// Root returns the document node.
func (t *Tree) Root() ast.Node { return t.doc }

// ExtractText recursively concatenates all leaf text values under a
// node. Nodes with no text descendants yield the empty string.
func (t *Tree) ExtractText(n ast.Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	collectText(n, t.source, &buf)
	return buf.String()
}

func collectText(n ast.Node, source []byte, buf *bytes.Buffer) {
	switch node := n.(type) {
	case *ast.Text:
		buf.Write(node.Segment.Value(source))
		return
	case *ast.String:
		buf.Write(node.Value)
		return
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		collectText(child, source, buf)
	}
}

// HeadingsAtDepth returns the top-level heading nodes whose depth
// exactly equals the requested value, in document order.
func (t *Tree) HeadingsAtDepth(depth int) []*ast.Heading {
	var headings []*ast.Heading
	for child := t.doc.FirstChild(); child != nil; child = child.NextSibling() {
		if heading, ok := child.(*ast.Heading); ok && heading.Level == depth {
			headings = append(headings, heading)
		}
	}
	return headings
}

// SectionOf returns the contiguous run of sibling nodes strictly after
// the heading up to, not including, the next heading of equal or
// lesser depth. This is the scope operator bounding every
// section-level extraction.
func (t *Tree) SectionOf(heading *ast.Heading) []ast.Node {
	if heading == nil {
		return nil
	}
	var section []ast.Node
	for sibling := heading.NextSibling(); sibling != nil; sibling = sibling.NextSibling() {
		if next, ok := sibling.(*ast.Heading); ok && next.Level <= heading.Level {
			break
		}
		section = append(section, sibling)
	}
	return section
}

// CodeBlocks filters a node list down to fenced code blocks.
func (t *Tree) CodeBlocks(nodes []ast.Node) []CodeBlock {
	var blocks []CodeBlock
	for _, n := range nodes {
		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			blocks = append(blocks, CodeBlock{
				Language: string(node.Language(t.source)),
				Code:     t.linesValue(node),
			})
		case *ast.CodeBlock:
			blocks = append(blocks, CodeBlock{
				Code: t.linesValue(node),
			})
		}
	}
	return blocks
}

func (t *Tree) linesValue(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(t.source))
	}
	return buf.String()
}

// AllLinks collects every link in the document.
func (t *Tree) AllLinks() []Link {
	return t.Links([]ast.Node{t.doc})
}

// Links recursively collects every link under the supplied nodes.
func (t *Tree) Links(nodes []ast.Node) []Link {
	var links []Link
	for _, n := range nodes {
		_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			if link, ok := node.(*ast.Link); ok {
				links = append(links, Link{
					Title: t.ExtractText(link),
					URL:   string(link.Destination),
				})
			}
			return ast.WalkContinue, nil
		})
	}
	return links
}
