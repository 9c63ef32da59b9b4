package mdast

import (
	"reflect"
	"testing"
)

const sampleDoc = `# Recon Notes

Intro paragraph with a [first link](https://example.com/one).

## Passive

Some **bold** text.

` + "```bash\namass enum -passive -d example.com\n```" + `

## Active

### Probing

` + "```\nplain block\n```" + `

- [second link](https://example.com/two)
`

func TestHeadingsAtDepth(t *testing.T) {
	tree := Parse([]byte(sampleDoc))

	h2 := tree.HeadingsAtDepth(2)
	if len(h2) != 2 {
		t.Fatalf("h2 count = %d, want 2", len(h2))
	}
	if got := tree.ExtractText(h2[0]); got != "Passive" {
		t.Fatalf("first h2 = %q", got)
	}
	if got := tree.ExtractText(h2[1]); got != "Active" {
		t.Fatalf("second h2 = %q", got)
	}

	if h1 := tree.HeadingsAtDepth(1); len(h1) != 1 {
		t.Fatalf("h1 count = %d, want 1", len(h1))
	}
	if h4 := tree.HeadingsAtDepth(4); h4 != nil {
		t.Fatalf("h4 count = %d, want 0", len(h4))
	}
}

func TestSectionOfStopsAtPeerHeading(t *testing.T) {
	tree := Parse([]byte(sampleDoc))
	h2 := tree.HeadingsAtDepth(2)

	passive := tree.SectionOf(h2[0])
	// paragraph + code block; the Active heading bounds the section.
	if len(passive) != 2 {
		t.Fatalf("passive section = %d nodes, want 2", len(passive))
	}

	// A deeper heading stays inside the section.
	active := tree.SectionOf(h2[1])
	if len(active) != 3 {
		t.Fatalf("active section = %d nodes, want 3", len(active))
	}

	if got := tree.SectionOf(nil); got != nil {
		t.Fatalf("nil heading must yield nil section")
	}
}

func TestCodeBlocks(t *testing.T) {
	tree := Parse([]byte(sampleDoc))
	h2 := tree.HeadingsAtDepth(2)

	blocks := tree.CodeBlocks(tree.SectionOf(h2[0]))
	want := []CodeBlock{{Language: "bash", Code: "amass enum -passive -d example.com\n"}}
	if !reflect.DeepEqual(blocks, want) {
		t.Fatalf("passive blocks = %+v", blocks)
	}

	blocks = tree.CodeBlocks(tree.SectionOf(h2[1]))
	if len(blocks) != 1 || blocks[0].Language != "" {
		t.Fatalf("bare fence must have empty language: %+v", blocks)
	}
}

func TestLinks(t *testing.T) {
	tree := Parse([]byte(sampleDoc))

	links := tree.AllLinks()
	want := []Link{
		{Title: "first link", URL: "https://example.com/one"},
		{Title: "second link", URL: "https://example.com/two"},
	}
	if !reflect.DeepEqual(links, want) {
		t.Fatalf("links = %+v", links)
	}

	h2 := tree.HeadingsAtDepth(2)
	scoped := tree.Links(tree.SectionOf(h2[1]))
	if len(scoped) != 1 || scoped[0].Title != "second link" {
		t.Fatalf("scoped links = %+v", scoped)
	}
}

func TestExtractText(t *testing.T) {
	tree := Parse([]byte(sampleDoc))
	h2 := tree.HeadingsAtDepth(2)

	section := tree.SectionOf(h2[0])
	if got := tree.ExtractText(section[0]); got != "Some bold text." {
		t.Fatalf("paragraph text = %q", got)
	}
	if got := tree.ExtractText(nil); got != "" {
		t.Fatalf("nil node text = %q", got)
	}
}
