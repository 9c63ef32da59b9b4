package extract

import (
	"strings"
	"testing"

	"github.com/goliatone/go-cheatsheet/catalog"
)

func TestToolsCorpus(t *testing.T) {
	extractor := New(testRoot(t), nil)
	tools, err := extractor.Tools()
	if err != nil {
		t.Fatalf("extract tools: %v", err)
	}
	if len(tools) < 8 {
		t.Fatalf("expected at least 8 tools, got %d", len(tools))
	}

	byName := map[string]catalog.Tool{}
	for _, tool := range tools {
		byName[tool.Name] = tool
	}

	amass, ok := byName["Amass"]
	if !ok {
		t.Fatalf("Amass missing from tool extraction")
	}
	if amass.Category != "Passive Reconnaissance" {
		t.Fatalf("amass category = %q", amass.Category)
	}
	if amass.SourceFile != "recon_tools.md" {
		t.Fatalf("amass source file = %q", amass.SourceFile)
	}
	if amass.Slug != "amass" || amass.ID != "amass" {
		t.Fatalf("amass slug/id = %q/%q", amass.Slug, amass.ID)
	}
	if !strings.Contains(amass.Purpose, "attack surface mapping") {
		t.Fatalf("amass purpose = %q", amass.Purpose)
	}
	if len(amass.Installation) != 1 {
		t.Fatalf("amass installation blocks = %d", len(amass.Installation))
	}
	if len(amass.Usage) != 2 {
		t.Fatalf("amass usage blocks = %d", len(amass.Usage))
	}
	if amass.Usage[0].Title != "Basic Usage" || amass.Usage[1].Title != "Advanced Options" {
		t.Fatalf("amass usage titles: %q, %q", amass.Usage[0].Title, amass.Usage[1].Title)
	}
	if amass.Link == "" || amass.Difficulty == "" {
		t.Fatalf("amass metadata incomplete: %+v", amass)
	}

	cloud, ok := byName["cloud_enum"]
	if !ok {
		t.Fatalf("cloud_enum missing from tool extraction")
	}
	if cloud.Category != "cloud_enum" {
		t.Fatalf("heading-level tools are their own category, got %q", cloud.Category)
	}
	if cloud.SourceFile != "cloud_enum_tools.md" {
		t.Fatalf("cloud_enum source file = %q", cloud.SourceFile)
	}
}

func TestParseToolsLookaheadDecidesHeadingRole(t *testing.T) {
	content := strings.Join([]string{
		"## 🔍 Category Heading",
		"",
		"### nested",
		"",
		"**Purpose:** nested tool",
		"",
		"## ☁️ standalone",
		"",
		"**Purpose:** heading-level tool",
		"",
		"```bash",
		"run",
		"```",
	}, "\n")

	tools := ParseTools(content, "sample.md")
	if len(tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(tools))
	}
	if tools[0].Name != "nested" || tools[0].Category != "Category Heading" {
		t.Fatalf("H3 tool: %+v", tools[0])
	}
	if tools[1].Name != "standalone" || tools[1].Category != "standalone" {
		t.Fatalf("H2 tool: %+v", tools[1])
	}
}

func TestParseToolsPurposeRequired(t *testing.T) {
	content := strings.Join([]string{
		"## 🔍 Things",
		"",
		"### no-purpose",
		"",
		"**Link:** https://example.com",
		"",
		"### has-purpose",
		"",
		"**Purpose:** does things",
	}, "\n")

	tools := ParseTools(content, "sample.md")
	if len(tools) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(tools))
	}
	if tools[0].Name != "has-purpose" {
		t.Fatalf("tool = %q", tools[0].Name)
	}
}

func TestParseToolsConfigurationEndsUsage(t *testing.T) {
	content := strings.Join([]string{
		"## 🔍 Things",
		"",
		"### tool",
		"",
		"**Purpose:** p",
		"",
		"**Basic Usage:**",
		"",
		"```bash",
		"use it",
		"```",
		"",
		"**Configuration:** keys go in a file",
		"",
		"```yaml",
		"key: value",
		"```",
	}, "\n")

	tools := ParseTools(content, "sample.md")
	if len(tools) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(tools))
	}
	usage := tools[0].Usage
	if len(usage) != 1 {
		t.Fatalf("configuration block must not count as usage, got %d blocks", len(usage))
	}
	if usage[0].Code != "use it" {
		t.Fatalf("usage code = %q", usage[0].Code)
	}
}

func TestParseToolsCustomMutationsStaysOpen(t *testing.T) {
	content := strings.Join([]string{
		"## 🔍 Things",
		"",
		"### tool",
		"",
		"**Purpose:** p",
		"",
		"**Usage Examples:**",
		"",
		"```bash",
		"one",
		"```",
		"",
		"**Custom Mutations ship with the tool**",
		"",
		"```bash",
		"two",
		"```",
	}, "\n")

	tools := ParseTools(content, "sample.md")
	if len(tools) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(tools))
	}
	if len(tools[0].Usage) != 2 {
		t.Fatalf("Custom Mutations must not end the usage state, got %d blocks", len(tools[0].Usage))
	}
}

func TestToolsMissingFileFails(t *testing.T) {
	extractor := New(t.TempDir(), nil)
	if _, err := extractor.Tools(); err == nil {
		t.Fatalf("missing tool reference files must fail extraction")
	}
}
