package extract

import (
	"testing"

	"github.com/goliatone/go-cheatsheet/catalog"
)

func TestParseTimeEstimate(t *testing.T) {
	cases := []struct {
		input   string
		min     int
		max     int
		display string
	}{
		{"2-3 hours", 120, 180, "2-3 hours"},
		{"4 hours", 240, 240, "4 hours"},
		{"1 hour", 60, 60, "1 hour"},
		{"90 min", 90, 90, "90 min"},
		{"15 minutes", 15, 15, "15 minutes"},
		{"varies by scope", 0, 0, "varies by scope"},
		{"", 0, 0, ""},
	}

	for _, tc := range cases {
		got := ParseTimeEstimate(tc.input)
		if got.Min != tc.min || got.Max != tc.max {
			t.Fatalf("ParseTimeEstimate(%q) = %d-%d, want %d-%d", tc.input, got.Min, got.Max, tc.min, tc.max)
		}
		if got.Display != tc.display {
			t.Fatalf("ParseTimeEstimate(%q) display = %q, want %q", tc.input, got.Display, tc.display)
		}
	}
}

func TestParseTimeEstimateRangeBeatsSingle(t *testing.T) {
	got := ParseTimeEstimate("3-4 hours per run")
	if got.Min != 180 || got.Max != 240 {
		t.Fatalf("range form should win: got %d-%d", got.Min, got.Max)
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		input string
		want  catalog.Difficulty
	}{
		{"🔴 Advanced", catalog.DifficultyAdvanced},
		{"Advanced", catalog.DifficultyAdvanced},
		{"🟡 Intermediate", catalog.DifficultyIntermediate},
		{"🟢 Beginner", catalog.DifficultyBeginner},
		{"unknown", catalog.DifficultyBeginner},
		{"🔴 Intermediate", catalog.DifficultyAdvanced},
	}

	for _, tc := range cases {
		if got := ParseDifficulty(tc.input); got != tc.want {
			t.Fatalf("ParseDifficulty(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestBoldLabelOrderedAlternates(t *testing.T) {
	content := "**Organization:** Hospital network\n**Company:** should lose"

	if got := boldLabel(content, "Company", "Organization"); got != "should lose" {
		t.Fatalf("first alternate with a match must win: got %q", got)
	}
	if got := boldLabel(content, "Agency", "Organization"); got != "Hospital network" {
		t.Fatalf("fallthrough to later alternate failed: got %q", got)
	}
	if got := boldLabel(content, "Missing"); got != "" {
		t.Fatalf("absent label should be empty, got %q", got)
	}
}

func TestFencedBlocksDefaultLanguage(t *testing.T) {
	lines := []string{"```", "echo hi", "```", "```python", "print('x')", "```"}
	blocks := fencedBlocks(lines)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Language != "bash" {
		t.Fatalf("bare fence should default to bash, got %q", blocks[0].Language)
	}
	if blocks[1].Language != "python" || blocks[1].Code != "print('x')" {
		t.Fatalf("unexpected second block: %+v", blocks[1])
	}
}

// testRoot resolves the repository content corpus for integration-style
// extractor tests.
func testRoot(t *testing.T) string {
	t.Helper()
	root, err := ResolveRoot()
	if err != nil {
		t.Fatalf("resolve content root: %v", err)
	}
	return root
}
