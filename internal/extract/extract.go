// Package extract converts the hand-authored markdown corpus into
// typed catalog records. Each document follows its own semi-formal
// dialect, so every extractor is a single forward line scan built from
// three states: outside a record, inside a record collecting lines,
// and inside a fenced code block. The fence state exists so a
// heading-like line inside example code is never mistaken for a
// structural boundary.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-cheatsheet/catalog"
	"github.com/goliatone/go-cheatsheet/internal/logging"
	"github.com/goliatone/go-cheatsheet/pkg/interfaces"
)

// Extractor reads the content documents under a resolved root and
// emits typed records. Extraction is deterministic and assumes
// well-formed input; missing files fail loudly.
type Extractor struct {
	root   string
	logger interfaces.Logger
}

// New constructs an Extractor rooted at dir. A nil logger is replaced
// with a no-op implementation.
func New(dir string, logger interfaces.Logger) *Extractor {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Extractor{root: dir, logger: logger}
}

// Root returns the content root the extractor reads from.
func (e *Extractor) Root() string { return e.root }

const fenceMarker = "```"

func isFenceLine(line string) bool {
	return strings.HasPrefix(line, fenceMarker)
}

var (
	reRangeHours = regexp.MustCompile(`(?i)(\d+)-(\d+)\s*hours?`)
	reHours      = regexp.MustCompile(`(?i)(\d+)\s*hours?`)
	reMinutes    = regexp.MustCompile(`(?i)(\d+)\s*min(?:utes?)?`)
)

// ParseTimeEstimate parses the three textual duration shapes used by
// the corpus, in priority order: "N-M hours", "N hours", "N min".
// Unparseable text keeps the zero/zero sentinel with the original
// display string; it is never an error.
func ParseTimeEstimate(text string) catalog.TimeEstimate {
	display := strings.TrimSpace(text)

	if m := reRangeHours.FindStringSubmatch(display); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		return catalog.TimeEstimate{Min: lo * 60, Max: hi * 60, Display: display}
	}
	if m := reHours.FindStringSubmatch(display); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return catalog.TimeEstimate{Min: hours * 60, Max: hours * 60, Display: display}
	}
	if m := reMinutes.FindStringSubmatch(display); m != nil {
		mins, _ := strconv.Atoi(m[1])
		return catalog.TimeEstimate{Min: mins, Max: mins, Display: display}
	}
	return catalog.TimeEstimate{Display: display}
}

// ParseDifficulty maps emoji/keyword conventions onto the difficulty
// enum. Priority: red/Advanced over yellow/Intermediate, anything else
// defaults to beginner.
func ParseDifficulty(text string) catalog.Difficulty {
	if strings.Contains(text, "🔴") || strings.Contains(text, "Advanced") {
		return catalog.DifficultyAdvanced
	}
	if strings.Contains(text, "🟡") || strings.Contains(text, "Intermediate") {
		return catalog.DifficultyIntermediate
	}
	return catalog.DifficultyBeginner
}

// boldLabel returns the value after a `**Label:**` line anywhere in
// content, or the empty string. Alternate spellings are tried in
// order; the first match wins and later alternates are never checked.
func boldLabel(content string, labels ...string) string {
	for _, label := range labels {
		re := regexp.MustCompile(`\*\*` + regexp.QuoteMeta(label) + `:\*\*\s*(.+)`)
		if m := re.FindStringSubmatch(content); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// fencedBlocks runs a fence-tracking sub-scan over the supplied lines
// and returns every fenced code block. Fences with no info string
// default to bash, matching the corpus convention.
func fencedBlocks(lines []string) []catalog.CodeBlock {
	var blocks []catalog.CodeBlock
	var buf []string
	inBlock := false
	lang := ""

	for _, line := range lines {
		switch {
		case isFenceLine(line) && !inBlock:
			inBlock = true
			lang = strings.TrimSpace(line[len(fenceMarker):])
			if lang == "" {
				lang = "bash"
			}
			buf = nil
		case isFenceLine(line) && inBlock:
			inBlock = false
			blocks = append(blocks, catalog.CodeBlock{
				Language: lang,
				Code:     strings.Join(buf, "\n"),
			})
		case inBlock:
			buf = append(buf, line)
		}
	}
	return blocks
}

// labeledItems collects list items that follow a bold label line until
// the next bold label or heading. The item regexp decides which lines
// count (plain dashes, numbered items, unchecked checkboxes, links).
func labeledItems(lines []string, label string, item *regexp.Regexp) []string {
	start := -1
	prefix := "**" + label + ":**"
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var items []string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "**") || strings.HasPrefix(trimmed, "#") {
			break
		}
		if m := item.FindStringSubmatch(line); m != nil {
			items = append(items, strings.TrimSpace(m[1]))
		}
	}
	return items
}

func splitLines(content string) []string {
	return strings.Split(content, "\n")
}
