package extract

import (
	"path"
	"regexp"
	"strings"

	"github.com/goliatone/go-cheatsheet/catalog"
)

var (
	reToolH2   = regexp.MustCompile(`^##\s+(\S+)\s+(.+)$`)
	reToolH3   = regexp.MustCompile(`^###\s+(.+)$`)
	reBoldOpen = regexp.MustCompile(`^\*\*(.+?):\*\*`)

	reInstallLabel = regexp.MustCompile(`^\*\*Installation:\*\*`)
	reUsageLabel   = regexp.MustCompile(`^\*\*(?:Basic Usage|Usage Examples?|Basic Searches|Advanced (?:Queries|Techniques|Options|Module Usage)|Programmatic Usage|Basic Workflow|Common Modules|Session Management|Custom Rules):\*\*`)
	reEndLabel     = regexp.MustCompile(`^\*\*(?:Configuration|API Configuration|Custom)`)
	reCustomMut    = regexp.MustCompile(`^\*\*Custom Mutations`)
)

// toolSources lists the tool reference files in scan order.
var toolSources = []string{ReconToolsFile, CloudToolsFile}

// Tools extracts every tool entry across the tool reference files.
// Candidates without a Purpose line are skipped entirely.
func (e *Extractor) Tools() ([]catalog.Tool, error) {
	var tools []catalog.Tool
	for _, rel := range toolSources {
		body, _, err := ReadDocument(e.root, rel)
		if err != nil {
			return nil, err
		}
		tools = append(tools, ParseTools(body, path.Base(rel))...)
	}
	e.logger.Debug("extract.tools", "count", len(tools))
	return tools, nil
}

// ParseTools walks one tool reference file. Some files declare tools
// as emoji H2 headings, others as plain H3 headings under an H2
// category. The ambiguity is resolved by a bounded lookahead: an H2 is
// a tool only when a `**Purpose:**` line appears within the next four
// lines before any sub-heading. The lookahead runs before any line is
// consumed, so it is order-sensitive by construction.
func ParseTools(content, sourceFile string) []catalog.Tool {
	lines := splitLines(content)
	var tools []catalog.Tool

	currentCategory := ""
	inFence := false
	i := 0

	for i < len(lines) {
		line := lines[i]

		if isFenceLine(line) {
			inFence = !inFence
			i++
			continue
		}
		if inFence {
			i++
			continue
		}

		catMatch := reToolH2.FindStringSubmatch(line)
		if catMatch != nil && !strings.HasPrefix(line, "###") {
			if !isToolH2(lines, i) {
				currentCategory = strings.TrimSpace(catMatch[2])
				i++
				continue
			}
		}

		toolName := ""
		isH2Tool := false

		if m := reToolH3.FindStringSubmatch(line); m != nil {
			toolName = strings.TrimSpace(m[1])
		} else if catMatch != nil {
			lookahead := strings.Join(lines[i+1:min(i+5, len(lines))], "\n")
			if strings.Contains(lookahead, "**Purpose:**") {
				toolName = strings.TrimSpace(catMatch[2])
				currentCategory = toolName
				isH2Tool = true
			} else {
				currentCategory = strings.TrimSpace(catMatch[2])
				i++
				continue
			}
		}

		if toolName == "" {
			i++
			continue
		}

		var buf []string
		bufFence := false
		i++
		for i < len(lines) {
			next := lines[i]
			if isFenceLine(next) {
				bufFence = !bufFence
			}
			if !bufFence && !isFenceLine(next) {
				if reH2Start.MatchString(next) {
					break
				}
				if !isH2Tool && reH3Line.MatchString(next) {
					break
				}
			}
			buf = append(buf, next)
			i++
		}

		toolContent := strings.Join(buf, "\n")
		purpose := boldLabel(toolContent, "Purpose")
		if purpose == "" {
			continue
		}

		installation, usage := parseToolBlocks(buf)

		tools = append(tools, catalog.Tool{
			ID:           catalog.Slugify(toolName),
			Name:         toolName,
			Slug:         catalog.Slugify(toolName),
			Purpose:      purpose,
			Difficulty:   boldLabel(toolContent, "Difficulty"),
			Link:         boldLabel(toolContent, "Link"),
			Category:     currentCategory,
			SourceFile:   sourceFile,
			Installation: installation,
			Usage:        usage,
			Content:      toolContent,
		})
	}

	return tools
}

// isToolH2 looks ahead up to four lines for a `**Purpose:**` line: the
// first non-blank line decides, and a sub-heading means the H2 is a
// category. The scan must not consume lines; record collection starts
// from the heading either way.
func isToolH2(lines []string, i int) bool {
	for j := i + 1; j < min(i+5, len(lines)); j++ {
		next := strings.TrimSpace(lines[j])
		if next == "" {
			continue
		}
		if strings.HasPrefix(next, "###") {
			return false
		}
		if strings.HasPrefix(next, "**Purpose:**") {
			return true
		}
		return false
	}
	return false
}

// parseToolBlocks attributes fenced code blocks to installation or
// usage according to the most recent bold subsection label. A bold
// label outside the recognized sets ends the current state when it is
// a configuration-style label.
func parseToolBlocks(lines []string) ([]catalog.CodeBlock, []catalog.UsageBlock) {
	var installation []catalog.CodeBlock
	var usage []catalog.UsageBlock

	inInstallation := false
	inUsage := false
	usageTitle := ""
	inBlock := false
	blockLang := ""
	var blockLines []string

	for _, line := range lines {
		if reInstallLabel.MatchString(line) {
			inInstallation = true
			inUsage = false
			continue
		}
		if reUsageLabel.MatchString(line) {
			inUsage = true
			inInstallation = false
			usageTitle = "Usage"
			if m := reBoldOpen.FindStringSubmatch(line); m != nil {
				usageTitle = m[1]
			}
			continue
		}
		if reEndLabel.MatchString(line) && !reCustomMut.MatchString(line) {
			inInstallation = false
			inUsage = false
		}

		switch {
		case isFenceLine(line) && !inBlock:
			inBlock = true
			blockLang = strings.TrimSpace(line[len(fenceMarker):])
			if blockLang == "" {
				blockLang = "bash"
			}
			blockLines = nil
		case isFenceLine(line) && inBlock:
			inBlock = false
			if inInstallation {
				installation = append(installation, catalog.CodeBlock{
					Language: blockLang,
					Code:     strings.Join(blockLines, "\n"),
				})
			} else if inUsage {
				usage = append(usage, catalog.UsageBlock{
					Title:    usageTitle,
					Language: blockLang,
					Code:     strings.Join(blockLines, "\n"),
				})
			}
		case inBlock:
			blockLines = append(blockLines, line)
		}
	}

	return installation, usage
}
