package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-cheatsheet/catalog"
)

var (
	reCategoryHeading = regexp.MustCompile(`^##\s+(\S+)\s+(.+)$`)
	reToolHeading     = regexp.MustCompile(`^###\s+(.+)$`)
)

// Commands extracts every runnable snippet from the command
// cheatsheet.
func (e *Extractor) Commands() ([]catalog.Command, error) {
	body, _, err := ReadDocument(e.root, CommandsFile)
	if err != nil {
		return nil, err
	}
	commands := ParseCommands(body)
	e.logger.Debug("extract.commands", "count", len(commands))
	return commands, nil
}

// ParseCommands walks the cheatsheet dialect. Category and tool are
// independent scan-state variables: a category heading clears the
// current tool, a tool heading keeps the category. Every fenced code
// block seen while both are set becomes one command; blocks with no
// tool in scope are dropped. IDs are cmd-{n}, counted across the whole
// document.
func ParseCommands(content string) []catalog.Command {
	lines := splitLines(content)
	var commands []catalog.Command

	currentCategory := ""
	currentEmoji := ""
	currentTool := ""
	inCodeBlock := false
	codeLanguage := ""
	var codeLines []string
	var descriptionLines []string
	commandIndex := 0

	for _, line := range lines {
		if m := reCategoryHeading.FindStringSubmatch(line); m != nil && !strings.HasPrefix(line, "###") && !inCodeBlock {
			currentEmoji = m[1]
			currentCategory = strings.TrimSpace(m[2])
			currentTool = ""
			descriptionLines = nil
			continue
		}

		if m := reToolHeading.FindStringSubmatch(line); m != nil && currentCategory != "" && !inCodeBlock {
			currentTool = strings.TrimSpace(m[1])
			descriptionLines = nil
			continue
		}

		if isFenceLine(line) && !inCodeBlock {
			inCodeBlock = true
			codeLanguage = strings.TrimSpace(line[len(fenceMarker):])
			if codeLanguage == "" {
				codeLanguage = "bash"
			}
			codeLines = nil
			continue
		}

		if isFenceLine(line) && inCodeBlock {
			inCodeBlock = false
			if currentCategory != "" && currentTool != "" {
				commandIndex++
				commands = append(commands, catalog.Command{
					ID:            "cmd-" + strconv.Itoa(commandIndex),
					Tool:          currentTool,
					Category:      currentCategory,
					CategoryEmoji: currentEmoji,
					Code:          strings.Join(codeLines, "\n"),
					Language:      codeLanguage,
					Description:   strings.TrimSpace(strings.Join(descriptionLines, "\n")),
				})
			}
			descriptionLines = nil
			continue
		}

		if inCodeBlock {
			codeLines = append(codeLines, line)
		} else if currentTool != "" && !strings.HasPrefix(line, "#") {
			descriptionLines = append(descriptionLines, line)
		}
	}

	return commands
}
