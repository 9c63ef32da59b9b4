package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-cheatsheet/catalog"
)

var (
	reWorkflowHeading = regexp.MustCompile(`^##\s+([🟢🟡🔴])\s+(.+)$`)
	reWorkflowStart   = regexp.MustCompile(`^##\s+[🟢🟡🔴]`)
	reIndexHeading    = regexp.MustCompile(`^##\s+📋`)
	reStepHeading     = regexp.MustCompile(`^###\s+Step\s+(\d+):\s+(.+?)(?:\s*\((.+?)\))?\s*$`)
	reH3Line          = regexp.MustCompile(`^###\s+`)
)

// Workflows extracts every walkthrough from the practical workflows
// document.
func (e *Extractor) Workflows() ([]catalog.Workflow, error) {
	body, _, err := ReadDocument(e.root, WorkflowsFile)
	if err != nil {
		return nil, err
	}
	workflows := ParseWorkflows(body)
	e.logger.Debug("extract.workflows", "count", len(workflows))
	return workflows, nil
}

// ParseWorkflows walks the workflows dialect. Only H2 headings
// carrying a difficulty emoji open a workflow; the 📋 index heading is
// a boundary but never a record. Both the record scan and the step
// scan track code fences so example output containing heading-like
// lines stays inert.
func ParseWorkflows(content string) []catalog.Workflow {
	lines := splitLines(content)
	var workflows []catalog.Workflow

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

		m := reWorkflowHeading.FindStringSubmatch(line)
		if m == nil {
			i++
			continue
		}

		title := strings.TrimSpace(m[2])
		difficulty := ParseDifficulty(m[1])

		var buf []string
		bufFence := false
		i++
		for i < len(lines) {
			next := lines[i]
			if isFenceLine(next) {
				bufFence = !bufFence
			}
			if !bufFence && !isFenceLine(next) && (reWorkflowStart.MatchString(next) || reIndexHeading.MatchString(next)) {
				break
			}
			buf = append(buf, next)
			i++
		}

		wfContent := strings.Join(buf, "\n")
		timeEstimate := ParseTimeEstimate(boldLabel(wfContent, "Time Required"))

		workflows = append(workflows, catalog.Workflow{
			ID:            catalog.Slugify(title),
			Title:         title,
			Slug:          catalog.Slugify(title),
			Difficulty:    difficulty,
			TimeEstimate:  timeEstimate,
			Scenario:      boldLabel(wfContent, "Scenario"),
			Prerequisites: boldLabel(wfContent, "Prerequisites"),
			Output:        boldLabel(wfContent, "Output"),
			Steps:         parseWorkflowSteps(buf),
		})
	}

	return workflows
}

// parseWorkflowSteps matches `### Step N: Title (Time)` headings with
// an optional parenthetical time. Step numbers come from the source.
func parseWorkflowSteps(lines []string) []catalog.WorkflowStep {
	var steps []catalog.WorkflowStep

	inFence := false
	for si := 0; si < len(lines); si++ {
		line := lines[si]
		if isFenceLine(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		m := reStepHeading.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		stepNumber, _ := strconv.Atoi(m[1])

		var body []string
		bodyFence := false
		si++
		for si < len(lines) {
			next := lines[si]
			if isFenceLine(next) {
				bodyFence = !bodyFence
			}
			if !bodyFence && !isFenceLine(next) && reH3Line.MatchString(next) {
				si--
				break
			}
			body = append(body, next)
			si++
		}

		steps = append(steps, catalog.WorkflowStep{
			StepNumber:   stepNumber,
			Title:        strings.TrimSpace(m[2]),
			TimeEstimate: m[3],
			Content:      strings.Join(body, "\n"),
			CodeBlocks:   fencedBlocks(body),
		})
	}

	return steps
}
