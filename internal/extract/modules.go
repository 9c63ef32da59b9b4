package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-cheatsheet/catalog"
	"github.com/goliatone/go-cheatsheet/internal/mdast"
)

var (
	reTrackHeading  = regexp.MustCompile(`^### [🟢🟡🔴]\s+(.+Track)(?::\s+.+)?$`)
	reModuleHeading = regexp.MustCompile(`^####\s+Module\s+(\d+):\s+(.+?)\s*\((.+?)\)\s*$`)
	reModuleStart   = regexp.MustCompile(`^####\s+Module\s+\d+:`)
	reTrackStart    = regexp.MustCompile(`^###\s+[🟢🟡🔴]`)
	reH2Start       = regexp.MustCompile(`^##\s+`)

	reDashItem     = regexp.MustCompile(`^-\s+(.+)`)
	reNumberedItem = regexp.MustCompile(`^\d+\.\s+(.+)`)
	reCheckboxItem = regexp.MustCompile(`^-\s+\[\s*\]\s+(.+)`)
)

// Modules extracts every learning module from the learning guide.
func (e *Extractor) Modules() ([]catalog.LearningModule, error) {
	body, meta, err := ReadDocument(e.root, ModulesFile)
	if err != nil {
		return nil, err
	}
	modules := ParseModules(body)
	e.logger.Debug("extract.modules", "count", len(modules), "doc_version", meta.Version)
	return modules, nil
}

// ParseModules walks the learning-guide dialect: track headings update
// a running track context; `#### Module N: Title (Time)` opens a
// record that runs until the next module, track, or H2 heading, or a
// `---` rule. Heading-like lines inside fenced code never end a
// record.
func ParseModules(content string) []catalog.LearningModule {
	lines := splitLines(content)
	var modules []catalog.LearningModule

	currentTrack := ""
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

		if m := reTrackHeading.FindStringSubmatch(line); m != nil {
			currentTrack = m[1]
		}

		m := reModuleHeading.FindStringSubmatch(line)
		if m == nil {
			i++
			continue
		}

		moduleID, _ := strconv.Atoi(m[1])
		title := strings.TrimSpace(m[2])
		timeEstimate := ParseTimeEstimate(m[3])

		var buf []string
		bufFence := false
		i++
		for i < len(lines) {
			next := lines[i]
			if isFenceLine(next) {
				bufFence = !bufFence
			}
			if !bufFence {
				if reModuleStart.MatchString(next) || reTrackStart.MatchString(next) || reH2Start.MatchString(next) {
					break
				}
				if strings.TrimSpace(next) == "---" {
					i++
					break
				}
			}
			buf = append(buf, next)
			i++
		}

		moduleContent := strings.Join(buf, "\n")

		var prerequisites []string
		if raw := boldLabel(moduleContent, "Prerequisites"); raw != "" {
			for _, p := range strings.Split(raw, ",") {
				if trimmed := strings.TrimSpace(p); trimmed != "" {
					prerequisites = append(prerequisites, trimmed)
				}
			}
		}

		difficulty := catalog.DifficultyBeginner
		if raw := boldLabel(moduleContent, "Difficulty"); raw != "" {
			difficulty = ParseDifficulty(raw)
		}

		objectives := labeledItems(buf, "Learning Objectives", reDashItem)
		activities := labeledItems(buf, "Hands-On Activities", reNumberedItem)

		var successCriteria []catalog.SuccessCriterion
		for _, text := range labeledItems(buf, "Success Criteria", reCheckboxItem) {
			successCriteria = append(successCriteria, catalog.SuccessCriterion{
				ID:   "module-" + m[1] + "-sc-" + strconv.Itoa(len(successCriteria)+1),
				Text: text,
			})
		}

		var resources []catalog.Resource
		if section := resourceLines(buf); len(section) > 0 {
			tree := mdast.Parse([]byte(strings.Join(section, "\n")))
			for _, link := range tree.AllLinks() {
				resources = append(resources, catalog.Resource{Title: link.Title, URL: link.URL})
			}
		}

		modules = append(modules, catalog.LearningModule{
			ID:              moduleID,
			Title:           title,
			Slug:            catalog.Slugify(title),
			Difficulty:      difficulty,
			TimeEstimate:    timeEstimate,
			Prerequisites:   prerequisites,
			Objectives:      objectives,
			Activities:      activities,
			SuccessCriteria: successCriteria,
			Resources:       resources,
			Track:           currentTrack,
			Content:         moduleContent,
		})
	}

	return modules
}

// resourceLines returns the raw lines of the Resources section; the
// section is parsed as markdown to lift out link titles and URLs.
func resourceLines(lines []string) []string {
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "**Resources:**") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}
	var out []string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "**") || strings.HasPrefix(trimmed, "#") {
			break
		}
		out = append(out, line)
	}
	return out
}
