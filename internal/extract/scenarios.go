package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-cheatsheet/catalog"
)

var (
	reScenarioHeading = regexp.MustCompile(`^##\s+\S+\s+SCENARIO\s+(\d+):\s+(.+)$`)
	reScenarioStart   = regexp.MustCompile(`^##\s+\S+\s+SCENARIO\s+\d+:`)
	rePhaseHeading    = regexp.MustCompile(`^###\s+(?:Phase\s+(\d+):\s+)?(.+?)(?:\s*\((.+?)\))?\s*$`)
)

// Scenarios extracts every card from the quick-reference deck.
func (e *Extractor) Scenarios() ([]catalog.Scenario, error) {
	body, _, err := ReadDocument(e.root, ScenariosFile)
	if err != nil {
		return nil, err
	}
	scenarios := ParseScenarios(body)
	e.logger.Debug("extract.scenarios", "count", len(scenarios))
	return scenarios, nil
}

// ParseScenarios walks the scenario-card dialect. A record opens at an
// emoji-prefixed `SCENARIO N:` heading; the title splits on the first
// literal " - " into title and subtitle. Phases take the explicit
// "Phase N" number when present, otherwise a counter local to the
// scenario.
func ParseScenarios(content string) []catalog.Scenario {
	lines := splitLines(content)
	var scenarios []catalog.Scenario

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

		m := reScenarioHeading.FindStringSubmatch(line)
		if m == nil {
			i++
			continue
		}

		scenarioID, _ := strconv.Atoi(m[1])
		fullTitle := strings.TrimSpace(m[2])

		title := fullTitle
		subtitle := ""
		if parts := strings.SplitN(fullTitle, " - ", 2); len(parts) == 2 {
			title = strings.TrimSpace(parts[0])
			subtitle = strings.TrimSpace(parts[1])
		}

		var buf []string
		bufFence := false
		i++
		for i < len(lines) {
			next := lines[i]
			if isFenceLine(next) {
				bufFence = !bufFence
			}
			if !bufFence && !isFenceLine(next) && reScenarioStart.MatchString(next) {
				break
			}
			buf = append(buf, next)
			i++
		}

		scenarios = append(scenarios, catalog.Scenario{
			ID:       scenarioID,
			Title:    title,
			Subtitle: subtitle,
			Slug:     catalog.Slugify(title),
			Phases:   parseScenarioPhases(buf),
		})
	}

	return scenarios
}

func parseScenarioPhases(lines []string) []catalog.ScenarioPhase {
	var phases []catalog.ScenarioPhase

	counter := 0
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

		m := rePhaseHeading.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		counter++

		phaseNumber := counter
		if m[1] != "" {
			phaseNumber, _ = strconv.Atoi(m[1])
		}

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

		phases = append(phases, catalog.ScenarioPhase{
			PhaseNumber:  phaseNumber,
			Title:        strings.TrimSpace(m[2]),
			TimeEstimate: m[3],
			Content:      strings.Join(body, "\n"),
			CodeBlocks:   fencedBlocks(body),
		})
	}

	return phases
}
