package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-cheatsheet/catalog"
)

var (
	reCaseStudyHeading = regexp.MustCompile(`^##\s+Case Study\s+(\d+):\s+(.+)$`)
	reCaseStudyStart   = regexp.MustCompile(`^##\s+Case Study\s+\d+:`)
	reCasePhaseHeading = regexp.MustCompile(`^####\s+Phase\s+\d+:\s+(.+?)(?:\s*\(.+?\))?\s*$`)
	reCasePhaseStart   = regexp.MustCompile(`^####\s+Phase`)

	reResultsHeading = regexp.MustCompile(`^####\s+(?:Quantified Results|Quantified Benefits|Launch Success Metrics|Business Results)\s*$`)
	reLessonsHeading = regexp.MustCompile(`^(?:####\s+(?:What Worked Well|Key (?:Lessons|Recommendations))|###\s+(?:Lessons Learned|Long-term Outcomes|Outcomes and Lessons))`)

	reResultItem = regexp.MustCompile(`^-\s+\*\*(.+?)\*\*\s*(.*)`)
	reLessonItem = regexp.MustCompile(`^\d+\.\s+\*\*(.+?)\*\*\s*(.*)`)
	reLessonDash = regexp.MustCompile(`^[-–]\s*`)

	reOutcomeMarker = regexp.MustCompile(`(?:\*\*)?(?:Quantified )?Results(?:\*\*)?`)
	reOutcomeValue  = regexp.MustCompile(`-\s\*\*(.+?)\*\*`)
)

// CaseStudies extracts every case study section.
func (e *Extractor) CaseStudies() ([]catalog.CaseStudy, error) {
	body, _, err := ReadDocument(e.root, CaseStudiesFile)
	if err != nil {
		return nil, err
	}
	studies := ParseCaseStudies(body)
	e.logger.Debug("extract.case_studies", "count", len(studies))
	return studies, nil
}

// ParseCaseStudies walks the case-study dialect. Metadata fields each
// try an ordered list of bold-label spellings and keep the first
// match; absent metadata stays empty. Results and lessons come only
// from the fixed allow-list of subsection headings.
func ParseCaseStudies(content string) []catalog.CaseStudy {
	lines := splitLines(content)
	var studies []catalog.CaseStudy

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

		m := reCaseStudyHeading.FindStringSubmatch(line)
		if m == nil {
			i++
			continue
		}

		studyID, _ := strconv.Atoi(m[1])
		title := strings.TrimSpace(m[2])

		var buf []string
		bufFence := false
		i++
		for i < len(lines) {
			next := lines[i]
			if isFenceLine(next) {
				bufFence = !bufFence
			}
			if !bufFence && !isFenceLine(next) && (reCaseStudyStart.MatchString(next) || reIndexHeading.MatchString(next)) {
				break
			}
			buf = append(buf, next)
			i++
		}

		csContent := strings.Join(buf, "\n")

		studies = append(studies, catalog.CaseStudy{
			ID:             studyID,
			Title:          title,
			Slug:           catalog.Slugify(title),
			Industry:       boldLabel(csContent, "Company", "Organization", "Agency"),
			Challenge:      boldLabel(csContent, "Challenge", "Incident", "Project"),
			Outcome:        parseOutcome(csContent),
			TeamSize:       boldLabel(csContent, "Team Size", "ASM Team"),
			Timeline:       boldLabel(csContent, "Timeline", "Constraints"),
			Content:        csContent,
			Phases:         parseCasePhases(buf),
			Results:        parseResults(buf),
			LessonsLearned: parseLessons(buf),
		})
	}

	return studies
}

// parseOutcome captures the first bold result item that follows the
// first "Results" marker anywhere in the study. Later bold items are
// deliberately ignored.
func parseOutcome(content string) string {
	loc := reOutcomeMarker.FindStringIndex(content)
	if loc == nil {
		return ""
	}
	if m := reOutcomeValue.FindStringSubmatch(content[loc[1]:]); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func parseCasePhases(lines []string) []catalog.CaseStudyPhase {
	var phases []catalog.CaseStudyPhase

	inFence := false
	for ci := 0; ci < len(lines); ci++ {
		line := lines[ci]
		if isFenceLine(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		m := reCasePhaseHeading.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		var body []string
		bodyFence := false
		ci++
		for ci < len(lines) {
			next := lines[ci]
			if isFenceLine(next) {
				bodyFence = !bodyFence
			}
			if !bodyFence && !isFenceLine(next) && (reCasePhaseStart.MatchString(next) || reH3Line.MatchString(next)) {
				ci--
				break
			}
			body = append(body, next)
			ci++
		}

		phases = append(phases, catalog.CaseStudyPhase{
			Title:   strings.TrimSpace(m[1]),
			Content: strings.Join(body, "\n"),
		})
	}

	return phases
}

func parseResults(lines []string) []string {
	section := sectionAfter(lines, reResultsHeading, func(line string) bool {
		return strings.HasPrefix(line, "## ") || strings.HasPrefix(line, "### ") || strings.HasPrefix(line, "#### ")
	})

	var results []string
	for _, line := range section {
		if m := reResultItem.FindStringSubmatch(line); m != nil {
			value := m[1]
			if rest := strings.TrimSpace(m[2]); rest != "" {
				value += " " + rest
			}
			results = append(results, value)
		}
	}
	return results
}

func parseLessons(lines []string) []string {
	section := sectionAfter(lines, reLessonsHeading, func(line string) bool {
		return strings.TrimSpace(line) == "---" || reCaseStudyStart.MatchString(line)
	})

	var lessons []string
	for _, line := range section {
		if m := reLessonItem.FindStringSubmatch(line); m != nil {
			value := m[1]
			if rest := strings.TrimSpace(reLessonDash.ReplaceAllString(strings.TrimSpace(m[2]), "")); rest != "" {
				value += " " + rest
			}
			lessons = append(lessons, value)
		}
	}
	return lessons
}

// sectionAfter returns the lines following the first heading matched
// by start, up to the first line matched by stop.
func sectionAfter(lines []string, start *regexp.Regexp, stop func(string) bool) []string {
	from := -1
	for i, line := range lines {
		if start.MatchString(line) {
			from = i + 1
			break
		}
	}
	if from < 0 {
		return nil
	}

	var out []string
	for _, line := range lines[from:] {
		if stop(line) {
			break
		}
		out = append(out, line)
	}
	return out
}
