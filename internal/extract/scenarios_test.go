package extract

import (
	"strings"
	"testing"
)

func TestParseScenariosCorpus(t *testing.T) {
	body, _, err := ReadDocument(testRoot(t), ScenariosFile)
	if err != nil {
		t.Fatalf("read scenario cards: %v", err)
	}

	scenarios := ParseScenarios(body)
	if len(scenarios) != 4 {
		t.Fatalf("expected 4 scenarios, got %d", len(scenarios))
	}

	first := scenarios[0]
	if first.ID != 1 {
		t.Fatalf("first scenario id = %d", first.ID)
	}
	if first.Title != "Leaked Credentials" || first.Subtitle != "Emergency Exposure Audit" {
		t.Fatalf("title split failed: title=%q subtitle=%q", first.Title, first.Subtitle)
	}
	if first.Slug != "leaked-credentials" {
		t.Fatalf("first scenario slug = %q", first.Slug)
	}
	if len(first.Phases) != 3 {
		t.Fatalf("scenario 1 phases = %d, want 3", len(first.Phases))
	}
	if first.Phases[0].PhaseNumber != 1 || first.Phases[0].Title != "Identify the Blast Radius" {
		t.Fatalf("unexpected first phase: %+v", first.Phases[0])
	}
	if first.Phases[0].TimeEstimate != "30 min" {
		t.Fatalf("phase time = %q", first.Phases[0].TimeEstimate)
	}
	if len(first.Phases[0].CodeBlocks) != 1 {
		t.Fatalf("phase 1 code blocks = %d", len(first.Phases[0].CodeBlocks))
	}

	second := scenarios[1]
	if len(second.Phases) != 4 {
		t.Fatalf("scenario 2 phases = %d, want 4", len(second.Phases))
	}
	if second.Phases[3].Title != "Briefing" || second.Phases[3].TimeEstimate != "" {
		t.Fatalf("unexpected final phase: %+v", second.Phases[3])
	}
}

func TestParseScenariosTitleWithoutSubtitle(t *testing.T) {
	scenarios := ParseScenarios(strings.Join([]string{
		"## 🎯 SCENARIO 7: Single Title Only",
		"",
		"### Phase 1: Go (5 min)",
		"",
		"body",
	}, "\n"))

	if len(scenarios) != 1 {
		t.Fatalf("expected 1 scenario, got %d", len(scenarios))
	}
	if scenarios[0].Title != "Single Title Only" || scenarios[0].Subtitle != "" {
		t.Fatalf("unexpected split: %+v", scenarios[0])
	}
}

func TestParseScenarioPhasesCounterAndOverride(t *testing.T) {
	scenarios := ParseScenarios(strings.Join([]string{
		"## 🎯 SCENARIO 1: Counter Check - Mixed Numbering",
		"",
		"### Unnumbered Opening",
		"",
		"a",
		"",
		"### Phase 5: Explicit Number (10 min)",
		"",
		"b",
		"",
		"### Another Unnumbered",
		"",
		"c",
	}, "\n"))

	if len(scenarios) != 1 {
		t.Fatalf("expected 1 scenario, got %d", len(scenarios))
	}
	phases := scenarios[0].Phases
	if len(phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(phases))
	}
	if phases[0].PhaseNumber != 1 || phases[0].Title != "Unnumbered Opening" {
		t.Fatalf("phase 1: %+v", phases[0])
	}
	if phases[1].PhaseNumber != 5 {
		t.Fatalf("explicit number must override the counter, got %d", phases[1].PhaseNumber)
	}
	if phases[2].PhaseNumber != 3 {
		t.Fatalf("counter keeps advancing past overrides, got %d", phases[2].PhaseNumber)
	}
}

func TestParseScenariosFencedHeadingStaysInert(t *testing.T) {
	scenarios := ParseScenarios(strings.Join([]string{
		"## 🎯 SCENARIO 1: Fence Check - Inert Headings",
		"",
		"### Phase 1: Collect (5 min)",
		"",
		"```markdown",
		"## 🎯 SCENARIO 2: Not Real - Skip",
		"### Phase 9: Also Not Real",
		"```",
		"",
		"tail",
	}, "\n"))

	if len(scenarios) != 1 {
		t.Fatalf("fenced scenario heading must not open a record, got %d", len(scenarios))
	}
	phases := scenarios[0].Phases
	if len(phases) != 1 {
		t.Fatalf("fenced phase heading must not open a phase, got %d", len(phases))
	}
	if !strings.Contains(phases[0].Content, "tail") {
		t.Fatalf("phase body truncated:\n%s", phases[0].Content)
	}
}
