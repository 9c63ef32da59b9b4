package catalog

// Difficulty is the normalized difficulty level derived from the
// emoji/keyword conventions used throughout the content corpus.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// TimeEstimate captures a parsed duration range plus the original
// display text. Unparseable inputs keep min/max at zero and preserve
// the source text for display.
type TimeEstimate struct {
	Min     int    `json:"min"` // minutes
	Max     int    `json:"max"` // minutes
	Display string `json:"display"`
}

// SuccessCriterion is a single unchecked checkbox item from a module's
// success-criteria list. IDs are stable across re-parses of unchanged
// content: module-{moduleID}-sc-{n}, 1-indexed per module.
type SuccessCriterion struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Resource is a titled link pulled from a module's resource list.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CodeBlock is a fenced code block with its fence language.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// LearningModule is one module section of the learning guide.
type LearningModule struct {
	ID               int                `json:"id"`
	Title            string             `json:"title"`
	Slug             string             `json:"slug"`
	Difficulty       Difficulty         `json:"difficulty"`
	TimeEstimate     TimeEstimate       `json:"timeEstimate"`
	Prerequisites    []string           `json:"prerequisites"`
	Objectives       []string           `json:"objectives"`
	Activities       []string           `json:"activities"`
	SuccessCriteria  []SuccessCriterion `json:"successCriteria"`
	Resources        []Resource         `json:"resources"`
	Track            string             `json:"track"`
	Content          string             `json:"content"`
}

// Command is a single runnable snippet from the command cheatsheet.
// IDs are cmd-{n}, sequential across the whole document.
type Command struct {
	ID            string `json:"id"`
	Tool          string `json:"tool"`
	Category      string `json:"category"`
	CategoryEmoji string `json:"categoryEmoji"`
	Code          string `json:"code"`
	Language      string `json:"language"`
	Description   string `json:"description"`
}

// WorkflowStep is a numbered step within a workflow. Step numbers come
// from the source document, never re-derived.
type WorkflowStep struct {
	StepNumber   int         `json:"stepNumber"`
	Title        string      `json:"title"`
	TimeEstimate string      `json:"timeEstimate"`
	Content      string      `json:"content"`
	CodeBlocks   []CodeBlock `json:"codeBlocks"`
}

// Workflow is one difficulty-tagged walkthrough from the practical
// workflows document.
type Workflow struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Difficulty    Difficulty     `json:"difficulty"`
	TimeEstimate  TimeEstimate   `json:"timeEstimate"`
	Scenario      string         `json:"scenario"`
	Prerequisites string         `json:"prerequisites"`
	Output        string         `json:"output"`
	Steps         []WorkflowStep `json:"steps"`
}

// ScenarioPhase is a phase within a scenario card. Phase numbers use
// the explicit "Phase N" label when present, otherwise an
// auto-incrementing counter local to the scenario.
type ScenarioPhase struct {
	PhaseNumber  int         `json:"phaseNumber"`
	Title        string      `json:"title"`
	TimeEstimate string      `json:"timeEstimate"`
	Content      string      `json:"content"`
	CodeBlocks   []CodeBlock `json:"codeBlocks"`
}

// Scenario is one SCENARIO card from the quick-reference deck.
type Scenario struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle"`
	Slug     string          `json:"slug"`
	Phases   []ScenarioPhase `json:"phases"`
}

// CaseStudyPhase is a titled phase within a case study narrative.
type CaseStudyPhase struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CaseStudy is one case study section. Metadata fields come from
// ordered bold-label alternates; absent metadata stays empty rather
// than failing extraction.
type CaseStudy struct {
	ID             int              `json:"id"`
	Title          string           `json:"title"`
	Slug           string           `json:"slug"`
	Industry       string           `json:"industry"`
	Challenge      string           `json:"challenge"`
	Outcome        string           `json:"outcome"`
	TeamSize       string           `json:"teamSize"`
	Timeline       string           `json:"timeline"`
	Content        string           `json:"content"`
	Phases         []CaseStudyPhase `json:"phases"`
	Results        []string         `json:"results"`
	LessonsLearned []string         `json:"lessonsLearned"`
}

// UsageBlock is a usage code block tagged with the title of the bold
// label that introduced it.
type UsageBlock struct {
	Title    string `json:"title"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

// Tool is one tool entry from the tool reference files. Entries
// without a Purpose line are excluded at extraction time.
type Tool struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Slug         string       `json:"slug"`
	Purpose      string       `json:"purpose"`
	Difficulty   string       `json:"difficulty"`
	Link         string       `json:"link"`
	Category     string       `json:"category"`
	SourceFile   string       `json:"sourceFile"`
	Installation []CodeBlock  `json:"installation"`
	Usage        []UsageBlock `json:"usage"`
	Content      string       `json:"content"`
}

// EntryType discriminates search entries by their source entity.
type EntryType string

const (
	EntryTypeModule    EntryType = "module"
	EntryTypeCommand   EntryType = "command"
	EntryTypeWorkflow  EntryType = "workflow"
	EntryTypeScenario  EntryType = "scenario"
	EntryTypeCaseStudy EntryType = "case-study"
	EntryTypeTool      EntryType = "tool"
	EntryTypeGuide     EntryType = "guide"
)

// SearchEntry is the common searchable projection of every domain
// record. Content aggregates the fields most useful for matching.
type SearchEntry struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Type       EntryType  `json:"type"`
	Content    string     `json:"content"`
	URL        string     `json:"url"`
	Category   string     `json:"category,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}
