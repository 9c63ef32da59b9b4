package catalog

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/goliatone/go-cheatsheet/internal/logging"
	"github.com/goliatone/go-cheatsheet/pkg/interfaces"
)

// Source produces the typed collections the service caches. The
// extract package provides the production implementation.
type Source interface {
	Modules() ([]LearningModule, error)
	Commands() ([]Command, error)
	Workflows() ([]Workflow, error)
	Scenarios() ([]Scenario, error)
	CaseStudies() ([]CaseStudy, error)
	Tools() ([]Tool, error)
}

// Service is the process-wide content cache. Each accessor runs its
// extractor at most once per cache-clear epoch and afterwards returns
// the same slice reference, so downstream memoization keyed on
// identity keeps working. Lazy initialization is guarded by a
// single-flight group: concurrent first callers observe one fully
// constructed result, never a partial one.
type Service struct {
	source Source
	routes *Routes
	logger interfaces.Logger

	mu     sync.RWMutex
	epoch  uint64
	flight singleflight.Group

	modules     *[]LearningModule
	commands    *[]Command
	workflows   *[]Workflow
	scenarios   *[]Scenario
	caseStudies *[]CaseStudy
	tools       *[]Tool
	entries     *[]SearchEntry
}

// ServiceOption configures a Service instance.
type ServiceOption func(*Service)

// WithLogger injects the catalog logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRoutes overrides the route table used for search-entry URLs.
func WithRoutes(routes *Routes) ServiceOption {
	return func(s *Service) {
		if routes != nil {
			s.routes = routes
		}
	}
}

// NewService constructs the content service over a record source.
func NewService(source Source, opts ...ServiceOption) *Service {
	s := &Service{
		source: source,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.routes == nil {
		routes, err := NewRoutes("")
		if err == nil {
			s.routes = routes
		}
	}
	return s
}

// Routes exposes the service's route table so collaborating components
// (sitemap generation) build identical URLs.
func (s *Service) Routes() *Routes { return s.routes }

// AllModules returns every learning module, extracting on first use.
func (s *Service) AllModules(ctx context.Context) ([]LearningModule, error) {
	return cached(ctx, s, "modules", &s.modules, s.source.Modules)
}

// AllCommands returns every command, extracting on first use.
func (s *Service) AllCommands(ctx context.Context) ([]Command, error) {
	return cached(ctx, s, "commands", &s.commands, s.source.Commands)
}

// AllWorkflows returns every workflow, extracting on first use.
func (s *Service) AllWorkflows(ctx context.Context) ([]Workflow, error) {
	return cached(ctx, s, "workflows", &s.workflows, s.source.Workflows)
}

// AllScenarios returns every scenario, extracting on first use.
func (s *Service) AllScenarios(ctx context.Context) ([]Scenario, error) {
	return cached(ctx, s, "scenarios", &s.scenarios, s.source.Scenarios)
}

// AllCaseStudies returns every case study, extracting on first use.
func (s *Service) AllCaseStudies(ctx context.Context) ([]CaseStudy, error) {
	return cached(ctx, s, "case_studies", &s.caseStudies, s.source.CaseStudies)
}

// AllTools returns every tool, extracting on first use.
func (s *Service) AllTools(ctx context.Context) ([]Tool, error) {
	return cached(ctx, s, "tools", &s.tools, s.source.Tools)
}

// SearchEntries returns the unified searchable projection of every
// domain record, concatenated in the fixed order: modules, commands,
// workflows, scenarios, case studies, tools.
func (s *Service) SearchEntries(ctx context.Context) ([]SearchEntry, error) {
	return cached(ctx, s, "search_entries", &s.entries, func() ([]SearchEntry, error) {
		return s.buildSearchEntries(ctx)
	})
}

// ClearCache resets every cached collection. The next access per type
// re-runs extraction and returns a new reference with equal content.
func (s *Service) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.modules = nil
	s.commands = nil
	s.workflows = nil
	s.scenarios = nil
	s.caseStudies = nil
	s.tools = nil
	s.entries = nil
	s.logger.Debug("catalog.cache.cleared", "epoch", s.epoch)
}

// cached implements the get-or-populate path shared by every
// accessor. The singleflight key carries the epoch so extraction runs
// at most once per cache-clear generation; results landed for a stale
// epoch are returned to their callers but never stored.
func cached[T any](ctx context.Context, s *Service, name string, slot **[]T, load func() ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	if *slot != nil {
		value := **slot
		s.mu.RUnlock()
		return value, nil
	}
	epoch := s.epoch
	s.mu.RUnlock()

	key := name + "@" + strconv.FormatUint(epoch, 10)
	value, err, _ := s.flight.Do(key, func() (any, error) {
		loaded, err := load()
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		if s.epoch == epoch && *slot == nil {
			*slot = &loaded
		}
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		s.logger.Error("catalog.load.failed", "collection", name, "error", err)
		return nil, err
	}
	return value.([]T), nil
}

func (s *Service) buildSearchEntries(ctx context.Context) ([]SearchEntry, error) {
	var entries []SearchEntry

	modules, err := s.AllModules(ctx)
	if err != nil {
		return nil, err
	}
	for _, mod := range modules {
		parts := []string{mod.Title}
		parts = append(parts, mod.Objectives...)
		parts = append(parts, mod.Activities...)
		for _, sc := range mod.SuccessCriteria {
			parts = append(parts, sc.Text)
		}
		entries = append(entries, SearchEntry{
			ID:         "module-" + strconv.Itoa(mod.ID),
			Title:      "Module " + strconv.Itoa(mod.ID) + ": " + mod.Title,
			Type:       EntryTypeModule,
			Content:    strings.Join(parts, " "),
			URL:        s.routes.ModuleURL(mod.ID),
			Category:   mod.Track,
			Difficulty: mod.Difficulty,
		})
	}

	commands, err := s.AllCommands(ctx)
	if err != nil {
		return nil, err
	}
	for _, cmd := range commands {
		entries = append(entries, SearchEntry{
			ID:       cmd.ID,
			Title:    cmd.Tool + " - " + cmd.Category,
			Type:     EntryTypeCommand,
			Content:  strings.Join([]string{cmd.Tool, cmd.Category, cmd.Description, cmd.Code}, " "),
			URL:      s.routes.CommandsURL(cmd.Tool),
			Category: cmd.Category,
		})
	}

	workflows, err := s.AllWorkflows(ctx)
	if err != nil {
		return nil, err
	}
	for _, wf := range workflows {
		parts := []string{wf.Title, wf.Scenario}
		for _, step := range wf.Steps {
			parts = append(parts, step.Title)
		}
		entries = append(entries, SearchEntry{
			ID:         "workflow-" + wf.ID,
			Title:      wf.Title,
			Type:       EntryTypeWorkflow,
			Content:    strings.Join(parts, " "),
			URL:        s.routes.WorkflowURL(wf.Slug),
			Difficulty: wf.Difficulty,
		})
	}

	scenarios, err := s.AllScenarios(ctx)
	if err != nil {
		return nil, err
	}
	for _, sc := range scenarios {
		parts := []string{sc.Title, sc.Subtitle}
		for _, phase := range sc.Phases {
			parts = append(parts, phase.Title)
		}
		entries = append(entries, SearchEntry{
			ID:      "scenario-" + strconv.Itoa(sc.ID),
			Title:   "Scenario " + strconv.Itoa(sc.ID) + ": " + sc.Title,
			Type:    EntryTypeScenario,
			Content: strings.Join(parts, " "),
			URL:     s.routes.ScenarioURL(sc.Slug),
		})
	}

	caseStudies, err := s.AllCaseStudies(ctx)
	if err != nil {
		return nil, err
	}
	for _, cs := range caseStudies {
		parts := []string{cs.Title, cs.Industry, cs.Challenge}
		parts = append(parts, cs.Results...)
		parts = append(parts, cs.LessonsLearned...)
		entries = append(entries, SearchEntry{
			ID:      "case-study-" + strconv.Itoa(cs.ID),
			Title:   "Case Study " + strconv.Itoa(cs.ID) + ": " + cs.Title,
			Type:    EntryTypeCaseStudy,
			Content: strings.Join(parts, " "),
			URL:     s.routes.CaseStudyURL(cs.Slug),
		})
	}

	tools, err := s.AllTools(ctx)
	if err != nil {
		return nil, err
	}
	for _, tool := range tools {
		entries = append(entries, SearchEntry{
			ID:       "tool-" + tool.ID,
			Title:    tool.Name,
			Type:     EntryTypeTool,
			Content:  strings.Join([]string{tool.Name, tool.Purpose, tool.Category}, " "),
			URL:      s.routes.ToolURL(tool.Slug),
			Category: tool.Category,
		})
	}

	s.logger.Info("catalog.search_entries.built", "count", len(entries))
	return entries, nil
}
