package catalog

import (
	"fmt"
	"strconv"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const siteGroup = "site"

// Route names registered for the public site surface.
const (
	RouteModule    = "module"
	RouteCommands  = "commands"
	RouteWorkflow  = "workflow"
	RouteScenario  = "scenario"
	RouteCaseStudy = "case-study"
	RouteTool      = "tool"
	RouteGuide     = "guide"
	RouteSection   = "section"
)

// SectionSlugs enumerates the static section pages included in the
// sitemap alongside per-entity URLs.
var SectionSlugs = []string{"learn", "commands", "workflows", "scenarios", "case-studies", "tools", "guides"}

// Routes builds entity URLs through a go-urlkit route table so the
// path shapes live in one place. BaseURL is empty for in-app links and
// set to the canonical origin when generating the sitemap.
type Routes struct {
	group *urlkit.Group
}

// NewRoutes constructs the route table for the site surface.
func NewRoutes(baseURL string) (*Routes, error) {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    siteGroup,
				BaseURL: baseURL,
				Paths: map[string]string{
					RouteModule:    "/learn/:slug",
					RouteCommands:  "/commands",
					RouteWorkflow:  "/workflows/:slug",
					RouteScenario:  "/scenarios/:slug",
					RouteCaseStudy: "/case-studies/:slug",
					RouteTool:      "/tools/:slug",
					RouteGuide:     "/guides/:slug",
					RouteSection:   "/:slug",
				},
			},
		},
	})

	group, err := lookupGroup(manager, siteGroup)
	if err != nil {
		return nil, err
	}
	return &Routes{group: group}, nil
}

// ModuleURL returns the learn page URL for a module id.
func (r *Routes) ModuleURL(id int) string {
	return r.url(RouteModule, "module-"+strconv.Itoa(id))
}

// CommandsURL returns the commands page URL anchored at a tool.
func (r *Routes) CommandsURL(tool string) string {
	base := r.url(RouteCommands, "")
	if tool == "" {
		return base
	}
	return base + "#" + strings.ToLower(tool)
}

// WorkflowURL returns the workflow detail URL for a slug.
func (r *Routes) WorkflowURL(slug string) string { return r.url(RouteWorkflow, slug) }

// ScenarioURL returns the scenario detail URL for a slug.
func (r *Routes) ScenarioURL(slug string) string { return r.url(RouteScenario, slug) }

// CaseStudyURL returns the case-study detail URL for a slug.
func (r *Routes) CaseStudyURL(slug string) string { return r.url(RouteCaseStudy, slug) }

// ToolURL returns the tool detail URL for a slug.
func (r *Routes) ToolURL(slug string) string { return r.url(RouteTool, slug) }

// GuideURL returns the guide detail URL for a slug.
func (r *Routes) GuideURL(slug string) string { return r.url(RouteGuide, slug) }

// SectionURL returns the URL of a static section page.
func (r *Routes) SectionURL(slug string) string { return r.url(RouteSection, slug) }

func (r *Routes) url(route, slug string) string {
	builder, err := safeBuilder(r.group, route)
	if err != nil {
		return fallbackPath(route, slug)
	}
	if slug != "" {
		builder.WithParam("slug", slug)
	}
	url, err := builder.Build()
	if err != nil {
		return fallbackPath(route, slug)
	}
	return url
}

// fallbackPath keeps URL generation total when the route table is
// misconfigured; the shapes mirror the registered paths.
func fallbackPath(route, slug string) string {
	switch route {
	case RouteModule:
		return "/learn/" + slug
	case RouteCommands:
		return "/commands"
	case RouteWorkflow:
		return "/workflows/" + slug
	case RouteScenario:
		return "/scenarios/" + slug
	case RouteCaseStudy:
		return "/case-studies/" + slug
	case RouteTool:
		return "/tools/" + slug
	case RouteGuide:
		return "/guides/" + slug
	default:
		return "/" + slug
	}
}

// lookupGroup and safeBuilder recover the panics urlkit raises for
// unknown names so misconfiguration surfaces as errors.
func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("catalog: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("catalog: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("catalog: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("catalog: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}
