// Package generator writes the static publishing artifacts: the
// search-data JSON snapshot consumed by client-side search, and the
// sitemap built from the same route table the catalog uses.
package generator

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/beevik/etree"

	"github.com/goliatone/go-cheatsheet/catalog"
	"github.com/goliatone/go-cheatsheet/internal/logging"
	"github.com/goliatone/go-cheatsheet/pkg/interfaces"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Generator renders artifacts from a catalog service snapshot.
type Generator struct {
	service *catalog.Service
	routes  *catalog.Routes
	logger  interfaces.Logger
	now     func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger injects the generator logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRoutes overrides the route table used for sitemap URLs. Use a
// table built with the canonical origin so locations are absolute.
func WithRoutes(routes *catalog.Routes) Option {
	return func(g *Generator) {
		if routes != nil {
			g.routes = routes
		}
	}
}

// WithClock overrides the lastmod timestamp source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New constructs a Generator over the content service.
func New(service *catalog.Service, opts ...Option) *Generator {
	g := &Generator{
		service: service,
		logger:  logging.NoOp(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.routes == nil {
		g.routes = service.Routes()
	}
	return g
}

// WriteSearchData renders the search-entry snapshot as indented JSON.
func (g *Generator) WriteSearchData(ctx context.Context, w io.Writer) error {
	entries, err := g.service.SearchEntries(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return err
	}

	g.logger.Info("generator.search_data.written", "entries", len(entries))
	return nil
}

// WriteSitemap renders the sitemap: one location per section page,
// then one per learning module, workflow, scenario, case study, and
// tool, in catalog order.
func (g *Generator) WriteSitemap(ctx context.Context, w io.Writer) error {
	locations, err := g.locations(ctx)
	if err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	lastmod := g.now().UTC().Format("2006-01-02")
	for _, loc := range locations {
		url := urlset.CreateElement("url")
		url.CreateElement("loc").SetText(loc)
		url.CreateElement("lastmod").SetText(lastmod)
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return err
	}

	g.logger.Info("generator.sitemap.written", "urls", len(locations))
	return nil
}

// WriteAll writes both artifacts into outDir, creating it as needed.
func (g *Generator) WriteAll(ctx context.Context, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if err := g.writeFile(ctx, filepath.Join(outDir, "search-data.json"), g.WriteSearchData); err != nil {
		return err
	}
	return g.writeFile(ctx, filepath.Join(outDir, "sitemap.xml"), g.WriteSitemap)
}

func (g *Generator) writeFile(ctx context.Context, name string, render func(context.Context, io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := render(ctx, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (g *Generator) locations(ctx context.Context) ([]string, error) {
	var locations []string
	for _, slug := range catalog.SectionSlugs {
		locations = append(locations, g.routes.SectionURL(slug))
	}

	modules, err := g.service.AllModules(ctx)
	if err != nil {
		return nil, err
	}
	for _, mod := range modules {
		locations = append(locations, g.routes.ModuleURL(mod.ID))
	}

	workflows, err := g.service.AllWorkflows(ctx)
	if err != nil {
		return nil, err
	}
	for _, wf := range workflows {
		locations = append(locations, g.routes.WorkflowURL(wf.Slug))
	}

	scenarios, err := g.service.AllScenarios(ctx)
	if err != nil {
		return nil, err
	}
	for _, sc := range scenarios {
		locations = append(locations, g.routes.ScenarioURL(sc.Slug))
	}

	caseStudies, err := g.service.AllCaseStudies(ctx)
	if err != nil {
		return nil, err
	}
	for _, cs := range caseStudies {
		locations = append(locations, g.routes.CaseStudyURL(cs.Slug))
	}

	tools, err := g.service.AllTools(ctx)
	if err != nil {
		return nil, err
	}
	for _, tool := range tools {
		locations = append(locations, g.routes.ToolURL(tool.Slug))
	}

	g.logger.Debug("generator.locations", "count", len(locations))
	return locations, nil
}
