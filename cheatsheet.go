// Package cheatsheet is the runtime facade over the content pipeline:
// markdown corpus in, typed catalog, ranked search, and static
// artifacts out.
package cheatsheet

import (
	"context"
	"net/http"

	"github.com/goliatone/go-cheatsheet/catalog"
	"github.com/goliatone/go-cheatsheet/internal/extract"
	"github.com/goliatone/go-cheatsheet/internal/generator"
	chttp "github.com/goliatone/go-cheatsheet/internal/http"
	"github.com/goliatone/go-cheatsheet/internal/logging"
	"github.com/goliatone/go-cheatsheet/internal/logging/gologger"
	"github.com/goliatone/go-cheatsheet/pkg/interfaces"
	"github.com/goliatone/go-cheatsheet/search"
)

// CatalogService exports the content service contract.
type CatalogService = catalog.Service

// SearchEntry exports the unified search record DTO.
type SearchEntry = catalog.SearchEntry

// Module is the top-level runtime facade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	service  *catalog.Service
	api      *chttp.SearchAPI
}

// Option overrides parts of the module wiring.
type Option func(*Module)

// WithLoggerProvider replaces the go-logger provider built from
// Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// New validates the configuration, resolves the content root, and
// wires the catalog service. Extraction itself stays lazy; the first
// accessor call performs it.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	root, err := extract.ResolveRoot(cfg.rootCandidates()...)
	if err != nil {
		return nil, err
	}

	source := extract.New(root, logging.ExtractLogger(m.provider))
	m.service = catalog.NewService(source,
		catalog.WithLogger(logging.CatalogLogger(m.provider)),
	)
	m.api = chttp.NewSearchAPI(m.service,
		chttp.WithLogger(logging.HTTPLogger(m.provider)),
	)
	return m, nil
}

// Catalog returns the cached content service.
func (m *Module) Catalog() *catalog.Service { return m.service }

// Logger returns a module-scoped logger from the configured provider.
func (m *Module) Logger(name string) interfaces.Logger {
	return logging.ModuleLogger(m.provider, name)
}

// SearchIndex builds a search index from the current catalog snapshot.
func (m *Module) SearchIndex(ctx context.Context) (*search.Index, error) {
	entries, err := m.service.SearchEntries(ctx)
	if err != nil {
		return nil, err
	}
	return search.New(entries), nil
}

// Generator returns an artifact generator whose sitemap URLs use the
// configured site base URL.
func (m *Module) Generator() (*generator.Generator, error) {
	routes, err := catalog.NewRoutes(m.cfg.Site.BaseURL)
	if err != nil {
		return nil, err
	}
	return generator.New(m.service,
		generator.WithRoutes(routes),
		generator.WithLogger(logging.GeneratorLogger(m.provider)),
	), nil
}

// Handler returns the HTTP surface mounted under /api.
func (m *Module) Handler() http.Handler {
	mux := http.NewServeMux()
	m.api.Register(mux, "/api")
	return mux
}

// ClearCache resets the catalog and the live search index so the next
// access re-extracts from disk.
func (m *Module) ClearCache() {
	m.service.ClearCache()
	m.api.Refresh()
}
