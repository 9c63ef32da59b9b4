package buildcmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-cheatsheet/catalog"
	"github.com/goliatone/go-cheatsheet/internal/commands"
	"github.com/goliatone/go-cheatsheet/internal/generator"
	"github.com/goliatone/go-cheatsheet/internal/logging"
	"github.com/goliatone/go-cheatsheet/pkg/interfaces"
)

// SearchDataFile is the artifact name for the search snapshot.
const SearchDataFile = "search-data.json"

// SitemapFile is the artifact name for the sitemap.
const SitemapFile = "sitemap.xml"

// BuildSearchDataHandler renders the search snapshot artifact.
type BuildSearchDataHandler struct {
	inner *commands.Handler[BuildSearchDataCommand]
}

// NewBuildSearchDataHandler constructs a handler over the content
// service.
func NewBuildSearchDataHandler(service *catalog.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildSearchDataCommand]) *BuildSearchDataHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildSearchDataCommand) error {
		gen := generator.New(service, generator.WithLogger(baseLogger))
		return writeArtifact(msg.OutputDir, SearchDataFile, func(w io.Writer) error {
			return gen.WriteSearchData(ctx, w)
		})
	}

	handlerOpts := []commands.HandlerOption[BuildSearchDataCommand]{
		commands.WithLogger[BuildSearchDataCommand](baseLogger),
		commands.WithOperation[BuildSearchDataCommand]("build.search_data"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSearchDataHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildSearchDataCommand].
func (h *BuildSearchDataHandler) Execute(ctx context.Context, msg BuildSearchDataCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BuildSitemapHandler renders the sitemap artifact.
type BuildSitemapHandler struct {
	inner *commands.Handler[BuildSitemapCommand]
}

// NewBuildSitemapHandler constructs a handler over the content
// service. defaultBaseURL supplies the canonical origin when the
// message leaves BaseURL empty.
func NewBuildSitemapHandler(service *catalog.Service, defaultBaseURL string, logger interfaces.Logger, opts ...commands.HandlerOption[BuildSitemapCommand]) *BuildSitemapHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildSitemapCommand) error {
		baseURL := strings.TrimSpace(msg.BaseURL)
		if baseURL == "" {
			baseURL = defaultBaseURL
		}
		routes, err := catalog.NewRoutes(baseURL)
		if err != nil {
			return err
		}
		gen := generator.New(service, generator.WithRoutes(routes), generator.WithLogger(baseLogger))
		return writeArtifact(msg.OutputDir, SitemapFile, func(w io.Writer) error {
			return gen.WriteSitemap(ctx, w)
		})
	}

	handlerOpts := []commands.HandlerOption[BuildSitemapCommand]{
		commands.WithLogger[BuildSitemapCommand](baseLogger),
		commands.WithOperation[BuildSitemapCommand]("build.sitemap"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSitemapHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildSitemapCommand].
func (h *BuildSitemapHandler) Execute(ctx context.Context, msg BuildSitemapCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BuildAllHandler renders every artifact in one pass.
type BuildAllHandler struct {
	inner *commands.Handler[BuildAllCommand]
}

// NewBuildAllHandler constructs a handler that writes both artifacts.
func NewBuildAllHandler(service *catalog.Service, baseURL string, logger interfaces.Logger, opts ...commands.HandlerOption[BuildAllCommand]) *BuildAllHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildAllCommand) error {
		routes, err := catalog.NewRoutes(baseURL)
		if err != nil {
			return err
		}
		gen := generator.New(service, generator.WithRoutes(routes), generator.WithLogger(baseLogger))
		return gen.WriteAll(ctx, msg.OutputDir)
	}

	handlerOpts := []commands.HandlerOption[BuildAllCommand]{
		commands.WithLogger[BuildAllCommand](baseLogger),
		commands.WithOperation[BuildAllCommand]("build.all"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildAllHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildAllCommand].
func (h *BuildAllHandler) Execute(ctx context.Context, msg BuildAllCommand) error {
	return h.inner.Execute(ctx, msg)
}

func writeArtifact(outDir, name string, render func(io.Writer) error) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(outDir, name))
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
