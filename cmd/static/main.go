package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	cheatsheet "github.com/goliatone/go-cheatsheet"
	"github.com/goliatone/go-cheatsheet/internal/commands/buildcmd"
)

func main() {
	if err := runBuild(os.Args[1:]); err != nil {
		log.Fatalf("static build: %v", err)
	}
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("cheatsheet-static", flag.ExitOnError)
	contentDir := fs.String("content-dir", "", "Path to the markdown content root (defaults to probing ./content)")
	outDir := fs.String("out", "dist", "Directory receiving the generated artifacts")
	baseURL := fs.String("base-url", "", "Canonical site origin used for sitemap locations")
	searchOnly := fs.Bool("search-only", false, "Build only the search snapshot")
	sitemapOnly := fs.Bool("sitemap-only", false, "Build only the sitemap")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *searchOnly && *sitemapOnly {
		return fmt.Errorf("search-only and sitemap-only are mutually exclusive")
	}

	cfg := cheatsheet.DefaultConfig()
	cfg.Content.Dir = *contentDir
	cfg.Site.BaseURL = *baseURL
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	module, err := cheatsheet.New(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	ctx := context.Background()
	service := module.Catalog()
	logger := module.Logger("cheatsheet.static")

	switch {
	case *searchOnly:
		handler := buildcmd.NewBuildSearchDataHandler(service, logger)
		if err := handler.Execute(ctx, buildcmd.BuildSearchDataCommand{OutputDir: *outDir}); err != nil {
			return fmt.Errorf("execute search-data build: %w", err)
		}
	case *sitemapOnly:
		handler := buildcmd.NewBuildSitemapHandler(service, *baseURL, logger)
		if err := handler.Execute(ctx, buildcmd.BuildSitemapCommand{OutputDir: *outDir}); err != nil {
			return fmt.Errorf("execute sitemap build: %w", err)
		}
	default:
		handler := buildcmd.NewBuildAllHandler(service, *baseURL, logger)
		if err := handler.Execute(ctx, buildcmd.BuildAllCommand{OutputDir: *outDir}); err != nil {
			return fmt.Errorf("execute build: %w", err)
		}
	}

	fmt.Fprintf(os.Stdout, "artifacts written to %s\n", *outDir)
	return nil
}
