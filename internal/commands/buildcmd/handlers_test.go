package buildcmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-cheatsheet/catalog"
)

type stubSource struct{}

func (stubSource) Modules() ([]catalog.LearningModule, error) {
	return []catalog.LearningModule{
		{ID: 1, Title: "ASM Fundamentals", Slug: "asm-fundamentals", Track: "Beginner Track"},
	}, nil
}

func (stubSource) Commands() ([]catalog.Command, error) {
	return []catalog.Command{
		{ID: "cmd-1", Tool: "Amass", Category: "Subdomain Enumeration", Code: "amass enum"},
	}, nil
}

func (stubSource) Workflows() ([]catalog.Workflow, error) {
	return []catalog.Workflow{
		{ID: "weekly-delta-scan", Title: "Weekly Delta Scan", Slug: "weekly-delta-scan"},
	}, nil
}

func (stubSource) Scenarios() ([]catalog.Scenario, error) { return nil, nil }

func (stubSource) CaseStudies() ([]catalog.CaseStudy, error) { return nil, nil }

func (stubSource) Tools() ([]catalog.Tool, error) {
	return []catalog.Tool{
		{ID: "amass", Name: "Amass", Slug: "amass", Purpose: "Surface mapping"},
	}, nil
}

func TestBuildSearchDataHandler(t *testing.T) {
	dir := t.TempDir()
	svc := catalog.NewService(stubSource{})
	h := NewBuildSearchDataHandler(svc, nil)

	msg := BuildSearchDataCommand{OutputDir: dir}
	if err := h.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, SearchDataFile))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	var entries []catalog.SearchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("entry count = %d, want 4", len(entries))
	}
}

func TestBuildSearchDataHandlerRejectsEmptyDir(t *testing.T) {
	svc := catalog.NewService(stubSource{})
	h := NewBuildSearchDataHandler(svc, nil)

	err := h.Execute(context.Background(), BuildSearchDataCommand{})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if !goerrors.HasCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestBuildSitemapHandlerUsesMessageBaseURL(t *testing.T) {
	dir := t.TempDir()
	svc := catalog.NewService(stubSource{})
	h := NewBuildSitemapHandler(svc, "https://default.example.com", nil)

	msg := BuildSitemapCommand{OutputDir: dir, BaseURL: "https://override.example.com"}
	if err := h.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, SitemapFile))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	body := string(data)
	if !strings.Contains(body, "https://override.example.com/learn/module-1") {
		t.Fatalf("override base URL missing from sitemap:\n%s", body)
	}
	if strings.Contains(body, "default.example.com") {
		t.Fatalf("default base URL leaked into sitemap:\n%s", body)
	}
}

func TestBuildSitemapHandlerFallsBackToDefaultBaseURL(t *testing.T) {
	dir := t.TempDir()
	svc := catalog.NewService(stubSource{})
	h := NewBuildSitemapHandler(svc, "https://default.example.com", nil)

	if err := h.Execute(context.Background(), BuildSitemapCommand{OutputDir: dir}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, SitemapFile))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !strings.Contains(string(data), "https://default.example.com/tools/amass") {
		t.Fatalf("default base URL missing from sitemap:\n%s", data)
	}
}

func TestBuildAllHandler(t *testing.T) {
	dir := t.TempDir()
	svc := catalog.NewService(stubSource{})
	h := NewBuildAllHandler(svc, "https://asm.example.com", nil)

	if err := h.Execute(context.Background(), BuildAllCommand{OutputDir: dir}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	for _, name := range []string{SearchDataFile, SitemapFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing artifact %s: %v", name, err)
		}
	}
}
