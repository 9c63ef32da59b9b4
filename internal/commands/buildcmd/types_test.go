package buildcmd

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"
)

var (
	_ command.Message = BuildSearchDataCommand{}
	_ command.Message = BuildSitemapCommand{}
	_ command.Message = BuildAllCommand{}
)

func TestMessageTypes(t *testing.T) {
	if got := (BuildSearchDataCommand{}).Type(); got != "cheatsheet.build.search_data" {
		t.Fatalf("search data type = %q", got)
	}
	if got := (BuildSitemapCommand{}).Type(); got != "cheatsheet.build.sitemap" {
		t.Fatalf("sitemap type = %q", got)
	}
	if got := (BuildAllCommand{}).Type(); got != "cheatsheet.build.all" {
		t.Fatalf("build all type = %q", got)
	}
}

func TestBuildSearchDataCommandValidate(t *testing.T) {
	if err := (BuildSearchDataCommand{OutputDir: "dist"}).Validate(); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}

	err := (BuildSearchDataCommand{}).Validate()
	if err == nil {
		t.Fatalf("empty output dir must fail")
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	if _, present := errs["output_dir"]; !present {
		t.Fatalf("missing output_dir error: %v", errs)
	}
}

func TestBuildSitemapCommandValidate(t *testing.T) {
	valid := BuildSitemapCommand{OutputDir: "dist", BaseURL: "https://asm.example.com"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}

	// Empty base URL defers to the handler default.
	if err := (BuildSitemapCommand{OutputDir: "dist"}).Validate(); err != nil {
		t.Fatalf("empty base URL must be accepted: %v", err)
	}

	err := (BuildSitemapCommand{OutputDir: "dist", BaseURL: "asm.example.com"}).Validate()
	if err == nil {
		t.Fatalf("relative base URL must fail")
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	if _, present := errs["base_url"]; !present {
		t.Fatalf("missing base_url error: %v", errs)
	}
}

func TestBuildAllCommandValidate(t *testing.T) {
	if err := (BuildAllCommand{OutputDir: "dist"}).Validate(); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}
	if err := (BuildAllCommand{OutputDir: "   "}).Validate(); err == nil {
		t.Fatalf("blank output dir must fail")
	}
}
