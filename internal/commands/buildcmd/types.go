// Package buildcmd defines the dispatchable messages that drive
// artifact generation.
package buildcmd

import (
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	buildSearchDataMessageType = "cheatsheet.build.search_data"
	buildSitemapMessageType    = "cheatsheet.build.sitemap"
	buildAllMessageType        = "cheatsheet.build.all"
)

// BuildSearchDataCommand renders the search-entry snapshot to OutputDir.
type BuildSearchDataCommand struct {
	OutputDir string `json:"output_dir"`
}

// Type implements command.Message.
func (BuildSearchDataCommand) Type() string { return buildSearchDataMessageType }

// Validate ensures the output directory is set.
func (m BuildSearchDataCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.OutputDir) == "" {
		errs["output_dir"] = validation.NewError("cheatsheet.build.output_dir_required", "output_dir must not be empty")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BuildSitemapCommand renders the sitemap to OutputDir. BaseURL, when
// set, overrides the canonical origin used for locations.
type BuildSitemapCommand struct {
	OutputDir string `json:"output_dir"`
	BaseURL   string `json:"base_url,omitempty"`
}

// Type implements command.Message.
func (BuildSitemapCommand) Type() string { return buildSitemapMessageType }

// Validate ensures the output directory is set and any base URL is
// absolute.
func (m BuildSitemapCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.OutputDir) == "" {
		errs["output_dir"] = validation.NewError("cheatsheet.build.output_dir_required", "output_dir must not be empty")
	}
	if base := strings.TrimSpace(m.BaseURL); base != "" {
		parsed, err := url.Parse(base)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			errs["base_url"] = validation.NewError("cheatsheet.build.base_url_invalid", "base_url must be an absolute URL")
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BuildAllCommand renders every artifact to OutputDir.
type BuildAllCommand struct {
	OutputDir string `json:"output_dir"`
}

// Type implements command.Message.
func (BuildAllCommand) Type() string { return buildAllMessageType }

// Validate ensures the output directory is set.
func (m BuildAllCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.OutputDir) == "" {
		errs["output_dir"] = validation.NewError("cheatsheet.build.output_dir_required", "output_dir must not be empty")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
