package cheatsheet

import (
	"errors"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-cheatsheet/internal/extract"
)

var (
	ErrLoggingLevelInvalid  = errors.New("cheatsheet: logging level invalid")
	ErrLoggingFormatInvalid = errors.New("cheatsheet: logging format invalid")
	ErrBaseURLInvalid       = errors.New("cheatsheet: site base URL invalid")
)

// Config captures the runtime options of the content pipeline.
type Config struct {
	Content ContentConfig `json:"content"`
	Site    SiteConfig    `json:"site"`
	Logging LoggingConfig `json:"logging"`
}

// ContentConfig locates the markdown corpus. Dir wins when set;
// otherwise RootCandidates are probed in order.
type ContentConfig struct {
	Dir            string   `json:"dir,omitempty"`
	RootCandidates []string `json:"root_candidates,omitempty"`
}

// SiteConfig holds the public site settings used for artifact URLs.
type SiteConfig struct {
	BaseURL string `json:"base_url,omitempty"`
}

// LoggingConfig selects the go-logger level and output format.
type LoggingConfig struct {
	Level     string `json:"level,omitempty"`
	Format    string `json:"format,omitempty"`
	AddSource bool   `json:"add_source,omitempty"`
}

// DefaultConfig returns the configuration used when callers pass the
// zero value to New.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			RootCandidates: extract.DefaultRootCandidates,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

var (
	validLogLevels  = []string{"", "trace", "debug", "info", "warn", "warning", "error", "fatal"}
	validLogFormats = []string{"", "json", "console", "pretty"}
)

// Validate checks the configuration before the module boots.
func (c Config) Validate() error {
	errs := validation.Errors{}

	if !containsFold(validLogLevels, c.Logging.Level) {
		errs["logging.level"] = ErrLoggingLevelInvalid
	}
	if !containsFold(validLogFormats, c.Logging.Format) {
		errs["logging.format"] = ErrLoggingFormatInvalid
	}

	if base := strings.TrimSpace(c.Site.BaseURL); base != "" {
		parsed, err := url.Parse(base)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			errs["site.base_url"] = ErrBaseURLInvalid
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// rootCandidates returns the probe list honoring an explicit directory.
func (c Config) rootCandidates() []string {
	if dir := strings.TrimSpace(c.Content.Dir); dir != "" {
		return []string{dir}
	}
	if len(c.Content.RootCandidates) > 0 {
		return c.Content.RootCandidates
	}
	return extract.DefaultRootCandidates
}

func containsFold(values []string, value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
