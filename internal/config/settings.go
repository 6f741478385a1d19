package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/handiism/embedrs/internal/listfmt"
	"golang.org/x/text/language"
)

// Settings holds all configuration options.
type Settings struct {
	// Content settings
	ContentPath   string `json:"content_path" env:"EMBEDRS_CONTENT"`
	IncludeDrafts bool   `json:"include_drafts" env:"EMBEDRS_DRAFTS"`

	// Output settings
	OutputPath   string `json:"output_path" env:"EMBEDRS_OUTPUT"`
	OutputFormat string `json:"output_format" env:"EMBEDRS_FORMAT"` // html, markdown, text

	// List formatting
	Separator   string `json:"separator" env:"EMBEDRS_SEPARATOR"`
	UseAnd      bool   `json:"use_and" env:"EMBEDRS_USE_AND"`
	Language    string `json:"language" env:"EMBEDRS_LANG"`
	Conjunction string `json:"conjunction" env:"EMBEDRS_CONJUNCTION"` // overrides the language's word

	// Concurrency
	MaxConcurrentReads   int `json:"max_concurrent_reads" env:"EMBEDRS_MAX_READS"`
	MaxConcurrentRenders int `json:"max_concurrent_renders" env:"EMBEDRS_MAX_RENDERS"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ContentPath:   "content",
		IncludeDrafts: false,

		OutputPath:   "",
		OutputFormat: "html",

		Separator: ", ",
		UseAnd:    true,
		Language:  "en",

		MaxConcurrentReads:   8,
		MaxConcurrentRenders: 4,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides settings from EMBEDRS_* environment variables.
// Unset variables leave the current value untouched.
func (s *Settings) ApplyEnv() error {
	if err := env.Parse(s); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports settings that cannot be used.
func (s *Settings) Validate() error {
	switch s.OutputFormat {
	case "html", "markdown", "text":
	default:
		return fmt.Errorf("unknown output format %q", s.OutputFormat)
	}
	if _, err := language.Parse(s.Language); err != nil {
		return fmt.Errorf("invalid language %q: %w", s.Language, err)
	}
	return nil
}

// Tag returns the configured language, falling back to English.
func (s *Settings) Tag() language.Tag {
	tag, err := language.Parse(s.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// ToListConfig converts settings to a listfmt.Config.
//
// The conjunction comes from Conjunction when set, otherwise from Language.
// The link markup matches OutputFormat.
func (s *Settings) ToListConfig() *listfmt.Config {
	cfg := listfmt.ConfigFor(s.Tag())
	cfg.Separator = s.Separator
	cfg.UseAnd = s.UseAnd
	if s.Conjunction != "" {
		cfg.Conjunction = s.Conjunction
	}
	cfg.Link = listfmt.LinkFuncFor(s.OutputFormat)
	return cfg
}
