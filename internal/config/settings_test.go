package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/embedrs/internal/listfmt"
	"github.com/handiism/embedrs/internal/model"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *settings != *DefaultSettings() {
		t.Errorf("Load() = %+v, want defaults", settings)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "embedrs.json")
	if err := os.WriteFile(path, []byte(`{"separator": " / ", "use_and": false}`), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if settings.Separator != " / " || settings.UseAnd {
		t.Errorf("file values not applied: %+v", settings)
	}
	if settings.OutputFormat != "html" || settings.MaxConcurrentReads != 8 {
		t.Errorf("defaults lost: %+v", settings)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "embedrs.json")
	settings := DefaultSettings()
	settings.Language = "de"
	settings.OutputFormat = "markdown"

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *settings {
		t.Errorf("round trip = %+v, want %+v", loaded, settings)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("EMBEDRS_CONTENT", "/srv/blog")
	t.Setenv("EMBEDRS_USE_AND", "false")
	t.Setenv("EMBEDRS_MAX_READS", "2")

	settings := DefaultSettings()
	if err := settings.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if settings.ContentPath != "/srv/blog" || settings.UseAnd || settings.MaxConcurrentReads != 2 {
		t.Errorf("env not applied: %+v", settings)
	}
	if settings.Separator != ", " {
		t.Errorf("unset variables must keep values, Separator = %q", settings.Separator)
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv("EMBEDRS_MAX_READS", "many")

	if err := DefaultSettings().ApplyEnv(); err == nil {
		t.Error("expected error for non-numeric EMBEDRS_MAX_READS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(*Settings) {}, false},
		{"markdown", func(s *Settings) { s.OutputFormat = "markdown" }, false},
		{"bad format", func(s *Settings) { s.OutputFormat = "pdf" }, true},
		{"bad language", func(s *Settings) { s.Language = "not a tag!" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(s)
			if err := s.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToListConfig(t *testing.T) {
	items := []model.NamedLink{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	tests := []struct {
		name   string
		modify func(*Settings)
		want   string
	}{
		{"english", func(*Settings) {}, "A, B and C"},
		{"german", func(s *Settings) { s.Language = "de" }, "A, B und C"},
		{"override", func(s *Settings) { s.Language = "de"; s.Conjunction = "&" }, "A, B & C"},
		{"no and", func(s *Settings) { s.UseAnd = false; s.Separator = " / " }, "A / B / C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			s.OutputFormat = "text"
			tt.modify(s)

			got := listfmt.Format(items, s.ToListConfig())
			if got != tt.want {
				t.Errorf("formatted = %q, want %q", got, tt.want)
			}
		})
	}
}
