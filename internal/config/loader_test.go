package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultJezzballYAML, FormatYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultJezzballConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultJezzballConfig())
	}
}

func TestParseYAMLKeepsOmittedDefaults(t *testing.T) {
	data := []byte("ball:\n  speed_x: 5\n  edge_mode: bounce\n")

	cfg, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Ball.SpeedX != 5 {
		t.Errorf("SpeedX = %v, expected 5", cfg.Ball.SpeedX)
	}
	if cfg.Ball.EdgeMode != "bounce" {
		t.Errorf("EdgeMode = %q, expected bounce", cfg.Ball.EdgeMode)
	}
	if cfg.Ball.SpeedY != 3 {
		t.Errorf("SpeedY = %v, expected default 3", cfg.Ball.SpeedY)
	}
	if cfg.Field.CellSize != 20 {
		t.Errorf("CellSize = %d, expected default 20", cfg.Field.CellSize)
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[field]
cell_size = 10

[barrier]
growth_period_ms = 250
`)

	cfg, err := Parse(data, FormatTOML)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Field.CellSize != 10 {
		t.Errorf("CellSize = %d, expected 10", cfg.Field.CellSize)
	}
	if cfg.Barrier.GrowthPeriodMS != 250 {
		t.Errorf("GrowthPeriodMS = %d, expected 250", cfg.Barrier.GrowthPeriodMS)
	}
	if cfg.Ball.Radius != 5 {
		t.Errorf("Radius = %v, expected default 5", cfg.Ball.Radius)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := DefaultJezzballConfig()
	want.Ball.EdgeMode = "bounce"

	for _, format := range []Format{FormatYAML, FormatTOML} {
		data, err := Marshal(want, format)
		if err != nil {
			t.Fatalf("Marshal(%s) failed: %v", format, err)
		}
		got, err := Parse(data, format)
		if err != nil {
			t.Fatalf("Parse(%s) failed: %v", format, err)
		}
		if got != want {
			t.Errorf("%s round trip = %+v, expected %+v", format, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JezzballConfig)
		ok     bool
	}{
		{"defaults", func(*JezzballConfig) {}, true},
		{"zero cell", func(c *JezzballConfig) { c.Field.CellSize = 0 }, false},
		{"negative width", func(c *JezzballConfig) { c.Field.Width = -1 }, false},
		{"zero radius", func(c *JezzballConfig) { c.Ball.Radius = 0 }, false},
		{"zero growth", func(c *JezzballConfig) { c.Barrier.GrowthPeriodMS = 0 }, false},
		{"bad edge mode", func(c *JezzballConfig) { c.Ball.EdgeMode = "wrap" }, false},
		{"bounce", func(c *JezzballConfig) { c.Ball.EdgeMode = "bounce" }, true},
	}

	for _, tt := range tests {
		cfg := DefaultJezzballConfig()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v, expected ok=%v", tt.name, err, tt.ok)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"a.yaml", FormatYAML, false},
		{"a.YML", FormatYAML, false},
		{"dir/a.toml", FormatTOML, false},
		{"a.json", "", true},
	}

	for _, tt := range tests {
		got, err := FormatForPath(tt.path)
		if got != tt.want || (err != nil) != tt.err {
			t.Errorf("FormatForPath(%q) = %q, %v, expected %q", tt.path, got, err, tt.want)
		}
		if tt.err && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("FormatForPath(%q) error = %v, expected ErrUnknownFormat", tt.path, err)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("field:\n  cell_size: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Field.CellSize != 8 {
		t.Errorf("CellSize = %d, expected 8", cfg.Field.CellSize)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball:\n  radius: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(invalid) expected error")
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	if err != nil {
		t.Fatalf("Schema() failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if doc["title"] != "JezzBall configuration" {
		t.Errorf("title = %v, expected JezzBall configuration", doc["title"])
	}
	props, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties: %s", data)
	}
	for _, key := range []string{"field", "ball", "barrier", "difficulty"} {
		if _, ok := props[key]; !ok {
			t.Errorf("schema missing property %q", key)
		}
	}
}
