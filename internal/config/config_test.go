package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Log.Level != "warn" || !cfg.Output.Color || cfg.Output.ASTFormat != "text" {
		t.Errorf("Default() = %+v", cfg)
	}
	if cfg.REPL.Prompt != "aqa> " || cfg.Watch.Debounce.Duration != 100*time.Millisecond {
		t.Errorf("Default() = %+v", cfg)
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "aqa.toml", `
[log]
level = "debug"

[output]
color = false
ast_format = "json"

[trace]
tokens = true

[watch]
debounce = "250ms"
`)
	cfg, err := LoadFile(path, FormatAuto)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Output.Color || cfg.Output.ASTFormat != "json" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Trace.Tokens || cfg.Trace.AST {
		t.Errorf("Trace = %+v", cfg.Trace)
	}
	if cfg.Watch.Debounce.Duration != 250*time.Millisecond {
		t.Errorf("Debounce = %v, want 250ms", cfg.Watch.Debounce)
	}
	// Unset keys keep their defaults.
	if cfg.REPL.Prompt != "aqa> " {
		t.Errorf("REPL.Prompt = %q, want default", cfg.REPL.Prompt)
	}
}

func TestLoadFileYAML(t *testing.T) {
	for _, name := range []string{"aqa.yaml", "aqa.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, `
log:
  level: error
output:
  ast_format: yaml
repl:
  prompt: "> "
  history_file: ""
watch:
  debounce: 1s
`)
			cfg, err := LoadFile(path, FormatAuto)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if cfg.Log.Level != "error" || cfg.Output.ASTFormat != "yaml" || !cfg.Output.Color {
				t.Errorf("cfg = %+v", cfg)
			}
			if cfg.REPL.Prompt != "> " || cfg.REPL.HistoryFile != "" {
				t.Errorf("REPL = %+v", cfg.REPL)
			}
			if cfg.Watch.Debounce.Duration != time.Second {
				t.Errorf("Debounce = %v, want 1s", cfg.Watch.Debounce)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		cfg, err := Parse(nil, format)
		if err != nil {
			t.Errorf("Parse(empty, %v) error = %v", format, err)
			continue
		}
		if *cfg != *Default() {
			t.Errorf("Parse(empty, %v) = %+v, want defaults", format, cfg)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		content string
		want    string
	}{
		{"toml_syntax", FormatTOML, "[log\nlevel = 1", "TOML parse error"},
		{"toml_unknown_key", FormatTOML, "[log]\nlevle = \"debug\"", "unknown config keys: log.levle"},
		{"toml_bad_duration", FormatTOML, "[watch]\ndebounce = \"soon\"", "TOML parse error"},
		{"yaml_syntax", FormatYAML, "log: [", "YAML parse error"},
		{"yaml_unknown_key", FormatYAML, "output:\n  colour: false\n", "YAML parse error"},
		{"unsupported", FormatAuto, "", "unsupported format: auto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content), tt.format)
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"), FormatAuto)
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("LoadFile(missing) error = %v", err)
	}
}

func TestLoadLookupOrder(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvColor, "")
	t.Setenv(EnvASTFormat, "")

	// Nothing configured: defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("no file: level = %q, want warn", cfg.Log.Level)
	}

	// ./aqa.toml is picked up.
	if err := os.WriteFile(DefaultFile, []byte("[log]\nlevel = \"info\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, err = Load(""); err != nil || cfg.Log.Level != "info" {
		t.Errorf("working dir file: level = %v, %v; want info", cfg, err)
	}

	// $AQA_CONFIG beats ./aqa.toml.
	envPath := writeFile(t, "env.yaml", "log:\n  level: error\n")
	t.Setenv(EnvConfig, envPath)
	if cfg, err = Load(""); err != nil || cfg.Log.Level != "error" {
		t.Errorf("AQA_CONFIG: level = %v, %v; want error", cfg, err)
	}

	// An explicit path beats both.
	flagPath := writeFile(t, "flag.toml", "[log]\nlevel = \"debug\"\n")
	if cfg, err = Load(flagPath); err != nil || cfg.Log.Level != "debug" {
		t.Errorf("explicit path: level = %v, %v; want debug", cfg, err)
	}
}

func TestLoadValidates(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvColor, "")
	t.Setenv(EnvASTFormat, "")
	path := writeFile(t, "bad.toml", "[output]\nast_format = \"xml\"\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "ast_format") {
		t.Errorf("Load(bad format) error = %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:  "debug",
		EnvColor:     "false",
		EnvASTFormat: "yaml",
	}
	cfg := Default()
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "debug" || cfg.Output.Color || cfg.Output.ASTFormat != "yaml" {
		t.Errorf("ApplyEnv() = %+v", cfg)
	}

	env[EnvColor] = "sometimes"
	if err := Default().ApplyEnv(func(k string) string { return env[k] }); err == nil {
		t.Error("ApplyEnv() accepted an invalid boolean")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"level_upper", func(c *Config) { c.Log.Level = "DEBUG" }, false},
		{"level_bad", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"format_json", func(c *Config) { c.Output.ASTFormat = "json" }, false},
		{"format_bad", func(c *Config) { c.Output.ASTFormat = "" }, true},
		{"debounce_negative", func(c *Config) { c.Watch.Debounce.Duration = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelWarn},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Log.Level = tt.level
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestHistoryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	if got, want := cfg.HistoryPath(), filepath.Join(home, ".aqa_history"); got != want {
		t.Errorf("HistoryPath() = %q, want %q", got, want)
	}
	cfg.REPL.HistoryFile = "/tmp/h"
	if got := cfg.HistoryPath(); got != "/tmp/h" {
		t.Errorf("absolute HistoryPath() = %q", got)
	}
	cfg.REPL.HistoryFile = ""
	if got := cfg.HistoryPath(); got != "" {
		t.Errorf("disabled HistoryPath() = %q", got)
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil || d.Duration != 90*time.Second {
		t.Errorf("UnmarshalText = %v, %v", d, err)
	}
	if err := d.UnmarshalText([]byte("later")); err == nil {
		t.Error("UnmarshalText(later) succeeded")
	}
	b, _ := Duration{2 * time.Second}.MarshalText()
	if string(b) != "2s" {
		t.Errorf("MarshalText = %q", b)
	}
}

func TestFormatString(t *testing.T) {
	for f, want := range map[Format]string{FormatTOML: "toml", FormatYAML: "yaml", FormatAuto: "auto", Format(7): "unknown"} {
		if got := f.String(); got != want {
			t.Errorf("Format(%d).String() = %q, want %q", f, got, want)
		}
	}
}

// testChdir changes the working directory to dir for the duration of the
// test (stand-in for testing.T.Chdir, which needs Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
