package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyEnvToConfig_FillsOnlyUnset(t *testing.T) {
	t.Setenv(EnvInput, "/env/page.html")
	t.Setenv(EnvFormat, "html")
	t.Setenv(EnvExtractor, "dom")
	t.Setenv(EnvVerbose, "yes")

	cfg := Config{Format: "yaml"}
	ApplyEnvToConfig(&cfg)
	if cfg.InputPath != "/env/page.html" {
		t.Fatalf("expected input from env, got %q", cfg.InputPath)
	}
	if cfg.Format != "yaml" {
		t.Fatalf("explicit format should win, got %q", cfg.Format)
	}
	if cfg.Extractor != "dom" || !cfg.Verbose {
		t.Fatalf("unexpected cfg %+v", cfg)
	}
}

func TestLoadConfigFile_YAMLAndJSON(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(yml, []byte("input: pages/fb.html\nformat: pdf\nextractor: dom\nverbose: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadConfigFile(yml)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if fc.Input != "pages/fb.html" || fc.Format != "pdf" || fc.Extractor != "dom" || !fc.Verbose {
		t.Fatalf("unexpected yaml config %+v", fc)
	}

	js := filepath.Join(dir, "cfg.json")
	if err := os.WriteFile(js, []byte(`{"output":"out.md","format":"markdown"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	fc, err = LoadConfigFile(js)
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	if fc.Output != "out.md" || fc.Format != "markdown" {
		t.Fatalf("unexpected json config %+v", fc)
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(p, []byte("input: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFile(p); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApplyFileConfig_ResolvesRelativePaths(t *testing.T) {
	cfgPath := filepath.Join("etc", "fbusecases", "config.yaml")
	cfg := Config{Extractor: "pattern"}
	ApplyFileConfig(&cfg, FileConfig{Input: "fb.html", Output: "/tmp/out.md", Extractor: "dom", Format: "html"}, cfgPath)

	if want := filepath.Join("etc", "fbusecases", "fb.html"); cfg.InputPath != want {
		t.Fatalf("input = %q, want %q", cfg.InputPath, want)
	}
	if cfg.OutputPath != "/tmp/out.md" {
		t.Fatalf("absolute output should be kept, got %q", cfg.OutputPath)
	}
	if cfg.Extractor != "pattern" {
		t.Fatalf("explicit extractor should win, got %q", cfg.Extractor)
	}
	if cfg.Format != "html" {
		t.Fatalf("format from file expected, got %q", cfg.Format)
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.env")
	second := filepath.Join(dir, "b.env")
	content1 := "# comment\nFBUSECASES_FORMAT=yaml\nexport FBUSECASES_EXTRACTOR=\"dom\"\nmalformed\n"
	content2 := "FBUSECASES_FORMAT='html'\n"
	if err := os.WriteFile(first, []byte(content1), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte(content2), 0o644); err != nil {
		t.Fatal(err)
	}
	// Register cleanup for the variables the files set.
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvExtractor, "")

	if err := LoadEnvFiles(first, filepath.Join(dir, "missing.env"), second); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if got := os.Getenv(EnvFormat); got != "html" {
		t.Fatalf("later file should override, got %q", got)
	}
	if got := os.Getenv(EnvExtractor); got != "dom" {
		t.Fatalf("expected quoted export value unwrapped, got %q", got)
	}
}

func TestLoadConfigFile_ExtensionPolicy(t *testing.T) {
	dir := t.TempDir()

	rc := filepath.Join(dir, ".fbusecasesrc")
	if err := os.WriteFile(rc, []byte(`{"format":"yaml","extractor":"dom"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadConfigFile(rc)
	if err != nil {
		t.Fatalf("load rc: %v", err)
	}
	if fc.Format != "yaml" || fc.Extractor != "dom" {
		t.Fatalf("unexpected rc config %+v", fc)
	}

	bad := filepath.Join(dir, "fbusecases.json")
	if err := os.WriteFile(bad, []byte("format: yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadConfigFile(bad)
	if err == nil || !strings.HasPrefix(err.Error(), "parse json: ") {
		t.Fatalf("expected strict json error, got %v", err)
	}
}
