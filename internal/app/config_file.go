package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Input     string `yaml:"input" json:"input"`
	Output    string `yaml:"output" json:"output"`
	Format    string `yaml:"format" json:"format"`
	Extractor string `yaml:"extractor" json:"extractor"`
	Verbose   bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig. The extension picks the
// decoder: .yaml/.yml and .json are strict, so a malformed fbusecases.json is
// reported as JSON. Any other name (for example ".fbusecasesrc") is tried as
// YAML first, which also accepts most JSON, then as JSON.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from fc onto fields of cfg that flags and
// env left unset. A relative input or output path is resolved against the
// directory holding the config file.
func ApplyFileConfig(cfg *Config, fc FileConfig, configPath string) {
	if cfg == nil {
		return
	}
	base := filepath.Dir(configPath)
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) || configPath == "" {
			return p
		}
		return filepath.Join(base, p)
	}

	if cfg.InputPath == "" {
		cfg.InputPath = resolve(fc.Input)
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = resolve(fc.Output)
	}
	if cfg.Format == "" {
		cfg.Format = fc.Format
	}
	if cfg.Extractor == "" {
		cfg.Extractor = fc.Extractor
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
