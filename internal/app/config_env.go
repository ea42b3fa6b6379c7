package app

import (
	"os"
	"strings"
)

// Environment variables consulted by ApplyEnvToConfig.
const (
	EnvInput     = "FBUSECASES_INPUT"
	EnvOutput    = "FBUSECASES_OUTPUT"
	EnvFormat    = "FBUSECASES_FORMAT"
	EnvExtractor = "FBUSECASES_EXTRACTOR"
	EnvVerbose   = "FBUSECASES_VERBOSE"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	setString := func(dst *string, key string) {
		if *dst != "" {
			return
		}
		*dst = strings.TrimSpace(os.Getenv(key))
	}
	setString(&cfg.InputPath, EnvInput)
	setString(&cfg.OutputPath, EnvOutput)
	setString(&cfg.Format, EnvFormat)
	setString(&cfg.Extractor, EnvExtractor)

	if !cfg.Verbose {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvVerbose))) {
		case "1", "true", "yes", "on":
			cfg.Verbose = true
		}
	}
}
