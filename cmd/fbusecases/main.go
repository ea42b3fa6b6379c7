package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/fbusecases/internal/app"
)

func main() {
	// Logging setup: stdout carries the document, logs go to stderr.
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath   string
		outputPath  string
		format      string
		extractor   string
		configPath  string
		envFile     string
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to the saved use-case HTML page (default: "+app.DefaultInputName+" next to the binary)")
	flag.StringVar(&outputPath, "output", "", "Write the result to this file instead of stdout")
	flag.StringVar(&format, "format", "", "Output format: markdown, html, yaml or pdf (default markdown)")
	flag.StringVar(&extractor, "extractor", "", "Extraction strategy: pattern or dom (default pattern)")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	flag.StringVar(&envFile, "env", ".env", "Optional dotenv file loaded before reading FBUSECASES_* variables")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(app.VersionString())
		return
	}

	cfg := app.Config{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Format:     format,
		Extractor:  extractor,
		Verbose:    verbose,
	}

	cfg, err := buildConfig(cfg, envFile, configPath)
	if err != nil {
		log.Error().Err(err).Str("config", configPath).Msg("load config failed")
		os.Exit(1)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

// buildConfig layers configuration sources onto the values given by flags.
// Precedence is flags, then environment (after loading envFile), then the
// config file at configPath. Remaining gaps are filled by app.New.
func buildConfig(flags app.Config, envFile, configPath string) (app.Config, error) {
	cfg := flags
	if err := app.LoadEnvFiles(envFile); err != nil {
		log.Warn().Err(err).Str("file", envFile).Msg("env file ignored")
	}
	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			return cfg, err
		}
		app.ApplyFileConfig(&cfg, fc, configPath)
	}
	return cfg, nil
}

func run(cfg app.Config, stdout io.Writer) error {
	a, err := app.New(cfg, stdout)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(context.Background())
}
