package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/fbusecases/internal/extract"
	"github.com/hyperifyio/fbusecases/internal/render"
)

type App struct {
	cfg       Config
	stdout    io.Writer
	format    render.Format
	extractor extract.Extractor
}

// New validates cfg and prepares an App that prints to stdout unless
// cfg.OutputPath is set.
func New(cfg Config, stdout io.Writer) (*App, error) {
	cfg = cfg.withDefaults()
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	ex, err := extract.ByName(cfg.Extractor)
	if err != nil {
		return nil, err
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &App{cfg: cfg, stdout: stdout, format: format, extractor: ex}, nil
}

// InputPath returns the resolved input file.
func (a *App) InputPath() string { return a.cfg.InputPath }

// Run reads the input page, extracts use cases and renders them. A missing
// input file is reported on stdout and is not an error.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := a.cfg.InputPath

	if _, err := os.Stat(path); err != nil {
		if isNotFound(err) {
			log.Debug().Str("input", path).Msg("input page missing")
			_, werr := fmt.Fprintf(a.stdout, "Error: %s not found\n", path)
			return werr
		}
		return fmt.Errorf("stat input: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	cases := a.extractor.Extract(content)
	placeholders := 0
	for _, c := range cases {
		if c.Description == extract.Placeholder {
			placeholders++
		}
	}
	log.Info().
		Str("input", path).
		Int("bytes", len(content)).
		Int("use_cases", len(cases)).
		Int("placeholders", placeholders).
		Str("extractor", fmt.Sprintf("%T", a.extractor)).
		Msg("use cases extracted")

	if a.cfg.OutputPath == "" {
		return render.Write(a.stdout, a.format, cases)
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, a.format, cases); err != nil {
		return err
	}
	if err := os.WriteFile(a.cfg.OutputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("out", a.cfg.OutputPath).Str("format", string(a.format)).Msg("wrote output")
	return nil
}
