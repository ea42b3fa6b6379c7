package app

// Config holds runtime configuration for the application.
type Config struct {
	// InputPath is the saved use-case page. Empty means DefaultInputPath().
	InputPath string
	// OutputPath receives the rendered document. Empty means stdout.
	OutputPath string

	// Format is an output format name understood by render.ParseFormat.
	Format string
	// Extractor is a strategy name understood by extract.ByName.
	Extractor string

	Verbose bool
}

// withDefaults fills fields that no flag, env var or config file set.
func (c Config) withDefaults() Config {
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath()
	}
	if c.Format == "" {
		c.Format = "markdown"
	}
	if c.Extractor == "" {
		c.Extractor = "pattern"
	}
	return c
}
