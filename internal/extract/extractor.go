package extract

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownExtractor is returned by ByName for unsupported strategy names.
var ErrUnknownExtractor = errors.New("unknown extractor")

// Extractor defines a minimal interface for use-case extraction strategies.
// Implementations can swap scraping tactics without changing callers.
type Extractor interface {
	// Extract turns raw page bytes into an ordered list of use cases.
	// Implementations must be deterministic and free of side effects.
	Extract(input []byte) []UseCase
}

// PatternExtractor uses the two fixed patterns of FromHTML. It is the
// default.
type PatternExtractor struct{}

func (PatternExtractor) Extract(input []byte) []UseCase {
	return FromHTML(input)
}

// DOMExtractor walks a parsed document tree; see FromDOM.
type DOMExtractor struct{}

func (DOMExtractor) Extract(input []byte) []UseCase {
	return FromDOM(input)
}

// ByName resolves an extraction strategy. An empty name selects the pattern
// extractor.
func ByName(name string) (Extractor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "pattern", "regex":
		return PatternExtractor{}, nil
	case "dom", "html":
		return DOMExtractor{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtractor, name)
	}
}
