// Package render writes extracted use cases as Markdown, HTML, YAML or PDF.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hyperifyio/fbusecases/internal/extract"
)

// Banner is the top-level heading of every rendered document.
const Banner = "Facebook API Use Cases"

// Format names an output encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatYAML     Format = "yaml"
	FormatPDF      Format = "pdf"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a user-supplied name to a Format. Empty means Markdown.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Write renders cases to w in the given format.
func Write(w io.Writer, f Format, cases []extract.UseCase) error {
	switch f {
	case FormatMarkdown:
		return Markdown(w, cases)
	case FormatHTML:
		return HTML(w, cases)
	case FormatYAML:
		return YAML(w, cases)
	case FormatPDF:
		return PDF(w, cases)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
