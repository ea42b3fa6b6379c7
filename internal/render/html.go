package render

import (
	"fmt"
	"io"

	"github.com/yuin/goldmark"

	"github.com/hyperifyio/fbusecases/internal/extract"
)

// HTML converts the Markdown rendering of cases to an HTML fragment.
// Raw HTML inside titles or descriptions is not passed through.
func HTML(w io.Writer, cases []extract.UseCase) error {
	md := goldmark.New()
	if err := md.Convert([]byte(MarkdownString(cases)), w); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}
	return nil
}
