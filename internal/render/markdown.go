package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/hyperifyio/fbusecases/internal/extract"
)

// MarkdownString returns the numbered Markdown list for cases:
//
//	# Facebook API Use Cases
//
//	## 1. <title>
//	<description>
//
// Numbering starts at 1 and every description is followed by a blank line.
func MarkdownString(cases []extract.UseCase) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(Banner)
	b.WriteString("\n\n")
	for i, c := range cases {
		b.WriteString("## ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(c.Title)
		b.WriteString("\n")
		b.WriteString(c.Description)
		b.WriteString("\n\n")
	}
	return b.String()
}

// Markdown writes MarkdownString(cases) to w.
func Markdown(w io.Writer, cases []extract.UseCase) error {
	_, err := io.WriteString(w, MarkdownString(cases))
	return err
}
