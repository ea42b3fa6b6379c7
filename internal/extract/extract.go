package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// headingRe captures the text between a role="heading" element and the
	// next closing div.
	headingRe = regexp.MustCompile(`(?s)role="heading"[^>]*>\s*(.*?)\s*</div>`)
	// descriptionRe captures the text of an element carrying both style
	// tokens up to the first anchor that follows it.
	descriptionRe = regexp.MustCompile(`(?s)class="[^"]*x8t9es0[^"]*x1fvot60[^"]*"[^>]*>\s*(.*?)\s*<a`)
)

// FromHTML scans a saved use-case page with two fixed patterns and pairs
// headings with descriptions by document position.
func FromHTML(input []byte) []UseCase {
	content := string(input)

	var titles []string
	for _, m := range headingRe.FindAllStringSubmatch(content, -1) {
		title := Clean(strings.ReplaceAll(m[1], "&amp;", "&"))
		if keep(title) {
			titles = append(titles, title)
		}
	}

	var descriptions []string
	for _, m := range descriptionRe.FindAllStringSubmatch(content, -1) {
		desc := Clean(m[1])
		if keep(desc) {
			descriptions = append(descriptions, desc)
		}
	}

	return pair(titles, descriptions)
}

// Clean collapses every whitespace run, newlines included, to a single
// space and trims the ends. Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

// isSpace extends unicode.IsSpace with the ASCII file, group, record and
// unit separators (U+001C..U+001F), which page text treats as blanks.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// keep drops empty captures and captures that still open with a tag, which
// happens when a match swallowed nested markup.
func keep(s string) bool {
	return s != "" && !strings.HasPrefix(s, "<")
}
