package extract

import (
	"strings"
	"testing"
)

// Benchmark both extraction strategies on pages of increasing size.
func BenchmarkExtractors(b *testing.B) {
	sizes := map[string]int{"small": 5, "medium": 60, "large": 400}
	extractors := map[string]Extractor{"pattern": PatternExtractor{}, "dom": DOMExtractor{}}
	for sizeName, n := range sizes {
		page := makePage(n)
		for name, ex := range extractors {
			b.Run(name+"/"+sizeName, func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_ = ex.Extract(page)
				}
			})
		}
	}
}

func makePage(entries int) []byte {
	builder := new(strings.Builder)
	builder.WriteString("<html><head><title>Use cases</title></head><body><main>")
	for i := 0; i < entries; i++ {
		builder.WriteString(heading("Use case &amp; more"))
		builder.WriteString(description(sampleText))
	}
	builder.WriteString("</main></body></html>")
	return []byte(builder.String())
}

const sampleText = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."
