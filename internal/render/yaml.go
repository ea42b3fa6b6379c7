package render

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/fbusecases/internal/extract"
)

type yamlDocument struct {
	Title    string      `yaml:"title"`
	UseCases []yamlEntry `yaml:"usecases"`
}

type yamlEntry struct {
	Index       int    `yaml:"index"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// YAML writes cases as a YAML document with 1-based indexes.
func YAML(w io.Writer, cases []extract.UseCase) error {
	doc := yamlDocument{Title: Banner, UseCases: make([]yamlEntry, 0, len(cases))}
	for i, c := range cases {
		doc.UseCases = append(doc.UseCases, yamlEntry{Index: i + 1, Title: c.Title, Description: c.Description})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
