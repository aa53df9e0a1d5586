package announce

import (
	_ "embed"
	"os"
	"text/template"
)

//go:embed draft.tmpl
var defaultTemplate string

// loadTemplate parses the announcement template, using the built-in draft
// when no override file is configured.
func loadTemplate(file string) (*template.Template, error) {
	text := defaultTemplate
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		text = string(b)
	}
	return template.New("announcement").Parse(text)
}
