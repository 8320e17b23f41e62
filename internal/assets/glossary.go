package assets

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const glossaryTemplateName = "glossary.md.go.tmpl"

//go:embed templates/glossary.md.go.tmpl
var fallbackGlossaryTemplate string

// GlossaryTemplate is the data rendered into a glossary.
type GlossaryTemplate struct {
	Title     string
	Words     []GlossaryWord
	Greetings []GlossaryGreeting
}

// GlossaryWord is a word with its meaning.
type GlossaryWord struct {
	Word    string
	Meaning string
}

// GlossaryGreeting is a greeting trigger with its responses.
type GlossaryGreeting struct {
	Trigger   string
	Responses []string
}

// WriteGlossary renders the glossary with the template at templatePath,
// or the embedded one when the path is empty, missing or invalid.
func WriteGlossary(output io.Writer, templatePath string, templateData GlossaryTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, fallbackGlossaryTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

func parseTemplateWithFallback(templatePath string, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(glossaryTemplateName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
