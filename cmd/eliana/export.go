package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/eliana/internal/assets"
	"github.com/at-ishikawa/eliana/internal/knowledge"
	"github.com/at-ishikawa/eliana/internal/pdf"
)

// Format is the output format of the glossary.
type Format string

// Set implements pflag.Value.
func (f *Format) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

// String implements pflag.Value.
func (f Format) String() string {
	return string(f)
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "Format"
}

const (
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

var (
	_          pflag.Value = (*Format)(nil)
	allFormats             = []Format{FormatMarkdown, FormatPDF}
)

const glossaryFileName = "glossary.md"

func newExportCommand() *cobra.Command {
	format := FormatMarkdown

	command := &cobra.Command{
		Use:   "export",
		Short: "Export the known words and greetings as a glossary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			outputDir := cfg.Outputs.GlossaryDirectory
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("os.MkdirAll(%s) > %w", outputDir, err)
			}
			markdownPath := filepath.Join(outputDir, glossaryFileName)
			if err := writeGlossaryFile(markdownPath, cfg.Templates.GlossaryTemplate, cfg.Chat.Name, store); err != nil {
				return err
			}

			outputPath := markdownPath
			if format == FormatPDF {
				outputPath, err = pdf.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
				}
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Glossary written to %s\n", outputPath)
			return err
		},
	}
	command.Flags().Var(&format, "format", fmt.Sprintf("Output format. Possible values are %v", allFormats))
	return command
}

func writeGlossaryFile(path string, templatePath string, name string, store *knowledge.Store) error {
	data := assets.GlossaryTemplate{
		Title: fmt.Sprintf("%s glossary", name),
	}
	for _, entry := range store.Words() {
		data.Words = append(data.Words, assets.GlossaryWord{
			Word:    entry.Word,
			Meaning: entry.Meaning,
		})
	}
	for _, entry := range store.Greetings() {
		data.Greetings = append(data.Greetings, assets.GlossaryGreeting{
			Trigger:   entry.Trigger,
			Responses: entry.Responses,
		})
	}

	output, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() { _ = output.Close() }()

	if err := assets.WriteGlossary(output, templatePath, data); err != nil {
		return fmt.Errorf("assets.WriteGlossary() > %w", err)
	}
	return nil
}
