package datasync

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/eliana/internal/knowledge"
)

// YAMLKnowledgeSink writes knowledge to YAML files for review outside the chat.
type YAMLKnowledgeSink struct {
	outputDir string
}

// NewYAMLKnowledgeSink creates a new YAMLKnowledgeSink.
func NewYAMLKnowledgeSink(outputDir string) *YAMLKnowledgeSink {
	return &YAMLKnowledgeSink{outputDir: outputDir}
}

// WriteAll writes words and greetings to word_meanings.yml and greetings.yml.
func (s *YAMLKnowledgeSink) WriteAll(words []knowledge.Entry, greetings []knowledge.GreetingEntry) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := writeYAML(filepath.Join(s.outputDir, "word_meanings.yml"), words); err != nil {
		return fmt.Errorf("write word_meanings.yml: %w", err)
	}
	if err := writeYAML(filepath.Join(s.outputDir, "greetings.yml"), greetings); err != nil {
		return fmt.Errorf("write greetings.yml: %w", err)
	}
	return nil
}

func writeYAML(path string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}
