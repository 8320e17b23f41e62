package datasync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/eliana/internal/knowledge"
)

func TestYAMLKnowledgeSink_WriteAll(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "export")
	sink := NewYAMLKnowledgeSink(outputDir)

	err := sink.WriteAll(
		[]knowledge.Entry{{Word: "anime", Meaning: "Top tier entertainment"}},
		[]knowledge.GreetingEntry{{Trigger: "hi", Responses: []string{"Hello!", "Hey!"}}},
	)
	require.NoError(t, err)

	words, err := os.ReadFile(filepath.Join(outputDir, "word_meanings.yml"))
	require.NoError(t, err)
	assert.Equal(t, "- word: anime\n  meaning: Top tier entertainment\n", string(words))

	data, err := os.ReadFile(filepath.Join(outputDir, "greetings.yml"))
	require.NoError(t, err)
	var greetings []knowledge.GreetingEntry
	require.NoError(t, yaml.Unmarshal(data, &greetings))
	assert.Equal(t, []knowledge.GreetingEntry{{Trigger: "hi", Responses: []string{"Hello!", "Hey!"}}}, greetings)
}

func TestYAMLKnowledgeSink_WriteAll_OutputDirIsFile(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "export")
	require.NoError(t, os.WriteFile(outputDir, []byte("x"), 0o644))

	err := NewYAMLKnowledgeSink(outputDir).WriteAll(nil, nil)
	assert.Error(t, err)
}
