// Package testutil provides shared test helpers for creating config files and knowledge fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/eliana/internal/knowledge"
)

// SetupTestConfig creates a config file whose knowledge file and outputs live under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	return writeConfig(t, tmpDir, "")
}

// SetupTestConfigWithSeedFile creates a config file that also seeds the knowledge from snapshot.
func SetupTestConfigWithSeedFile(t *testing.T, tmpDir string, snapshot knowledge.Snapshot) string {
	t.Helper()

	seedPath := filepath.Join(tmpDir, "seed.json")
	WriteKnowledgeFile(t, seedPath, snapshot)
	return writeConfig(t, tmpDir, seedPath)
}

func writeConfig(t *testing.T, tmpDir string, seedPath string) string {
	t.Helper()

	glossaryDir := filepath.Join(tmpDir, "glossary")
	require.NoError(t, os.MkdirAll(glossaryDir, 0755))

	configContent := fmt.Sprintf("knowledge:\n  data_file: %s\n", KnowledgeFilePath(tmpDir))
	if seedPath != "" {
		configContent += fmt.Sprintf("  seed_file: %s\n", seedPath)
	}
	configContent += fmt.Sprintf("outputs:\n  glossary_directory: %s\n", glossaryDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// KnowledgeFilePath returns the knowledge file SetupTestConfig points at.
func KnowledgeFilePath(tmpDir string) string {
	return filepath.Join(tmpDir, "word_meanings.json")
}

// WriteKnowledgeFile writes snapshot in the persisted knowledge file format.
func WriteKnowledgeFile(t *testing.T, path string, snapshot knowledge.Snapshot) {
	t.Helper()

	content, err := json.MarshalIndent(snapshot, "", "    ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0644))
}
