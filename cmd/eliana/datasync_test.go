package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/eliana/internal/datasync"
)

func TestNewDatasyncCommand(t *testing.T) {
	cmd := newDatasyncCommand()

	assert.Equal(t, "datasync", cmd.Use)
	assert.True(t, cmd.HasSubCommands())

	for _, name := range []string{"export", "import"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())

		dryRun := sub.Flags().Lookup("dry-run")
		require.NotNil(t, dryRun)
		assert.Equal(t, "false", dryRun.DefValue)
		assert.NotNil(t, sub.Flags().Lookup("update-existing"))
	}
}

func TestDatasyncYAMLCommand(t *testing.T) {
	dir := setupTestConfig(t)
	outputDir := filepath.Join(dir, "yaml")

	got, err := executeCommand(t, newDatasyncCommand(), "yaml", "--output", outputDir)
	require.NoError(t, err)
	assert.Equal(t, "Knowledge written to "+outputDir+"\n", got)

	words, err := os.ReadFile(filepath.Join(outputDir, "word_meanings.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(words), "word: anime")
	assert.FileExists(t, filepath.Join(outputDir, "greetings.yml"))
}

func TestPrintSyncSummary(t *testing.T) {
	tests := []struct {
		name string
		opts datasync.SyncOptions
		want string
	}{
		{
			name: "changes applied",
			want: "\nImport Summary:\n" +
				"  Words:     2 new, 1 skipped, 0 updated\n" +
				"  Greetings: 1 new, 0 skipped, 3 updated\n",
		},
		{
			name: "dry run",
			opts: datasync.SyncOptions{DryRun: true},
			want: "\nImport Summary:\n" +
				"  (dry-run mode, no changes made)\n" +
				"  Words:     2 new, 1 skipped, 0 updated\n" +
				"  Greetings: 1 new, 0 skipped, 3 updated\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			result := &datasync.SyncResult{WordsNew: 2, WordsSkipped: 1, GreetingsNew: 1, GreetingsUpdated: 3}
			require.NoError(t, printSyncSummary(&buf, "Import Summary:", result, tt.opts))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
