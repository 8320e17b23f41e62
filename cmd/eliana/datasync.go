package main

import (
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/eliana/internal/config"
	"github.com/at-ishikawa/eliana/internal/database"
	"github.com/at-ishikawa/eliana/internal/datasync"
	"github.com/at-ishikawa/eliana/internal/knowledge"
)

func newDatasyncCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "datasync",
		Short: "Copy knowledge between the knowledge file, the database and YAML files",
	}
	command.AddCommand(
		newDatasyncExportCommand(),
		newDatasyncImportCommand(),
		newDatasyncYAMLCommand(),
	)
	return command
}

func openDatabase(cmd *cobra.Command, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.Ping(cmd.Context(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.Ping() > %w", err)
	}
	if err := database.EnsureSchema(cmd.Context(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.EnsureSchema() > %w", err)
	}
	return db, nil
}

func newDatasyncExportCommand() *cobra.Command {
	var opts datasync.SyncOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the knowledge file into the database",
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
			db, err := openDatabase(cmd, cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			exporter := datasync.NewExporter(
				knowledge.NewDBWordRepository(db),
				knowledge.NewDBGreetingRepository(db),
				cmd.OutOrStdout(),
			)
			result, err := exporter.Export(cmd.Context(), store, opts)
			if err != nil {
				return fmt.Errorf("exporter.Export() > %w", err)
			}
			return printSyncSummary(cmd.OutOrStdout(), "Export Summary:", result, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview changes without modifying the database")
	cmd.Flags().BoolVar(&opts.UpdateExisting, "update-existing", false, "Update existing records with new data")
	return cmd
}

func newDatasyncImportCommand() *cobra.Command {
	var opts datasync.SyncOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import knowledge from the database into the knowledge file",
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
			db, err := openDatabase(cmd, cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			importer := datasync.NewImporter(
				knowledge.NewDBWordRepository(db),
				knowledge.NewDBGreetingRepository(db),
				cmd.OutOrStdout(),
			)
			result, err := importer.Import(cmd.Context(), store, opts)
			if err != nil {
				return fmt.Errorf("importer.Import() > %w", err)
			}
			return printSyncSummary(cmd.OutOrStdout(), "Import Summary:", result, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview changes without modifying the knowledge file")
	cmd.Flags().BoolVar(&opts.UpdateExisting, "update-existing", false, "Overwrite local entries with the database ones")
	return cmd
}

func newDatasyncYAMLCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "yaml",
		Short: "Write the knowledge file as YAML files",
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

			if err := datasync.NewYAMLKnowledgeSink(outputDir).WriteAll(store.Words(), store.Greetings()); err != nil {
				return fmt.Errorf("sink.WriteAll() > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Knowledge written to %s\n", outputDir)
			return err
		},
	}

	cmd.Flags().StringVar(&outputDir, "output", "knowledge", "Directory to write YAML files into")
	return cmd
}

func printSyncSummary(w io.Writer, title string, result *datasync.SyncResult, opts datasync.SyncOptions) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}
	if opts.DryRun {
		if _, err := fmt.Fprintln(w, "  (dry-run mode, no changes made)"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "  Words:     %d new, %d skipped, %d updated\n", result.WordsNew, result.WordsSkipped, result.WordsUpdated); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  Greetings: %d new, %d skipped, %d updated\n", result.GreetingsNew, result.GreetingsSkipped, result.GreetingsUpdated)
	return err
}
