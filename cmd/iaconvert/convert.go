// Convert command: the main conversion pipeline.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/denshoproject/ddr-iaconvert/internal/convert"
	"github.com/denshoproject/ddr-iaconvert/internal/inventory"
	"github.com/denshoproject/ddr-iaconvert/internal/staging"
)

var (
	flagOutput       string
	flagBinaries     string
	flagPrepBinaries bool
	flagCollection   string
)

var convertCmd = &cobra.Command{
	Use:   "convert <entities-csv> <files-csv>",
	Short: "Convert entity and file exports into an IA bulk-upload CSV",
	Long: `Convert reads a DDR entities export and a files export, merges each
external file with its owning entity's metadata, links visual-history
interview segments to their neighbors, and writes one upload row per file.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output CSV path (default: stdout)")
	convertCmd.Flags().StringVar(&flagBinaries, "binaries", "", "directory holding the exported binaries")
	convertCmd.Flags().BoolVar(&flagPrepBinaries, "prep-binaries", false, "copy binaries into <binaries>/staged under their upload names")
	convertCmd.Flags().StringVar(&flagCollection, "collection", "", "IA collection bucket (default from config)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if flagPrepBinaries && flagBinaries == "" {
		return fmt.Errorf("--prep-binaries requires --binaries")
	}

	store := inventory.NewStore()
	if err := store.Attach(inventory.Config{
		EntitiesCSV: args[0],
		FilesCSV:    args[1],
	}); err != nil {
		return err
	}
	defer store.Detach()

	entities, err := store.Entities()
	if err != nil {
		return err
	}
	files, err := store.Files()
	if err != nil {
		return err
	}
	log.Debug("inventory loaded", "entities", len(entities), "files", len(files))

	opts := convert.Options{
		Collection: cfg.GetString(cfgKeyCollection),
		Subjects:   cfg.GetStringSlice(cfgKeySubjects),
	}
	if flagCollection != "" {
		opts.Collection = flagCollection
	}

	result, err := convert.Convert(entities, files, opts)
	if err != nil {
		return err
	}

	if err := writeOutput(result.Rows); err != nil {
		return err
	}

	if flagPrepBinaries {
		ops := staging.Plan(result.Rows, flagBinaries)
		copier := &staging.Copier{Dir: filepath.Join(flagBinaries, "staged")}
		if err := copier.Stage(ops); err != nil {
			return err
		}
		log.Info("binaries staged", "count", len(ops), "dir", copier.Dir)
	}

	report := result.Report
	for _, w := range report.Warnings {
		log.Warn(w.Detail, "kind", w.Kind, "subject", w.Subject)
	}
	log.Info("conversion complete",
		"run_id", report.RunID,
		"files", report.FilesSeen,
		"rows", report.RowsEmitted,
		"skipped", report.FilesSkipped,
		"warnings", len(report.Warnings))
	return nil
}

// writeOutput writes the CSV to --output, or stdout when unset.
func writeOutput(rows []convert.Row) error {
	if flagOutput == "" {
		return convert.WriteCSV(os.Stdout, rows)
	}

	f, err := os.Create(flagOutput)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := convert.WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
