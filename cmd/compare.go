package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"decochanges/core/config"
	"decochanges/core/diff"
	"decochanges/core/logger"
	"decochanges/core/render"
	"decochanges/core/snapshot"
	"decochanges/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare command
	excelOut string
	textOut  string
	bothOut  bool
)

// compareCmd compares two decoration exports and renders the differences.
var compareCmd = &cobra.Command{
	Use:   "compare <old_export> <new_export>",
	Short: "Compare two decoration exports",
	Long: `Compare two decoration export files and report newly found decorations
and quantity increases. Exports may be local files or s3://bucket/object
paths into the configured storage.

Without output flags the report is printed as a terminal table. A bare
--excel or --text writes the default file name; a custom path must be
attached with = (--text=out/changes.txt).

Examples:
  # Print the report to the terminal
  decochanges compare old.json new.json

  # Write an Excel workbook (default name DecoChanges.xlsx)
  decochanges compare old.json new.json --excel

  # Write a text file to a specific path
  decochanges compare old.json new.json --text=out/changes.txt

  # Write both outputs with their default names
  decochanges compare old.json new.json --both

  # Compare exports stored in a bucket
  decochanges compare s3://exports/old.json s3://exports/new.json`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&excelOut, "excel", "e", "", "Write the Excel output; pass a path with --excel=path")
	compareCmd.Flags().StringVarP(&textOut, "text", "t", "", "Write the text output; pass a path with --text=path")
	compareCmd.Flags().BoolVarP(&bothOut, "both", "b", false, "Create both Excel and text outputs with their default names")

	// Allow bare --excel / --text to mean "use the default file name".
	compareCmd.Flags().Lookup("excel").NoOptDefVal = render.DefaultExcelName
	compareCmd.Flags().Lookup("text").NoOptDefVal = render.DefaultTextName

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	// The storage client is only needed for s3:// paths.
	var store storage.Client
	if snapshot.IsObjectPath(args[0]) || snapshot.IsObjectPath(args[1]) {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	exports := snapshot.NewLoader(store, cfg.Compare)
	before, err := exports.Load(ctx, args[0])
	if err != nil {
		return err
	}
	after, err := exports.Load(ctx, args[1])
	if err != nil {
		return err
	}

	report := diff.Diff(before, after)
	if report.Empty() {
		if before.Equal(after) {
			l.Info("The exports contain identical data, there is nothing to compare.")
		} else {
			l.Info("No additions found between the two exports, no output was created.")
		}
		return nil
	}

	if bothOut {
		excelOut = render.DefaultExcelName
		textOut = render.DefaultTextName
	}

	// Terminal output when no file output was requested.
	if excelOut == "" && textOut == "" {
		return render.Console(report)
	}

	if excelOut != "" {
		path := normalizeOutputPath(excelOut, ".xlsx")
		if err := render.Excel(path, report); err != nil {
			return err
		}
		l.Info("Comparison data saved", zap.String("file", path))
	}

	if textOut != "" {
		path := normalizeOutputPath(textOut, ".txt")
		if err := render.TextFile(path, report); err != nil {
			return err
		}
		l.Info("Comparison data saved", zap.String("file", path))
	}

	return nil
}

// normalizeOutputPath resolves an output flag value to a concrete file path:
// a directory gets the default file name appended, and a missing extension
// is added.
func normalizeOutputPath(path, ext string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, render.DefaultBaseName+ext)
	}
	if !strings.HasSuffix(strings.ToLower(path), ext) {
		return path + ext
	}
	return path
}
