package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"decochanges/core/diff"
)

// Text writes the report in the plain-text layout to w.
func Text(w io.Writer, report *diff.Report) error {
	_, err := io.WriteString(w, renderText(report))
	return err
}

// TextFile renders the report into the file at path, creating parent
// directories as needed.
func TextFile(path string, report *diff.Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create text output: %w", err)
	}
	defer file.Close()

	if err := Text(file, report); err != nil {
		return fmt.Errorf("failed to write text output: %w", err)
	}
	return nil
}

func renderText(report *diff.Report) string {
	var b strings.Builder

	if len(report.Incremented) > 0 {
		fmt.Fprintf(&b, "-----%s-----\n", headingIncremented)
		for _, e := range sortedByName(report.Incremented) {
			fmt.Fprintf(&b, "%s, added: %d | %d\n", e.Name, e.Delta, e.NewQuantity)
		}
	} else {
		fmt.Fprintf(&b, "-----No %s-----\n", headingIncremented)
	}

	if len(report.Added) > 0 {
		fmt.Fprintf(&b, "\n-----%s-----\n", headingAdded)
		for _, e := range sortedByName(report.Added) {
			fmt.Fprintf(&b, "%s, amount: %d\n", e.Name, e.Quantity)
		}
	} else {
		fmt.Fprintf(&b, "\n-----No %s-----\n", headingAdded)
	}

	fmt.Fprintf(&b, "\nTotal added (changed decorations): %d", report.Summary.IncrementedDelta)
	fmt.Fprintf(&b, "\nTotal added (new decorations): %d", report.Summary.AddedItems)

	return b.String()
}
