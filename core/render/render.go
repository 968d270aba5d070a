package render

import (
	"sort"

	"decochanges/core/diff"
)

// Default output file names, used when an output flag is given without a
// path or with a directory.
const (
	DefaultBaseName  = "DecoChanges"
	DefaultExcelName = DefaultBaseName + ".xlsx"
	DefaultTextName  = DefaultBaseName + ".txt"
)

// Section headings shared by the console and text renderers.
const (
	headingIncremented = "Changes to Existing Decorations"
	headingAdded       = "Newly Added Decorations"
)

// sortedByName returns a copy of entries ordered by decoration name.
func sortedByName(entries []diff.Entry) []diff.Entry {
	sorted := make([]diff.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
