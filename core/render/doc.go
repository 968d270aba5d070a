// Package render turns a diff.Report into user-facing output.
//
// Three renderers consume the same report shape:
//
//   - Console: pterm tables printed to the terminal, one per non-empty group,
//     followed by the totals.
//   - Text: a plain-text file with a section per group and a totals footer.
//   - Excel: an xlsx workbook with one sheet per non-empty group, including
//     SUM/COUNTA total rows, a frozen header and auto-sized columns.
//
// Reports keep the insertion order of the new export; renderers sort rows by
// decoration name for display, without touching the report itself.
package render
