// Package diff computes the difference report between two decoration
// snapshots.
//
// Diff is a pure function over two valid Snapshots: it cannot fail, performs
// no IO, and never mutates its inputs. The report contains two ordered
// groups:
//
//   - Added: names present only in the new snapshot, with their quantity.
//   - Incremented: names present in both snapshots whose quantity grew,
//     with old/new quantities and the delta.
//
// Names removed since the old snapshot, and quantity decreases, are
// deliberately not reported; the tool tracks additions only. Group order
// follows the order names first appear in the new snapshot's source data.
package diff
