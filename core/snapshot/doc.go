// Package snapshot loads decoration exports into canonical Snapshots.
//
// A Snapshot is an insertion-ordered mapping from decoration name to owned
// quantity, built once from a single export file and never mutated afterwards.
// Two export encodings are supported:
//
//   - Structured: a flat JSON object mapping names to integer quantities,
//     as produced by the in-game export mod.
//   - Delimited: plain text with one "name,quantity" record per line.
//
// The encoding is detected from the file extension (.json or .txt); any other
// extension is rejected. Some exports start with a "WARNING:" banner line,
// which is stripped before parsing in either encoding.
//
// # Parsing Policy
//
// A missing or malformed quantity field takes the configured default (see
// Config.DefaultQuantity). When the same name occurs more than once within a
// file, the last occurrence's quantity wins while the name keeps its original
// position. Both rules apply identically to the old and the new export of a
// comparison run.
//
// # Sources
//
// The Loader reads local file paths directly and fetches "s3://bucket/object"
// paths through the storage client, so exports kept in a bucket and exports
// on disk yield identical Snapshots for identical content.
package snapshot
