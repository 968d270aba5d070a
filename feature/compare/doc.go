// Package compare exposes export comparison over HTTP.
//
// Exports live in the configured storage bucket; the feature loads two of
// them, runs the reconciliation and returns the difference report as JSON.
// The two exports are fetched and parsed in parallel since each load
// produces an independent snapshot.
//
// # HTTP Endpoints
//
//   - GET /compare?old=<object>&new=<object> : Compares two export objects
//     and returns the diff report. 422 on malformed exports, 404 when an
//     object is missing.
//   - GET /exports : Lists export objects (.json/.txt) in the bucket.
//   - POST /exports : Uploads a new export (multipart field "export").
package compare
