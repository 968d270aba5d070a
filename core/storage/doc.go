// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so decoration exports can live in a bucket
// instead of on local disk. The abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (see core/storage/mocks).
// It is intentionally limited to the operations this tool performs:
//
//   - BucketExists: Verifies access to the exports bucket.
//   - GetObject: Retrieves an export as a stream.
//   - PutObject: Uploads a new export.
//   - ListObjects: Lists exports in the bucket.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "exports")
package storage
