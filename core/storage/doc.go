// Package storage provides an abstraction layer for object storage services.
//
// Rail reports are often produced on shared infrastructure and published to
// an S3-compatible bucket rather than local disk. This package wraps the
// MinIO Go client so the comparer can fetch remote inputs to a local
// scratch directory before parsing (Fetch) and publish the comparison
// outputs back to the bucket after a run (Upload).
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves a report file as a stream.
//   - PutObject: Uploads result files (with size and options).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	local, err := storage.Fetch(ctx, client, "reports", "runs/a.rpt", tmpDir)
package storage
