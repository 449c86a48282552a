// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so raw match logs can be read from, and canonical
// records written to, either AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider, making it easy to mock
// storage interactions in unit tests (see core/storage/mocks).
//
// # Helpers
//
//   - EnsureBucket: creates the bucket on first use.
//   - ReadObject / WriteObject: whole-object reads and uploads.
//   - ListNames: base names of the objects under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "input/mjlog/1.xml")
package storage
