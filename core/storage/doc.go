// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface, which supports both
// AWS S3 and self-hosted MinIO. The bucket holds the exported catalogue (catalog/)
// and archived loader reports (reports/).
//
// The Client interface makes storage easy to mock in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.PutJSON(ctx, client, cfg.Storage.Bucket, "reports/"+report.RunID+".json", report)
package storage
