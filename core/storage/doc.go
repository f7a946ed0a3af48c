// Package storage provides the object-store collaborator used to re-host
// acquired cover images and author portraits.
//
// It wraps the MinIO S3-compatible client behind a narrow Client interface so
// the media pipeline can be tested against mocks (see the mocks subpackage).
//
// # Capabilities
//
//   - BucketExists / MakeBucket: bucket provisioning at startup.
//   - PutObject: upload of an image byte stream under its media key.
//   - RemoveObject: rollback of an upload whose database record failed.
//
// # Configuration
//
// The Config struct defines the endpoint, credentials, bucket, and timeouts.
// Defaults target a local MinIO instance.
package storage
