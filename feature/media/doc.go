// Package media implements the image acquisition pipeline.
//
// Acquire downloads a remote image to transient storage, inspects it, and
// re-hosts it through the object-store collaborator, recording a MediaAsset
// row that the rest of the entity graph references by id.
//
// # Steps
//
//  1. Download: streaming GET with a relaxed-TLS client profile (several
//     external image hosts run with non-standard certificates) into a scoped
//     temporary file named after the URL's last path segment. The file is
//     removed on every exit path.
//  2. Inspect: mime type and extension via content sniffing, pixel dimensions
//     via image.DecodeConfig (jpeg, png, gif, and webp are registered).
//  3. Upload: PutObject under the asset's media key, then create the
//     MediaAsset record. A record failure rolls the upload back.
//
// AcquirePortrait additionally bounds the image to a square portrait size
// before upload, matching how author photos are displayed.
//
// # Failure semantics
//
// Every failure is reported as *AcquisitionError. Callers treat acquisition
// as best-effort: the owning entity is saved without an image rather than
// aborting the run.
//
// The package also exposes an Auditor that reconciles asset records against
// the objects actually present in the bucket, reporting rows whose bytes are
// gone and objects no row points to.
package media
