// Package objectstore provides a MinIO-backed store for generated assets.
//
// The client is scoped to a single bucket (MINIO_BUCKET). It validates the
// connection and creates the bucket at construction time, so callers can
// assume Put/Get/Exists operate against an existing bucket.
//
// PresignedGetURL produces time-limited download links for serving assets
// without proxying bytes through the service.
package objectstore
