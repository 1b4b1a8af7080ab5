// Package tracer provides distributed tracing via OpenTelemetry.
//
// NewClient configures the global TracerProvider, optionally exporting spans
// over OTLP HTTP (TRACER_ENABLE_EXPORT=true, endpoint from the standard
// OTEL_EXPORTER_OTLP_* variables). The Tracer type exposes StartSpan,
// SetAttributes and RecordErrorOnSpan; the pipeline wraps its retrieve,
// generate and attach stages in spans through it.
package tracer
