// Package middleware provides HTTP middleware for the preview server.
//
// This package includes:
//   - Prometheus request and render metrics
//   - OpenTelemetry request tracing
//   - slog request logging
//
// All middlewares have the standard func(http.Handler) http.Handler shape
// and compose with chi's Use:
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestLogger(logger))
//	r.Use(middleware.Prometheus())
//	r.Use(middleware.OpenTelemetry())
//
// Expose the collected metrics with promhttp:
//
//	r.Handle("/metrics", promhttp.Handler())
package middleware
