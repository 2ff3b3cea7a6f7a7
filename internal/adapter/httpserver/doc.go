// Package httpserver implements the HTTP server using Echo framework.
//
// Routes: greeting (GET /), application name (GET /app), health probes,
// version, and Prometheus metrics. The application name is loaded once at
// startup and shared read-only by all handlers.
package httpserver
