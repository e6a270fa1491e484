// Package server exposes the review backend over HTTP.
//
// Endpoints mirror the review workflow: analyze, fix, chat, report
// generation and download, plus read-only rule listing, health, statistics,
// and Prometheus metrics. Handlers are thin; all review semantics live in
// the review package.
package server
