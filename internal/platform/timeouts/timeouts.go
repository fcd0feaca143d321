// Package timeouts defines shared timeout constants used by the web service.
package timeouts

import "time"

// UpstreamRequest caps the time allowed for a single call to the remote
// todos API.
const UpstreamRequest = 5 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown bounds the span flush performed on process exit.
const TelemetryShutdown = 5 * time.Second
