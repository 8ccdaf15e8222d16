// Package timeouts defines shared timeout constants used across lastwalk
// services so the durations stay discoverable in one place.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// LocationOracle caps one location classification lookup.
const LocationOracle = 2 * time.Second

// StreamWrite caps a single websocket frame write.
const StreamWrite = 5 * time.Second
