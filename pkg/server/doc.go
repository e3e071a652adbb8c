// Package server implements Graft's preview server.
//
// Each request loads a document from the configured source, runs a
// server-side hydration pass over it with the configured rule registry, and
// serves the hydrated result. A websocket endpoint pushes reload events when
// watched directories change, so a browser tab can re-request the page.
//
// Routes:
//
//	GET /metrics   Prometheus metrics
//	GET /ws        reload event stream (websocket)
//	GET /*         hydrated document
package server
