// Package controller holds the HTTP middleware wrapped around the API mux:
// request ids and access logs (WithLogger), per-route metrics (WithMetrics)
// and CORS for the web client (WithCORS). PprofMux serves the runtime
// profiles.
package controller
