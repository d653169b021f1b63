// Package controller contains HTTP middlewares and helper handlers used by the
// preview server.
//
// Provided middlewares:
//   - WithCORS: Adds read-only CORS headers and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Records request durations on an OpenTelemetry histogram.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers under /debug/pprof/.
//   - WriteJSON / WriteError: Write JSON bodies and map semantic errors to status codes.
package controller
