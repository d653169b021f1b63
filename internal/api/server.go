// Package api configures and exposes the preview HTTP server: the generated
// blog, the JSON reports, a small JSON API over the solver registry, metrics
// and profiling endpoints.
package api

import (
	"advent/internal/benchmark"
	"advent/internal/config"
	"advent/internal/solution"
	"advent/pkg/controller"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/metric"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string

	// BlogDir is the generated blog served at /.
	BlogDir string
	// ReportDir holds the JSON reports served at /reports/.
	ReportDir string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		BlogDir:           cfg.Blog.OutputDir,
		ReportDir:         cfg.Report.Dir,
	}
}

// Deps are the collaborators of the server.
type Deps struct {
	// Registry lists the runnable days.
	Registry *solution.Registry
	// Benchmark provides inputs, answers and telemetry for on-demand runs.
	Benchmark benchmark.Deps
	// Gatherer is exposed on the metrics path.
	Gatherer prometheus.Gatherer
	// MeterProvider records request metrics.
	MeterProvider metric.MeterProvider
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - the blog at / and the JSON reports at /reports/
// - the registry API at /api/years and /api/run
// - Prometheus metrics endpoint (MetricsPath)
// - pprof endpoints for profiling
// It also wraps the mux with metrics, CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	// api
	h := &registryHandler{registry: deps.Registry, bench: deps.Benchmark}
	mux.HandleFunc("GET /api/years", h.years)
	mux.HandleFunc("GET /api/run", h.run)

	// static output
	mux.Handle("/reports/", http.StripPrefix("/reports/", http.FileServer(http.Dir(opts.ReportDir))))
	mux.Handle("/", http.FileServer(http.Dir(opts.BlogDir)))

	// pprof
	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	handler, err := controller.WithMetrics(mux, deps.MeterProvider, route(opts.MetricsPath))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}

	// cors
	handler = controller.WithCORS(handler)

	// logger
	handler = controller.WithLogger(handler, opts.MetricsPath)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"UNAVAILABLE","message":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func route(metricsPath string) func(r *http.Request) string {
	return func(r *http.Request) string {
		p := r.URL.Path
		switch {
		case p == metricsPath, p == "/api/years", p == "/api/run":
			return p
		case strings.HasPrefix(p, "/reports/"):
			return "/reports/"
		case strings.HasPrefix(p, controller.PprofPrefix):
			return controller.PprofPrefix
		default:
			return "/"
		}
	}
}
