package controller

import (
	"advent/pkg/metrics"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware recording the duration of every request on
// the http.server.request.duration histogram, labelled with the method, the
// route and the status code. route maps a request to a low-cardinality name.
func WithMetrics(next http.Handler, mp metric.MeterProvider, route func(r *http.Request) string) (http.Handler, error) {
	duration, err := mp.Meter("advent/pkg/controller").Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of HTTP server requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create request duration histogram: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		duration.Record(r.Context(), time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.String("http.route", route(r)),
			attribute.String("http.response.status_code", strconv.Itoa(rec.status)),
		))
	}), nil
}
