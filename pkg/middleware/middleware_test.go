package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func resetGlobalMetricsForTest() {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()
}

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestPrometheusMiddleware_RecordsRequests(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()

	handler := Prometheus(WithRegistry(reg))(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/index", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := metricCounterValue(t, globalMetrics.requestsTotal.WithLabelValues("/index", "GET", "200")); got != 1 {
		t.Errorf("requests_total = %v, want 1", got)
	}
}

func TestPrometheusMiddleware_RecordsErrorStatus(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()

	handler := Prometheus(WithRegistry(reg))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))

	req := httptest.NewRequest(http.MethodGet, "/broken", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got := metricCounterValue(t, globalMetrics.requestsTotal.WithLabelValues("/broken", "GET", "500")); got != 1 {
		t.Errorf("requests_total(500) = %v, want 1", got)
	}
}

func TestRecordRender(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()
	Prometheus(WithRegistry(reg))(okHandler())

	RecordRender("index", 5*time.Millisecond, nil)
	RecordRender("index", 5*time.Millisecond, http.ErrAbortHandler)

	if got := metricCounterValue(t, globalMetrics.rendersTotal.WithLabelValues("index", "success")); got != 1 {
		t.Errorf("renders_total(success) = %v, want 1", got)
	}
	if got := metricCounterValue(t, globalMetrics.rendersTotal.WithLabelValues("index", "error")); got != 1 {
		t.Errorf("renders_total(error) = %v, want 1", got)
	}
}

func TestRecordHelpersWithoutInit(t *testing.T) {
	resetGlobalMetricsForTest()

	// must not panic before Prometheus() ran
	RecordRender("index", time.Millisecond, nil)
	RecordReload()
	SetReloadClients(2)
	RecordDocumentError("E002")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := RequestLogger(logger)(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/logged", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{"method=GET", "path=/logged", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q: %s", want, out)
		}
	}
}

func TestOpenTelemetryMiddleware_PropagatesSpanContext(t *testing.T) {
	var sawSpan bool
	handler := OpenTelemetry(
		WithTracerName("test"),
		WithAttributeExtractor(func(r *http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// noop tracer still yields a span in the context
		span := trace.SpanFromContext(r.Context())
		sawSpan = span != nil
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/traced", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !sawSpan {
		t.Error("handler did not observe a span in the request context")
	}
}

func TestOpenTelemetryMiddleware_FilterSkipsTracing(t *testing.T) {
	nextCalled := false
	handler := OpenTelemetry(
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !nextCalled {
		t.Error("next handler was not called")
	}
}
