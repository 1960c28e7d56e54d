package providers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMetrics struct {
	mu        sync.Mutex
	requests  []requestObservation
	durations []string
}

type requestObservation struct {
	endpoint string
	status   int
}

func (m *recordingMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, requestObservation{endpoint, status})
}

func (m *recordingMetrics) ObserveRequestDuration(endpoint string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations = append(m.durations, endpoint)
}

func (m *recordingMetrics) IncSubscriptions(_ string)                {}
func (m *recordingMetrics) ObserveEmailSendDuration(_ time.Duration) {}
func (m *recordingMetrics) IncCacheHits()                            {}
func (m *recordingMetrics) IncCacheMisses()                          {}

func TestMetricsMiddleware_RecordsStatusAndDuration(t *testing.T) {
	metrics := &recordingMetrics{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	handler := MetricsMiddleware(metrics, next)
	req := httptest.NewRequest(http.MethodPost, "/subscribe", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Len(t, metrics.requests, 1)
	assert.Equal(t, "/subscribe", metrics.requests[0].endpoint)
	assert.Equal(t, http.StatusBadRequest, metrics.requests[0].status)
	assert.Equal(t, []string{"/subscribe"}, metrics.durations)
}

func TestMetricsMiddleware_DefaultsTo200(t *testing.T) {
	metrics := &recordingMetrics{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit 200"))
	})

	handler := MetricsMiddleware(metrics, next)
	req := httptest.NewRequest(http.MethodGet, "/timer", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Len(t, metrics.requests, 1)
	assert.Equal(t, http.StatusOK, metrics.requests[0].status)
}

func TestHttpStatusBucket(t *testing.T) {
	assert.Equal(t, "2xx", httpStatusBucket(200))
	assert.Equal(t, "4xx", httpStatusBucket(405))
	assert.Equal(t, "5xx", httpStatusBucket(500))
}
