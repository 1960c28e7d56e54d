package providers

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingMetrics struct {
	mu     sync.Mutex
	hits   int
	misses int
}

func (m *countingMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *countingMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *countingMetrics) IncSubscriptions(_ string)                        {}
func (m *countingMetrics) ObserveEmailSendDuration(_ time.Duration)         {}
func (m *countingMetrics) IncCacheHits()                                    { m.mu.Lock(); m.hits++; m.mu.Unlock() }
func (m *countingMetrics) IncCacheMisses()                                  { m.mu.Lock(); m.misses++; m.mu.Unlock() }

func TestMetricsCacheProvider_CountsHitsAndMisses(t *testing.T) {
	metrics := &countingMetrics{}
	inner := NewCacheProvider(cacheConfig(true, 1), silentLogger{})
	c := &MetricsCacheProvider{inner: inner, metrics: metrics}

	_, _ = c.Get("absent")
	c.Set("present", []byte("v"))
	_, _ = c.Get("present")

	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 1, metrics.misses)
}

func TestNewInstrumentedCacheProvider_DisabledSkipsWrapping(t *testing.T) {
	metrics := &countingMetrics{}
	c := NewInstrumentedCacheProvider(cacheConfig(false, 16), silentLogger{}, metrics)

	_, _ = c.Get("anything")

	// noop cache without instrumentation: no phantom misses
	assert.Equal(t, 0, metrics.misses)
}
