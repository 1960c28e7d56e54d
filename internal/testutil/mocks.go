package testutil

import (
	"funneld/internal/models"
	"funneld/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockStore implements interfaces.SubscriberStoreInterface in memory.
type MockStore struct {
	mu           sync.Mutex
	Records      []*models.SubscriptionRecord
	AppendErr    error
	RestoreErr   error
	RestoreCalls int
	FilePath     string
}

func (m *MockStore) Append(rec *models.SubscriptionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Records = append(m.Records, rec)
	return nil
}

func (m *MockStore) RowCount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.Records))
}

func (m *MockStore) Restore() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RestoreCalls++
	return m.RestoreErr
}

func (m *MockStore) Path() string {
	return m.FilePath
}

// MockMailer implements mailer.Mailer and records sends.
type MockMailer struct {
	mu      sync.Mutex
	Sent    []SentMail
	SendErr error
}

type SentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *MockMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return m.SendErr
	}
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and counts
// subscription outcomes.
type MockMetrics struct {
	mu        sync.Mutex
	Outcomes  map[string]int
	EmailObs  int
	Requests  int
	CacheHit  int
	CacheMiss int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{Outcomes: make(map[string]int)}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncSubscriptions(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Outcomes[outcome]++
}

func (m *MockMetrics) ObserveEmailSendDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EmailObs++
}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHit++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMiss++
}

// FixedClock implements services.Clock with a settable instant.
type FixedClock struct {
	Instant time.Time
}

func (c *FixedClock) Now() time.Time { return c.Instant }
