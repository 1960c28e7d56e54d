package services

import (
	"errors"
	"funneld/internal/models"
	"funneld/internal/providers"
	"funneld/internal/structures"
	"funneld/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceConfig(requireProfile bool) *structures.Config {
	return &structures.Config{
		Mail: structures.MailConfig{
			Subject: "Your free copy is here",
		},
		Funnel: structures.FunnelConfig{
			Source:         "invisible-workforce-landing",
			RequireProfile: requireProfile,
			BookURL:        "https://example.com/book.pdf",
			CommunityURL:   "https://example.com/community",
		},
	}
}

func newTestServiceFull(t *testing.T, requireProfile bool, store *testutil.MockStore, mail *testutil.MockMailer, metrics *testutil.MockMetrics, clock Clock) SubscriptionServiceInterface {
	t.Helper()
	return NewSubscriptionService(serviceConfig(requireProfile), store, mail, metrics, &testutil.MockLogger{}, clock)
}

func newTestService(t *testing.T, requireProfile bool, store *testutil.MockStore, mail *testutil.MockMailer) SubscriptionServiceInterface {
	return newTestServiceFull(t, requireProfile, store, mail, testutil.NewMockMetrics(), NewClock())
}

func newTestServiceWithMetrics(t *testing.T, requireProfile bool, store *testutil.MockStore, mail *testutil.MockMailer, metrics *testutil.MockMetrics) SubscriptionServiceInterface {
	return newTestServiceFull(t, requireProfile, store, mail, metrics, NewClock())
}

func newTestServiceWithClock(t *testing.T, requireProfile bool, store *testutil.MockStore, mail *testutil.MockMailer, clock Clock) SubscriptionServiceInterface {
	return newTestServiceFull(t, requireProfile, store, mail, testutil.NewMockMetrics(), clock)
}

func TestSubscribe_SimpleVariantValidEmail(t *testing.T) {
	store := &testutil.MockStore{}
	mail := &testutil.MockMailer{}
	svc := newTestService(t, false, store, mail)

	result, err := svc.Subscribe(&models.SubscribeRequest{Email: "a@b.com"}, models.RequestMeta{
		UserAgent:  "Mozilla/5.0",
		ClientAddr: "203.0.113.5",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Email sent successfully", result.Message)
	assert.Empty(t, result.FirstName)

	require.Len(t, store.Records, 1)
	rec := store.Records[0]
	assert.Equal(t, "a@b.com", rec.Email)
	assert.Equal(t, models.StatusSubscribed, rec.Status)
	assert.Equal(t, "invisible-workforce-landing", rec.Source)
	assert.Equal(t, "203.0.113.5", rec.ClientAddr)

	require.Len(t, mail.Sent, 1)
	assert.Equal(t, "a@b.com", mail.Sent[0].To)
	assert.Contains(t, mail.Sent[0].Body, "https://example.com/book.pdf")
}

func TestSubscribe_MalformedEmails(t *testing.T) {
	cases := []string{"", "no-at-sign", "missing@domain@", "a@", "@b.com", "a b@c.com"}
	for _, email := range cases {
		store := &testutil.MockStore{}
		svc := newTestService(t, false, store, &testutil.MockMailer{})

		_, err := svc.Subscribe(&models.SubscribeRequest{Email: email}, models.RequestMeta{})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "email %q should be rejected", email)
		assert.Equal(t, "Invalid email address", vErr.Message)
		assert.Empty(t, store.Records, "store must not change for %q", email)
	}
}

func TestSubscribe_EnrichedVariantCollectsAllErrors(t *testing.T) {
	store := &testutil.MockStore{}
	svc := newTestService(t, true, store, &testutil.MockMailer{})

	_, err := svc.Subscribe(&models.SubscribeRequest{}, models.RequestMeta{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "First name is required")
	assert.Contains(t, vErr.Message, "Valid email address is required")
	assert.Contains(t, vErr.Message, "Country selection is required")
	assert.Contains(t, vErr.Message, "Phone number is required")
	assert.Empty(t, store.Records)
}

func TestSubscribe_EnrichedVariantAccepted(t *testing.T) {
	store := &testutil.MockStore{}
	mail := &testutil.MockMailer{}
	svc := newTestService(t, true, store, mail)

	result, err := svc.Subscribe(&models.SubscribeRequest{
		FirstName:   "Ada",
		Email:       "ada@example.com",
		PhoneNumber: "5551234",
		CountryCode: "+1-US",
		Country:     "US",
		FullPhone:   "+15551234",
	}, models.RequestMeta{})

	require.NoError(t, err)
	assert.Equal(t, "Ada", result.FirstName)

	require.Len(t, store.Records, 1)
	assert.Equal(t, "Ada", store.Records[0].FirstName)
	assert.Equal(t, "+15551234", store.Records[0].FullPhone)

	require.Len(t, mail.Sent, 1)
	assert.Contains(t, mail.Sent[0].Body, "Hi Ada!")
}

func TestSubscribe_SanitizesMarkup(t *testing.T) {
	store := &testutil.MockStore{}
	svc := newTestService(t, true, store, &testutil.MockMailer{})

	_, err := svc.Subscribe(&models.SubscribeRequest{
		FirstName:   "<script>alert(1)</script>",
		Email:       "x@y.com",
		PhoneNumber: "123",
		CountryCode: "+1-US",
	}, models.RequestMeta{UserAgent: "<img src=x>"})

	require.NoError(t, err)
	require.Len(t, store.Records, 1)
	assert.NotContains(t, store.Records[0].FirstName, "<script>")
	assert.NotContains(t, store.Records[0].UserAgent, "<img")
}

func TestSubscribe_ApostropheNameRendersOnceInEmail(t *testing.T) {
	store := &testutil.MockStore{}
	mail := &testutil.MockMailer{}
	svc := newTestService(t, true, store, mail)

	_, err := svc.Subscribe(&models.SubscribeRequest{
		FirstName:   "O'Brien",
		Email:       "ob@example.com",
		PhoneNumber: "123",
		CountryCode: "+353-IE",
	}, models.RequestMeta{})

	require.NoError(t, err)
	require.Len(t, mail.Sent, 1)
	// The template escapes on render; a pre-escaped name would arrive
	// double-escaped and display as the literal text O&#39;Brien.
	assert.Contains(t, mail.Sent[0].Body, "Hi O&#39;Brien!")
	assert.NotContains(t, mail.Sent[0].Body, "&amp;#39;")
}

func TestSubscribe_StoreFailureIsFatal(t *testing.T) {
	store := &testutil.MockStore{AppendErr: errors.New("disk full")}
	mail := &testutil.MockMailer{}
	svc := newTestService(t, false, store, mail)

	_, err := svc.Subscribe(&models.SubscribeRequest{Email: "a@b.com"}, models.RequestMeta{})

	var sErr *StoreError
	require.ErrorAs(t, err, &sErr)
	assert.Empty(t, mail.Sent, "no email after a failed append")
}

func TestSubscribe_DeliveryFailureKeepsStoredRecord(t *testing.T) {
	store := &testutil.MockStore{}
	mail := &testutil.MockMailer{SendErr: errors.New("relay refused")}
	svc := newTestService(t, false, store, mail)

	_, err := svc.Subscribe(&models.SubscribeRequest{Email: "a@b.com"}, models.RequestMeta{})

	var dErr *DeliveryError
	require.ErrorAs(t, err, &dErr)
	// No compensating transaction: the row stays even though the caller
	// sees a failure.
	assert.Len(t, store.Records, 1)
}

func TestSubscribe_ResubmissionIsNotDeduplicated(t *testing.T) {
	store := &testutil.MockStore{}
	mail := &testutil.MockMailer{}
	svc := newTestService(t, false, store, mail)

	for i := 0; i < 2; i++ {
		_, err := svc.Subscribe(&models.SubscribeRequest{Email: "same@example.com"}, models.RequestMeta{})
		require.NoError(t, err)
	}

	assert.Len(t, store.Records, 2)
	assert.Len(t, mail.Sent, 2)
}

func TestSubscribe_OutcomeMetrics(t *testing.T) {
	store := &testutil.MockStore{}
	metrics := testutil.NewMockMetrics()
	svc := newTestServiceWithMetrics(t, false, store, &testutil.MockMailer{}, metrics)

	_, _ = svc.Subscribe(&models.SubscribeRequest{Email: "a@b.com"}, models.RequestMeta{})
	_, _ = svc.Subscribe(&models.SubscribeRequest{Email: "bad"}, models.RequestMeta{})

	assert.Equal(t, 1, metrics.Outcomes[providers.OutcomeAccepted])
	assert.Equal(t, 1, metrics.Outcomes[providers.OutcomeInvalid])
}

func TestSubscribe_TimestampFromClock(t *testing.T) {
	store := &testutil.MockStore{}
	instant := time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC)
	svc := newTestServiceWithClock(t, false, store, &testutil.MockMailer{}, &testutil.FixedClock{Instant: instant})

	_, err := svc.Subscribe(&models.SubscribeRequest{Email: "a@b.com"}, models.RequestMeta{})

	require.NoError(t, err)
	require.Len(t, store.Records, 1)
	assert.Equal(t, instant, store.Records[0].Timestamp)
}
