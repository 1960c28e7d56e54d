package services

import (
	"funneld/internal/mailer"
	"funneld/internal/models"
	"funneld/internal/providers"
	"funneld/internal/store/interfaces"
	"funneld/internal/structures"
	"html"
	"strings"
	"time"

	"github.com/gookit/validate"
)

type SubscriptionServiceInterface interface {
	Subscribe(req *models.SubscribeRequest, meta models.RequestMeta) (*models.SubscribeResult, error)
}

type SubscriptionService struct {
	conf    *structures.Config
	store   interfaces.SubscriberStoreInterface
	mailer  mailer.Mailer
	metrics providers.MetricsProviderInterface
	logger  providers.Logger
	clock   Clock
}

func NewSubscriptionService(
	conf *structures.Config,
	store interfaces.SubscriberStoreInterface,
	m mailer.Mailer,
	metrics providers.MetricsProviderInterface,
	logger providers.Logger,
	clock Clock,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		conf:    conf,
		store:   store,
		mailer:  m,
		metrics: metrics,
		logger:  logger,
		clock:   clock,
	}
}

// sanitizeField trims and neutralizes markup so values are safe to store
// and to echo back in responses or email content.
func sanitizeField(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// validateRequest collects every failure rather than stopping at the
// first, so the page can show one aggregated message.
func (ss *SubscriptionService) validateRequest(req *models.SubscribeRequest) []string {
	email := strings.TrimSpace(req.Email)

	if !ss.conf.Funnel.RequireProfile {
		if email == "" || !validate.IsEmail(email) {
			return []string{"Invalid email address"}
		}
		return nil
	}

	var problems []string
	if strings.TrimSpace(req.FirstName) == "" {
		problems = append(problems, "First name is required")
	}
	if email == "" || !validate.IsEmail(email) {
		problems = append(problems, "Valid email address is required")
	}
	if strings.TrimSpace(req.CountryCode) == "" {
		problems = append(problems, "Country selection is required")
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		problems = append(problems, "Phone number is required")
	}
	return problems
}

// Subscribe validates a submission, appends it to the store and sends the
// welcome email, in that order. A delivery failure after a successful
// append is reported as a full failure even though the record persists;
// the row is never rolled back.
func (ss *SubscriptionService) Subscribe(req *models.SubscribeRequest, meta models.RequestMeta) (*models.SubscribeResult, error) {
	if problems := ss.validateRequest(req); len(problems) > 0 {
		ss.metrics.IncSubscriptions(providers.OutcomeInvalid)
		return nil, &ValidationError{Message: strings.Join(problems, ", ")}
	}

	rec := &models.SubscriptionRecord{
		Timestamp:   ss.clock.Now(),
		FirstName:   sanitizeField(req.FirstName),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: sanitizeField(req.PhoneNumber),
		CountryCode: sanitizeField(req.CountryCode),
		Country:     sanitizeField(req.Country),
		FullPhone:   sanitizeField(req.FullPhone),
		Source:      ss.conf.Funnel.Source,
		Status:      models.StatusSubscribed,
		UserAgent:   sanitizeField(meta.UserAgent),
		ClientAddr:  meta.ClientAddr,
	}

	if err := ss.store.Append(rec); err != nil {
		ss.metrics.IncSubscriptions(providers.OutcomeStoreError)
		return nil, &StoreError{Err: err}
	}

	// The template escapes on render, so it gets the raw trimmed name;
	// the pre-escaped form is only for the store and the echoed response.
	body, err := mailer.RenderWelcome(strings.TrimSpace(req.FirstName), ss.conf.Funnel.BookURL, ss.conf.Funnel.CommunityURL)
	if err != nil {
		ss.metrics.IncSubscriptions(providers.OutcomeDeliveryError)
		return nil, &DeliveryError{Err: err}
	}

	start := time.Now()
	if err := ss.mailer.Send(rec.Email, ss.conf.Mail.Subject, body); err != nil {
		ss.metrics.IncSubscriptions(providers.OutcomeDeliveryError)
		return nil, &DeliveryError{Err: err}
	}
	ss.metrics.ObserveEmailSendDuration(time.Since(start))

	ss.metrics.IncSubscriptions(providers.OutcomeAccepted)
	ss.logger.Infof(providers.TypePost, "Subscription accepted for %s", rec.Email)

	return &models.SubscribeResult{
		Success:   true,
		Message:   "Email sent successfully",
		FirstName: rec.FirstName,
	}, nil
}
