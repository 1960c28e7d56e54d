package models

import "time"

// StatusSubscribed is the initial status stamped on every accepted lead.
const StatusSubscribed = "subscribed"

// StoreHeader is the store schema row, written exactly once before the
// first record. Downstream imports depend on this column order.
var StoreHeader = []string{
	"timestamp",
	"first_name",
	"email",
	"phone_number",
	"country_code",
	"country",
	"full_phone",
	"source",
	"status",
	"user_agent",
	"ip_address",
}

// SubscribeRequest is the payload posted by the landing page form. The
// simple funnel variant sends only the email; the enriched variant sends
// the full profile.
type SubscribeRequest struct {
	FirstName   string `json:"firstName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	CountryCode string `json:"countryCode"`
	Country     string `json:"country"`
	FullPhone   string `json:"fullPhone"`
}

// RequestMeta carries transport-level details recorded with each lead.
type RequestMeta struct {
	UserAgent  string
	ClientAddr string
}

// SubscriptionRecord is one accepted lead as persisted to the store.
// Records are append-only: never mutated, never deleted.
type SubscriptionRecord struct {
	Timestamp   time.Time
	FirstName   string
	Email       string
	PhoneNumber string
	CountryCode string
	Country     string
	FullPhone   string
	Source      string
	Status      string
	UserAgent   string
	ClientAddr  string
}

// Row returns the record fields in store column order.
func (r *SubscriptionRecord) Row() []string {
	return []string{
		r.Timestamp.Format("2006-01-02 15:04:05"),
		r.FirstName,
		r.Email,
		r.PhoneNumber,
		r.CountryCode,
		r.Country,
		r.FullPhone,
		r.Source,
		r.Status,
		r.UserAgent,
		r.ClientAddr,
	}
}

// SubscribeResult is the success body returned by the intake endpoint.
type SubscribeResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	FirstName string `json:"firstName,omitempty"`
}
