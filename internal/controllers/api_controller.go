package controllers

import (
	"errors"
	"funneld/internal/models"
	"funneld/internal/providers"
	"funneld/internal/services"
	"net"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger        providers.Logger
	subscriptions services.SubscriptionServiceInterface
	stats         services.StatsServiceInterface
	cache         providers.CacheProviderInterface
	clock         services.Clock
}

func NewApiController(logger providers.Logger, subscriptions services.SubscriptionServiceInterface, stats services.StatsServiceInterface, cache providers.CacheProviderInterface, clock services.Clock) *ApiController {
	return &ApiController{
		logger:        logger,
		subscriptions: subscriptions,
		stats:         stats,
		cache:         cache,
		clock:         clock,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	gson, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// clientAddr prefers the first forwarded hop so records stay useful
// behind a reverse proxy.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// decodePayload reads the submission from a JSON body, or from form
// fields as a fallback. A body that fails to parse is treated as all
// fields missing so it surfaces as a validation error, not a 500.
func decodePayload(r *http.Request) *models.SubscribeRequest {
	var payload models.SubscribeRequest

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			return &models.SubscribeRequest{}
		}
		return &models.SubscribeRequest{
			FirstName:   r.PostFormValue("firstName"),
			Email:       r.PostFormValue("email"),
			PhoneNumber: r.PostFormValue("phoneNumber"),
			CountryCode: r.PostFormValue("countryCode"),
			Country:     r.PostFormValue("country"),
			FullPhone:   r.PostFormValue("fullPhone"),
		}
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return &models.SubscribeRequest{}
	}
	return &payload
}

func (ac *ApiController) Subscribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	payload := decodePayload(r)
	meta := models.RequestMeta{
		UserAgent:  r.UserAgent(),
		ClientAddr: clientAddr(r),
	}

	result, err := ac.subscriptions.Subscribe(payload, meta)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Message)
			return
		}
		ac.logger.Errorf(providers.TypePost, "Subscription failed: %s", err)
		writeError(w, http.StatusInternalServerError, "Failed to process subscription: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Timer serves the countdown/engagement snapshot. Snapshots are cached
// per second, keyed off the same clock the snapshot is computed from.
func (ac *ApiController) Timer(w http.ResponseWriter, r *http.Request) {
	cacheKey := "timer:" + strconv.FormatInt(ac.clock.Now().Unix(), 10)

	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	snapshot := ac.stats.Snapshot()
	gson, err := json.Marshal(snapshot)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}
