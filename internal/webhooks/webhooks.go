// Package webhooks delivers best-effort workflow events (tool usage,
// signups, plan upgrades) to an external automation endpoint. Delivery
// failures are logged and never propagate to request handling.
package webhooks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// event names understood by the downstream workflow
const (
	EventToolUsed        = "tool_used"
	EventUserSignedUp    = "user_signed_up"
	EventUserUpgradedPro = "user_upgraded_pro"
)

// shared HTTP client for webhook deliveries
var webhookHTTPClient = &http.Client{
	Timeout: 10 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	},
}

// Sender posts events to the configured webhook URL. Whether the
// collaborator is configured is decided once at construction; an
// unconfigured sender is explicit, not a silent no-op discovered per
// call site.
type Sender struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

// creates a sender; an empty URL yields a disabled sender
func NewSender(url string) *Sender {
	return &Sender{
		url:    url,
		client: webhookHTTPClient,
		// outbound events are throttled to protect the automation
		// endpoint during bursts (10 events/second, burst of 5)
		limiter: rate.NewLimiter(10, 5),
	}
}

// reports whether a webhook URL is configured
func (s *Sender) Enabled() bool {
	return s.url != ""
}

// posts one event with its payload; returns an error for the caller to
// log, never to surface
func (s *Sender) Send(ctx context.Context, event string, payload map[string]any) error {
	if !s.Enabled() {
		return nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	body := map[string]any{
		"event":     event,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	for k, v := range payload {
		body[k] = v
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver event %s: %w", event, err)
	}

	defer resp.Body.Close() //nolint:errcheck // best-effort delivery

	if resp.StatusCode >= 300 {
		return fmt.Errorf("deliver event %s: status %d", event, resp.StatusCode)
	}

	return nil
}

// reports a successful content generation
func (s *Sender) ToolUsed(ctx context.Context, toolSlug, userID string) error {
	return s.Send(ctx, EventToolUsed, map[string]any{
		"tool":    toolSlug,
		"user_id": userID,
	})
}

// reports a new user registration
func (s *Sender) UserSignedUp(ctx context.Context, userID, email string) error {
	return s.Send(ctx, EventUserSignedUp, map[string]any{
		"user_id": userID,
		"email":   email,
	})
}

// reports an upgrade to the pro plan
func (s *Sender) UserUpgradedPro(ctx context.Context, userID, email string) error {
	return s.Send(ctx, EventUserUpgradedPro, map[string]any{
		"user_id": userID,
		"email":   email,
		"plan":    "pro",
	})
}
