package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/homedesigns/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const defaultWebhookTimeout = 5 * time.Second

// Envelope is the JSON body posted to the webhook.
type Envelope struct {
	ID          string        `json:"id"`
	SubmittedAt time.Time     `json:"submittedAt"`
	Record      domain.Record `json:"record"`
}

// WebhookOpts configures a Webhook sink.
type WebhookOpts struct {
	URL     string
	Timeout time.Duration
	Retries int
	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string
}

// Webhook posts each record to an HTTP endpoint.
type Webhook struct {
	httpClient *resty.Client
	url        string
	now        func() time.Time
	newID      func() string
}

func NewWebhook(opts WebhookOpts) *Webhook {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}
	w := &Webhook{
		url:   opts.URL,
		now:   opts.Now,
		newID: opts.NewID,
	}
	if w.now == nil {
		w.now = func() time.Time { return time.Now().UTC() }
	}
	if w.newID == nil {
		w.newID = func() string { return uuid.New().String() }
	}
	w.httpClient = resty.New().
		SetTimeout(timeout).
		SetRetryCount(opts.Retries).
		SetHeaders(map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
			"User-Agent":   "homedesigns-onboarding",
		})
	return w
}

func (w *Webhook) Emit(ctx context.Context, rec domain.Record) error {
	env := Envelope{
		ID:          w.newID(),
		SubmittedAt: w.now(),
		Record:      rec,
	}
	resp, err := w.httpClient.NewRequest().
		SetContext(ctx).
		SetBody(env).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("post classification: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("post classification: unexpected status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
