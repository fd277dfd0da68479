package webhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"vaccine-tracker/internal/domain/reminders"
	"vaccine-tracker/internal/platform/httpclient"
)

const EventHeader = "X-Vaxtrack-Event"

// Notifier hace POST de cada notificación como JSON a una URL fija.
// Un 5xx o 429 se reintenta una vez tras RetryDelay.
type Notifier struct {
	url        string
	client     *httpclient.Client
	RetryDelay time.Duration
}

func New(url string, client *httpclient.Client) (*Notifier, error) {
	if err := httpclient.ValidateURL(url); err != nil {
		return nil, fmt.Errorf("webhook: %w", err)
	}
	if client == nil {
		client = httpclient.New(httpclient.DefaultTimeout)
	}
	return &Notifier{
		url:        url,
		client:     client,
		RetryDelay: 500 * time.Millisecond,
	}, nil
}

func (n *Notifier) Notify(ctx context.Context, nt reminders.Notification) error {
	err := n.post(ctx, nt)

	var httpErr *httpclient.HTTPError
	if err == nil || !errors.As(err, &httpErr) || !httpErr.Retryable() {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(n.RetryDelay):
	}
	return n.post(ctx, nt)
}

func (n *Notifier) post(ctx context.Context, nt reminders.Notification) error {
	return n.client.DoJSON(ctx, http.MethodPost, n.url, map[string]string{
		EventHeader: "reminder.fired",
	}, nt, nil)
}
