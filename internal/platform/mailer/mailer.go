// Package mailer sends transactional mail through a Resend-compatible
// HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"libfinder/internal/platform/upstream"
)

const apiName = "mailer"

var ErrNotConfigured = errors.New("mailer: api key not configured")

type Config struct {
	BaseURL    string
	APIKey     string
	From       string
	MaxRetries int
	Backoff    time.Duration
}

type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Text    string
}

type Client struct {
	transport *upstream.Client
	baseURL   string
	apiKey    string
	from      string
}

func NewClient(cfg Config) *Client {
	return &Client{
		transport: upstream.New(apiName, upstream.Options{
			RPS:        2,
			MaxRetries: cfg.MaxRetries,
			Backoff:    cfg.Backoff,
		}),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		from:    cfg.From,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Send delivers msg and returns the provider's message id.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}
	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.transport.Do(ctx, "emails", req)
	if err != nil {
		return "", err
	}
	if resp.Status < 200 || resp.Status >= 300 {
		return "", fmt.Errorf("mailer: %w: %s", &upstream.StatusError{API: apiName, Status: resp.Status}, truncate(resp.Body, 200))
	}

	var out struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(resp.Body, &out)
	return out.ID, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
