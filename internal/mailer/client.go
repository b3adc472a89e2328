package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/config"
)

// Sender delivers one templated email. Implementations must treat any non-2xx
// response as a failure.
type Sender interface {
	Send(ctx context.Context, templateID string, params map[string]string) error
}

// Client talks to an EmailJS-compatible REST endpoint. It is constructed once
// with the account's public key and injected wherever mail is sent.
type Client struct {
	hc        *http.Client
	baseURL   string
	serviceID string
	publicKey string
}

func New(cfg *config.Config) *Client {
	return &Client{
		hc:        &http.Client{Timeout: 10 * time.Second},
		baseURL:   cfg.MailBaseURL,
		serviceID: cfg.MailServiceID,
		publicKey: cfg.MailPublicKey,
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (c *Client) Send(ctx context.Context, templateID string, params map[string]string) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     templateID,
		UserID:         c.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/api/v1.0/email/send",
		bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email send failed (status=%d): %s", resp.StatusCode, msg)
	}

	return nil
}

var _ Sender = (*Client)(nil)
