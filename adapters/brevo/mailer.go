package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/internal/errors"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/ports"
)

const defaultBaseURL = "https://api.brevo.com/v3"

// Mailer delivers messages through Brevo's transactional email API.
type Mailer struct {
	apiKey      string
	senderEmail string
	senderName  string
	baseURL     string
	httpClient  *http.Client
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithBaseURL points the mailer at a different API root.
func WithBaseURL(url string) Option {
	return func(m *Mailer) { m.baseURL = url }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(m *Mailer) { m.httpClient = client }
}

// NewMailer creates a Brevo mailer sending on behalf of the given sender.
func NewMailer(apiKey, senderEmail, senderName string, opts ...Option) *Mailer {
	m := &Mailer{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// sendSmtpEmail mirrors Brevo's v3 sendSmtpEmail schema.
type sendSmtpEmail struct {
	Sender      emailAddress   `json:"sender"`
	To          []emailAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent,omitempty"`
	TextContent string         `json:"textContent,omitempty"`
}

// Send posts one transactional email. Non-2xx responses become delivery
// errors carrying the status and response body.
func (m *Mailer) Send(ctx context.Context, to ports.Recipient, msg ports.Message) error {
	payload := sendSmtpEmail{
		Sender:      emailAddress{Email: m.senderEmail, Name: m.senderName},
		To:          []emailAddress{{Email: to.Email}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
		TextContent: msg.Text,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return errors.DeliveryFailed(to.Email, fmt.Errorf("failed to marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/smtp/email", bytes.NewBuffer(jsonData))
	if err != nil {
		return errors.DeliveryFailed(to.Email, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errors.DeliveryFailed(to.Email, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return errors.DeliveryFailed(to.Email, fmt.Errorf("brevo API error (status %d): %s", resp.StatusCode, string(body)))
	}

	log.Printf("[Brevo] Sent email to %s", to.Email)
	return nil
}

var _ ports.Notifier = (*Mailer)(nil)
