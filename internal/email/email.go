// Package email delivers contact form notifications.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Sender sends one HTML email.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// LogSender logs emails instead of sending them. Used in development.
type LogSender struct {
	senderAddress string
	logger        *slog.Logger
}

// Send implements Sender.
func (s *LogSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	s.logger.InfoContext(ctx, "Email sent (logged)",
		"from", s.senderAddress,
		"to", to,
		"subject", subject,
		"body", htmlBody,
	)
	return nil
}

const resendEndpoint = "https://api.resend.com/emails"

// ResendSender sends emails through the Resend API.
type ResendSender struct {
	apiKey        string
	senderAddress string
	endpoint      string
	httpClient    *http.Client
	logger        *slog.Logger
}

type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send implements Sender.
func (s *ResendSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	sender := s.senderAddress
	if sender == "" {
		sender = "Sitefront <onboarding@resend.dev>"
	}

	body, err := json.Marshal(resendPayload{From: sender, To: to, Subject: subject, HTML: htmlBody})
	if err != nil {
		return fmt.Errorf("failed to marshal resend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend API returned an error: status %d", resp.StatusCode)
	}

	s.logger.InfoContext(ctx, "Sent email via Resend", "to", to, "subject", subject)
	return nil
}

func newResendSender(apiKey, sender string, logger *slog.Logger) *ResendSender {
	return &ResendSender{
		apiKey:        apiKey,
		senderAddress: sender,
		endpoint:      resendEndpoint,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		logger:        logger,
	}
}
