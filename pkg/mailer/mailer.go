package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultAPIURL = "https://api.mailjet.com/v3.1/send"

// Config captures the provider credentials and sender identity. It is
// loaded from configuration at startup and injected here at construction;
// there is no ambient shared provider state.
type Config struct {
	APIKey    string
	APISecret string
	FromEmail string
	FromName  string
	APIURL    string
	Timeout   time.Duration
}

// Mailer dispatches transactional email. Every failure comes back as an
// error carrying a human-readable diagnostic; nothing panics out of this
// package.
type Mailer interface {
	SendOTP(ctx context.Context, to, name, code string) error
	SendWelcome(ctx context.Context, to, name string) error
}

type mailjetClient struct {
	cfg    Config
	client *http.Client
	log    *zap.Logger
}

// New builds a Mailjet v3.1 client.
func New(cfg Config, log *zap.Logger) (Mailer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" || strings.TrimSpace(cfg.APISecret) == "" {
		return nil, errors.New("mailjet: API credentials are required")
	}
	if strings.TrimSpace(cfg.FromEmail) == "" {
		return nil, errors.New("mailjet: sender email is required")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &mailjetClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.With(zap.String("component", "mailer")),
	}, nil
}

// ==================== WIRE TYPES ====================

type address struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type message struct {
	From     address   `json:"From"`
	To       []address `json:"To"`
	Subject  string    `json:"Subject"`
	TextPart string    `json:"TextPart"`
	HTMLPart string    `json:"HTMLPart"`
}

type sendRequest struct {
	Messages []message `json:"Messages"`
}

type apiError struct {
	ErrorIdentifier string `json:"ErrorIdentifier"`
	ErrorCode       string `json:"ErrorCode"`
	StatusCode      int    `json:"StatusCode"`
	ErrorMessage    string `json:"ErrorMessage"`
}

type messageResult struct {
	Status string     `json:"Status"`
	Errors []apiError `json:"Errors"`
}

// sendResponse is the documented v3.1 response schema. Both the success
// and error bodies parse into it.
type sendResponse struct {
	Messages     []messageResult `json:"Messages"`
	ErrorMessage string          `json:"ErrorMessage"`
	Errors       []apiError      `json:"Errors"`
}

// ==================== SENDING ====================

func (m *mailjetClient) SendOTP(ctx context.Context, to, name, code string) error {
	name = displayName(to, name)

	text, html, err := renderOTP(name, code)
	if err != nil {
		return fmt.Errorf("render OTP email: %w", err)
	}

	return m.send(ctx, to, name, "Password Reset OTP - Sreca", text, html)
}

func (m *mailjetClient) SendWelcome(ctx context.Context, to, name string) error {
	name = displayName(to, name)

	text, html, err := renderWelcome(name, to)
	if err != nil {
		return fmt.Errorf("render welcome email: %w", err)
	}

	return m.send(ctx, to, name, "Welcome to Sreca - Account Created Successfully", text, html)
}

func (m *mailjetClient) send(ctx context.Context, to, toName, subject, text, html string) error {
	// Reject malformed addresses before touching the provider.
	if _, err := mail.ParseAddress(to); err != nil {
		return fmt.Errorf("invalid recipient email format: %s", to)
	}
	if _, err := mail.ParseAddress(m.cfg.FromEmail); err != nil {
		return fmt.Errorf("invalid sender email format in settings: %s", m.cfg.FromEmail)
	}

	payload := sendRequest{
		Messages: []message{{
			From:     address{Email: m.cfg.FromEmail, Name: m.cfg.FromName},
			To:       []address{{Email: to, Name: toName}},
			Subject:  subject,
			TextPart: text,
			HTMLPart: html,
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode mailjet payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mailjet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(m.cfg.APIKey, m.cfg.APISecret)

	resp, err := m.client.Do(req)
	if err != nil {
		m.log.Error("Failed to reach Mailjet API", zap.Error(err), zap.String("to", to))
		return fmt.Errorf("failed to connect to Mailjet API: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		respBody = nil
	}

	if resp.StatusCode == http.StatusOK {
		return m.interpretOK(to, respBody)
	}

	diag := m.diagnostic(resp.StatusCode, respBody)
	m.log.Error("Mailjet send failed",
		zap.Int("status", resp.StatusCode),
		zap.String("to", to),
		zap.String("diagnostic", diag),
	)
	return errors.New(diag)
}

// interpretOK decides success for an HTTP 200. An unparseable or empty
// body counts as success (the documented "200 with empty body" case);
// otherwise the first message's status must be "success" or contain
// "Sent".
func (m *mailjetClient) interpretOK(to string, body []byte) error {
	if len(bytes.TrimSpace(body)) == 0 {
		m.log.Info("Email sent (status 200, empty body)", zap.String("to", to))
		return nil
	}

	var parsed sendResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		m.log.Warn("Could not parse Mailjet response but status is 200",
			zap.Error(err), zap.String("to", to))
		return nil
	}

	if len(parsed.Messages) == 0 {
		m.log.Info("Email sent (status 200, no message results)", zap.String("to", to))
		return nil
	}

	status := parsed.Messages[0].Status
	if status == "success" || strings.Contains(status, "Sent") {
		m.log.Info("Email sent", zap.String("to", to))
		return nil
	}

	return fmt.Errorf("Mailjet API: Message status - %s", status)
}

// diagnostic extracts a human-readable message from a non-200 response.
func (m *mailjetClient) diagnostic(status int, body []byte) string {
	var details []string

	var parsed sendResponse
	if len(bytes.TrimSpace(body)) > 0 && json.Unmarshal(body, &parsed) == nil {
		if parsed.ErrorMessage != "" {
			details = append(details, parsed.ErrorMessage)
		}
		for _, e := range parsed.Errors {
			if e.ErrorMessage != "" {
				details = append(details, e.ErrorMessage)
			}
		}
		for _, msg := range parsed.Messages {
			for _, e := range msg.Errors {
				if e.ErrorMessage != "" {
					details = append(details, e.ErrorMessage)
				}
			}
		}
	}

	if len(details) > 0 {
		return fmt.Sprintf("Mailjet API error (Status %d): %s", status, strings.Join(details, " | "))
	}

	if status == http.StatusBadRequest {
		return "Mailjet API error (400 Bad Request). Common causes: invalid API credentials, unverified sender email, or invalid email format."
	}

	return fmt.Sprintf("Mailjet API error: Status %d - invalid request. Please check API credentials and email format.", status)
}

// displayName falls back to the mailbox part of the address.
func displayName(email, name string) string {
	if name != "" {
		return name
	}
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
