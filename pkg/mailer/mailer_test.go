package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMailer(t *testing.T, handler http.HandlerFunc) (Mailer, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m, err := New(Config{
		APIKey:    "test-key",
		APISecret: "test-secret",
		FromEmail: "noreply@example.com",
		FromName:  "Sreca",
		APIURL:    srv.URL,
	}, zap.NewNop())
	require.NoError(t, err)

	return m, srv
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := New(Config{FromEmail: "noreply@example.com"}, zap.NewNop())
	require.Error(t, err)

	_, err = New(Config{APIKey: "k", APISecret: "s"}, zap.NewNop())
	require.Error(t, err)

	_, err = New(Config{APIKey: "k", APISecret: "s", FromEmail: "noreply@example.com"}, zap.NewNop())
	require.NoError(t, err)
}

func TestSendOTPSuccess(t *testing.T) {
	var received sendRequest
	m, _ := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "test-key", user)
		require.Equal(t, "test-secret", pass)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(sendResponse{
			Messages: []messageResult{{Status: "success"}},
		})
	})

	err := m.SendOTP(context.Background(), "amina@example.com", "Amina", "123456")
	require.NoError(t, err)

	require.Len(t, received.Messages, 1)
	msg := received.Messages[0]
	require.Equal(t, "noreply@example.com", msg.From.Email)
	require.Equal(t, "Sreca", msg.From.Name)
	require.Equal(t, []address{{Email: "amina@example.com", Name: "Amina"}}, msg.To)
	require.Equal(t, "Password Reset OTP - Sreca", msg.Subject)
	require.Contains(t, msg.TextPart, "123456")
	require.Contains(t, msg.HTMLPart, "123456")
	require.Contains(t, msg.TextPart, "15 minutes")
}

func TestSendWelcomeSubject(t *testing.T) {
	var received sendRequest
	m, _ := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	})

	err := m.SendWelcome(context.Background(), "amina@example.com", "Amina")
	require.NoError(t, err)
	require.Equal(t, "Welcome to Sreca - Account Created Successfully", received.Messages[0].Subject)
}

func TestSendAcceptsSentStatusVariant(t *testing.T) {
	m, _ := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(sendResponse{
			Messages: []messageResult{{Status: "Sent to queue"}},
		})
	})

	err := m.SendOTP(context.Background(), "amina@example.com", "Amina", "123456")
	require.NoError(t, err)
}

func TestSendAccepts200WithEmptyBody(t *testing.T) {
	m, _ := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	err := m.SendOTP(context.Background(), "amina@example.com", "Amina", "123456")
	require.NoError(t, err)
}

func TestSendRejectsFailedMessageStatus(t *testing.T) {
	m, _ := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(sendResponse{
			Messages: []messageResult{{Status: "error"}},
		})
	})

	err := m.SendOTP(context.Background(), "amina@example.com", "Amina", "123456")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Message status - error")
}

func TestSendExtractsErrorDetails(t *testing.T) {
	m, _ := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(sendResponse{
			Messages: []messageResult{{
				Status: "error",
				Errors: []apiError{{ErrorMessage: "sender not verified"}},
			}},
		})
	})

	err := m.SendOTP(context.Background(), "amina@example.com", "Amina", "123456")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Status 400")
	require.Contains(t, err.Error(), "sender not verified")
}

func TestSendBadRequestWithEmptyBodyGetsHint(t *testing.T) {
	m, _ := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	err := m.SendOTP(context.Background(), "amina@example.com", "Amina", "123456")
	require.Error(t, err)
	require.Contains(t, err.Error(), "400 Bad Request")
	require.Contains(t, err.Error(), "invalid API credentials")
}

func TestSendRejectsMalformedRecipientWithoutAPICall(t *testing.T) {
	calls := 0
	m, _ := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	err := m.SendOTP(context.Background(), "not-an-email", "Amina", "123456")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid recipient email format")
	require.Zero(t, calls)
}

func TestDisplayNameFallsBackToMailbox(t *testing.T) {
	require.Equal(t, "Amina", displayName("amina@example.com", "Amina"))
	require.Equal(t, "amina", displayName("amina@example.com", ""))
	require.Equal(t, "plain", displayName("plain", ""))
}
