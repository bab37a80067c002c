package adaptor

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"sreca-account/internal/dto/request"
	"sreca-account/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Service stubs with pluggable behaviour per test.

type stubAuthService struct {
	signupFn func(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	loginFn  func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	logoutFn func(ctx context.Context, token string) error
}

func (s *stubAuthService) Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	return s.signupFn(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

type stubPasswordService struct {
	sendFn   func(ctx context.Context, email string) (string, error)
	resendFn func(ctx context.Context, email string) (string, error)
	verifyFn func(ctx context.Context, req *request.VerifyOTPRequest) (string, error)
	resetFn  func(ctx context.Context, req *request.ResetPasswordRequest) error
}

func (s *stubPasswordService) SendOTP(ctx context.Context, email string) (string, error) {
	return s.sendFn(ctx, email)
}

func (s *stubPasswordService) ResendOTP(ctx context.Context, email string) (string, error) {
	return s.resendFn(ctx, email)
}

func (s *stubPasswordService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (string, error) {
	return s.verifyFn(ctx, req)
}

func (s *stubPasswordService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	return s.resetFn(ctx, req)
}

type stubProfileService struct {
	getFn    func(ctx context.Context, userID uuid.UUID, baseURL string) (*response.ProfileResponse, error)
	updateFn func(ctx context.Context, authUserID uuid.UUID, req *request.ProfileUpdateRequest, baseURL string) (*response.ProfileResponse, error)
}

func (s *stubProfileService) GetProfile(ctx context.Context, userID uuid.UUID, baseURL string) (*response.ProfileResponse, error) {
	return s.getFn(ctx, userID, baseURL)
}

func (s *stubProfileService) UpdateProfile(ctx context.Context, authUserID uuid.UUID, req *request.ProfileUpdateRequest, baseURL string) (*response.ProfileResponse, error) {
	return s.updateFn(ctx, authUserID, req, baseURL)
}

// envelope mirrors the JSON response wrapper for assertions.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
