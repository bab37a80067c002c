package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"sreca-account/internal/dto/request"
	"sreca-account/internal/usecase"
	"sreca-account/pkg/utils"

	"go.uber.org/zap"
)

type PasswordHandler struct {
	service usecase.PasswordService
	log     *zap.Logger
}

func NewPasswordHandler(service usecase.PasswordService, log *zap.Logger) *PasswordHandler {
	return &PasswordHandler{
		service: service,
		log:     log,
	}
}

// SendOTP handles POST /api/forgot-password/send-otp/
func (h *PasswordHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid JSON data", nil)
		return
	}

	req.Email = utils.NormalizeEmail(req.Email)
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	message, err := h.service.SendOTP(r.Context(), req.Email)
	if err != nil {
		h.handleServiceError(w, err, "send OTP")
		return
	}

	utils.ResponseSuccess(w, message, nil)
}

// ResendOTP handles POST /api/forgot-password/resend-otp/
func (h *PasswordHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid JSON data", nil)
		return
	}

	req.Email = utils.NormalizeEmail(req.Email)
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	message, err := h.service.ResendOTP(r.Context(), req.Email)
	if err != nil {
		h.handleServiceError(w, err, "resend OTP")
		return
	}

	utils.ResponseSuccess(w, message, nil)
}

// VerifyOTP handles POST /api/forgot-password/verify-otp/
func (h *PasswordHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid JSON data", nil)
		return
	}

	req.Email = utils.NormalizeEmail(req.Email)
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	token, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "verify OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP verified successfully", map[string]string{"token": token})
}

// Reset handles POST /api/forgot-password/reset/
func (h *PasswordHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid JSON data", nil)
		return
	}

	req.Email = utils.NormalizeEmail(req.Email)
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successfully", nil)
}

func (h *PasswordHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "failed to send email"):
		// Provider diagnostics surface verbatim with a 500
		h.log.Error(operation+" failed - email delivery", zap.Error(err))
		utils.ResponseInternalError(w, errMsg)

	// A dangling OTP whose owner vanished counts as a rejected reset,
	// not a missing resource: every reset failure is 400-class.
	case strings.Contains(errMsg, "required"),
		strings.Contains(errMsg, "6 digits"),
		strings.Contains(errMsg, "do not match"),
		strings.Contains(errMsg, "at least 8 characters"),
		strings.Contains(errMsg, "Invalid or expired"),
		strings.Contains(errMsg, "has expired"),
		strings.Contains(errMsg, "not verified"),
		strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
