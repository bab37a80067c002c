package wire

import (
	"sreca-account/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// All forgot-password routes are public by design; the OTP is the proof
// of account ownership.
func wirePassword(r chi.Router, passwordHandler *adaptor.PasswordHandler) {
	r.Post("/api/forgot-password/send-otp/", passwordHandler.SendOTP)
	r.Post("/api/forgot-password/verify-otp/", passwordHandler.VerifyOTP)
	r.Post("/api/forgot-password/reset/", passwordHandler.Reset)
	r.Post("/api/forgot-password/resend-otp/", passwordHandler.ResendOTP)
}
