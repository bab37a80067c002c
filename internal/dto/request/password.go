package request

type SendOTPRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	OTP   string `json:"otp"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"omitempty,email"`
	OTP             string `json:"otp"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}
