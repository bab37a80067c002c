package usecase

import (
	"context"
	"fmt"
	"time"

	"sreca-account/internal/data/entity"
	"sreca-account/internal/data/repository"
	"sreca-account/internal/dto/request"
	"sreca-account/pkg/mailer"
	"sreca-account/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Messages shared by send and resend so that a registered and an
// unregistered email are indistinguishable to the caller.
const otpNeutralMessage = "If the email exists, an OTP has been sent."

type PasswordService interface {
	SendOTP(ctx context.Context, email string) (string, error)
	ResendOTP(ctx context.Context, email string) (string, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (string, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type passwordService struct {
	repo   *repository.Repository
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewPasswordService(
	repo *repository.Repository,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) PasswordService {
	return &passwordService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log,
	}
}

func (s *passwordService) SendOTP(ctx context.Context, email string) (string, error) {
	return s.issueOTP(ctx, email, "OTP sent to your email address")
}

// ResendOTP is the same insert-per-issuance flow; older codes stay in
// place and the newest one wins at verification time.
func (s *passwordService) ResendOTP(ctx context.Context, email string) (string, error) {
	return s.issueOTP(ctx, email, "New OTP sent to your email address")
}

func (s *passwordService) issueOTP(ctx context.Context, email, successMessage string) (string, error) {
	// 1. Validate input
	email = utils.NormalizeEmail(email)
	if email == "" {
		return "", fmt.Errorf("Email is required")
	}

	// 2. Find user. Unknown email gets the neutral success message and
	// no OTP row: account enumeration via this endpoint must not work.
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for OTP", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("failed to find user")
	}
	if user == nil {
		return otpNeutralMessage, nil
	}

	// 3. Generate and store a fresh code
	length := s.config.OTP.Length
	if length == 0 {
		length = 6
	}
	expiryMinutes := s.config.OTP.ExpiryMinutes
	if expiryMinutes == 0 {
		expiryMinutes = 15
	}

	code := utils.GenerateOTP(length)
	now := time.Now()

	otp := &entity.PasswordResetOTP{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:     user.ID,
		Email:      email,
		Code:       code,
		IsVerified: false,
		ExpiresAt:  now.Add(time.Duration(expiryMinutes) * time.Minute),
	}

	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		s.log.Error("Failed to save OTP", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("failed to generate OTP")
	}

	// 4. Dispatch. A provider failure surfaces to the caller with the
	// provider's diagnostic; the user retries via resend.
	if err := s.mail.SendOTP(ctx, email, user.Name, code); err != nil {
		s.log.Error("Failed to send OTP email", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("failed to send email: %s", err.Error())
	}

	s.log.Info("OTP issued",
		zap.String("email", email),
		zap.Time("expires_at", otp.ExpiresAt))

	return successMessage, nil
}

func (s *passwordService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (string, error) {
	// 1. Validate input
	email := utils.NormalizeEmail(req.Email)
	code := req.OTP
	if email == "" || code == "" {
		return "", fmt.Errorf("Email and OTP are required")
	}
	if len(code) != 6 {
		return "", fmt.Errorf("OTP must be 6 digits")
	}

	// 2. Newest unverified row for this email+code
	otp, err := s.repo.OTP.FindLatestUnverified(ctx, email, code)
	if err != nil {
		s.log.Error("Failed to find OTP", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("failed to verify OTP")
	}
	if otp == nil {
		return "", fmt.Errorf("Invalid or expired OTP")
	}

	// 3. Lazy expiry check; distinct message from the unknown-code case
	if otp.IsExpired(time.Now()) {
		return "", fmt.Errorf("OTP has expired. Please request a new one.")
	}

	// 4. Flip to verified
	if err := s.repo.OTP.MarkVerified(ctx, otp.ID); err != nil {
		s.log.Error("Failed to mark OTP as verified", zap.Error(err), zap.String("otp_id", otp.ID.String()))
		return "", fmt.Errorf("failed to verify OTP")
	}

	s.log.Info("OTP verified", zap.String("email", email))

	// The row id is the opaque token for the reset step. It is not
	// independently validated there; reset matches on email+otp+verified.
	return otp.ID.String(), nil
}

func (s *passwordService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	// 1. Validate input, same rules and ordering as signup
	email := utils.NormalizeEmail(req.Email)
	if email == "" || req.OTP == "" || req.Password == "" || req.ConfirmPassword == "" {
		return fmt.Errorf("All fields are required")
	}
	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("Passwords do not match")
	}
	if len(req.Password) < 8 {
		return fmt.Errorf("Password must be at least 8 characters long")
	}

	// 2. Newest verified row for this email+code
	otp, err := s.repo.OTP.FindLatestVerified(ctx, email, req.OTP)
	if err != nil {
		s.log.Error("Failed to find verified OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to reset password")
	}
	if otp == nil {
		return fmt.Errorf("Invalid OTP or OTP not verified")
	}

	// 3. Re-check expiry even though verification already passed: the
	// code may have expired between the two requests.
	if otp.IsExpired(time.Now()) {
		return fmt.Errorf("OTP has expired. Please start the process again.")
	}

	// 4. Set the new password on the owning user
	user, err := s.repo.User.FindByID(ctx, otp.UserID)
	if err != nil || user == nil {
		s.log.Error("Owning user not found for OTP", zap.Error(err), zap.String("user_id", otp.UserID.String()))
		return fmt.Errorf("user not found")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to reset password")
	}

	// 5. Retire every outstanding code for this user+email
	if err := s.repo.OTP.MarkAllVerified(ctx, user.ID, email); err != nil {
		s.log.Warn("Failed to retire outstanding OTPs", zap.Error(err), zap.String("email", email))
		// Password already changed; not fatal
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}
