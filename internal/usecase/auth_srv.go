package usecase

import (
	"context"
	"fmt"
	"time"

	"sreca-account/internal/data/entity"
	"sreca-account/internal/data/repository"
	"sreca-account/internal/dto/request"
	"sreca-account/internal/dto/response"
	"sreca-account/pkg/mailer"
	"sreca-account/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log,
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	// 1. Validate input (order and messages are part of the API contract)
	email := utils.NormalizeEmail(req.Email)
	if req.Name == "" || email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, fmt.Errorf("All fields are required")
	}
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("Passwords do not match")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("Password must be at least 8 characters long")
	}

	// 2. Check email not already registered
	existingUser, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("User with this email already exists")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create user
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 5. Welcome email: failure is logged, never fatal for registration
	if err := s.mail.SendWelcome(ctx, user.Email, user.Name); err != nil {
		s.log.Warn("Failed to send confirmation email",
			zap.Error(err), zap.String("email", user.Email))
	}

	// 6. Issue session
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after signup",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		// Continue without session
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return response.AuthToResponse(user, session), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	email := utils.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("Email and password are required")
	}

	// 2. Find user; the not-found and wrong-password messages are
	// identical so the response never reveals which field was wrong
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", email))
		return nil, fmt.Errorf("Invalid email or password")
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("Invalid email or password")
	}

	// 4. Check account active
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("Your account has been deactivated")
	}

	// 5. Issue session
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return response.AuthToResponse(user, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour
	if expiry == 0 {
		expiry = 24 * time.Hour
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(expiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
