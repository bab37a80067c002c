package usecase

import (
	"context"
	"fmt"
	"time"

	"sreca-account/internal/data/entity"
	"sreca-account/internal/data/repository"
	"sreca-account/internal/dto/request"
	"sreca-account/internal/dto/response"
	"sreca-account/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID, baseURL string) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, authUserID uuid.UUID, req *request.ProfileUpdateRequest, baseURL string) (*response.ProfileResponse, error)
}

type profileService struct {
	repo  *repository.Repository
	store storage.Store
	log   *zap.Logger
}

func NewProfileService(
	repo *repository.Repository,
	store storage.Store,
	log *zap.Logger,
) ProfileService {
	return &profileService{
		repo:  repo,
		store: store,
		log:   log,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID, baseURL string) (*response.ProfileResponse, error) {
	// 1. Find user
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("User not found")
	}

	// 2. Get or create the profile
	profile, err := s.getOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return response.ProfileToResponse(profile, user, baseURL), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, authUserID uuid.UUID, req *request.ProfileUpdateRequest, baseURL string) (*response.ProfileResponse, error) {
	// 1. Resolve the target user
	targetID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("Invalid user ID")
	}

	user, err := s.repo.User.FindByID(ctx, targetID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", targetID.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("User not found")
	}

	// 2. The session identity may only touch its own profile
	if authUserID != user.ID {
		s.log.Warn("Profile update for foreign user rejected",
			zap.String("auth_user_id", authUserID.String()),
			zap.String("target_user_id", user.ID.String()))
		return nil, fmt.Errorf("You are not authorized to update this profile")
	}

	// 3. Get or create the profile
	profile, err := s.getOrCreateProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// 4. Store the uploaded image, if any
	if req.Image != nil {
		path, err := s.store.Save(ctx, req.ImageName, req.Image)
		if err != nil {
			s.log.Error("Failed to store profile image", zap.Error(err), zap.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("failed to store profile image")
		}
		profile.ImagePath = &path
	}

	// 5. Overwrite each field present in the payload. A present empty
	// string clears the column; an absent field is left untouched.
	if req.FullName != nil {
		profile.FullName = *req.FullName
		// Full name also propagates to the user's display name
		if *req.FullName != "" {
			user.Name = *req.FullName
			user.UpdatedAt = time.Now()
			if err := s.repo.User.Update(ctx, user); err != nil {
				s.log.Error("Failed to propagate display name", zap.Error(err), zap.String("user_id", user.ID.String()))
				return nil, fmt.Errorf("failed to update profile")
			}
		}
	}

	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		// Unparseable dates are silently ignored, value left unchanged
		if dob, err := time.Parse("2006-01-02", *req.DateOfBirth); err == nil {
			profile.DateOfBirth = &dob
		}
	}

	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Area != nil {
		profile.Area = *req.Area
	}
	if req.StreetAddress != nil {
		profile.StreetAddress = *req.StreetAddress
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.AlternatePhone != nil {
		profile.AlternatePhone = *req.AlternatePhone
	}
	if req.DeliveryInstructions != nil {
		profile.DeliveryInstructions = *req.DeliveryInstructions
	}

	profile.UpdatedAt = time.Now()

	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to update profile")
	}

	s.log.Info("Profile updated", zap.String("user_id", user.ID.String()))

	return response.ProfileToResponse(profile, user, baseURL), nil
}

// ==================== HELPER METHODS ====================

func (s *profileService) getOrCreateProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.repo.Profile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load profile")
	}
	if profile != nil {
		return profile, nil
	}

	now := time.Now()
	profile = &entity.Profile{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
	}

	if err := s.repo.Profile.Create(ctx, profile); err != nil {
		s.log.Error("Failed to create profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to create profile")
	}

	return profile, nil
}
