package repository

import (
	"context"
	"fmt"

	"sreca-account/internal/data/entity"
	"sreca-account/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
}

type profileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProfileRepository(db database.PgxIface, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

func (pr *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, full_name, date_of_birth, gender,
		                      city, area, street_address, phone, alternate_phone,
		                      delivery_instructions, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := pr.db.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.FullName,
		profile.DateOfBirth,
		profile.Gender,
		profile.City,
		profile.Area,
		profile.StreetAddress,
		profile.Phone,
		profile.AlternatePhone,
		profile.DeliveryInstructions,
		profile.ImagePath,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to create profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("create profile for user %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (pr *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	query := `
		SELECT id, user_id, full_name, date_of_birth, gender,
		       city, area, street_address, phone, alternate_phone,
		       delivery_instructions, image_path, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile entity.Profile
	err := pr.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.DateOfBirth,
		&profile.Gender,
		&profile.City,
		&profile.Area,
		&profile.StreetAddress,
		&profile.Phone,
		&profile.AlternatePhone,
		&profile.DeliveryInstructions,
		&profile.ImagePath,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find profile for user %s: %w", userID.String(), err)
	}

	return &profile, nil
}

func (pr *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	query := `
		UPDATE profiles
		SET full_name = $2, date_of_birth = $3, gender = $4, city = $5,
		    area = $6, street_address = $7, phone = $8, alternate_phone = $9,
		    delivery_instructions = $10, image_path = $11, updated_at = $12
		WHERE user_id = $1
	`

	result, err := pr.db.Exec(ctx, query,
		profile.UserID,
		profile.FullName,
		profile.DateOfBirth,
		profile.Gender,
		profile.City,
		profile.Area,
		profile.StreetAddress,
		profile.Phone,
		profile.AlternatePhone,
		profile.DeliveryInstructions,
		profile.ImagePath,
		profile.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to update profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("update profile for user %s: %w", profile.UserID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile for user %s not found", profile.UserID.String())
	}

	return nil
}
