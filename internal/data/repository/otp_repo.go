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

// OTPRepository persists one row per issued code. The lookups deliberately
// do not filter on expiry: the service checks it lazily so an expired code
// can be reported separately from an unknown one.
type OTPRepository interface {
	Create(ctx context.Context, otp *entity.PasswordResetOTP) error
	FindLatestUnverified(ctx context.Context, email, code string) (*entity.PasswordResetOTP, error)
	FindLatestVerified(ctx context.Context, email, code string) (*entity.PasswordResetOTP, error)
	MarkVerified(ctx context.Context, otpID uuid.UUID) error
	MarkAllVerified(ctx context.Context, userID uuid.UUID, email string) error
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

func (r *otpRepository) Create(ctx context.Context, otp *entity.PasswordResetOTP) error {
	query := `
		INSERT INTO password_reset_otps (id, user_id, email, otp_code,
		                                 is_verified, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		otp.ID,
		otp.UserID,
		otp.Email,
		otp.Code,
		otp.IsVerified,
		otp.ExpiresAt,
		otp.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create OTP",
			zap.Error(err),
			zap.String("email", otp.Email),
		)
		return fmt.Errorf("create OTP for %s: %w", otp.Email, err)
	}

	return nil
}

func (r *otpRepository) FindLatestUnverified(ctx context.Context, email, code string) (*entity.PasswordResetOTP, error) {
	return r.findLatest(ctx, email, code, false)
}

func (r *otpRepository) FindLatestVerified(ctx context.Context, email, code string) (*entity.PasswordResetOTP, error) {
	return r.findLatest(ctx, email, code, true)
}

func (r *otpRepository) findLatest(ctx context.Context, email, code string, verified bool) (*entity.PasswordResetOTP, error) {
	query := `
		SELECT id, user_id, email, otp_code, is_verified, expires_at, created_at
		FROM password_reset_otps
		WHERE email = $1
		  AND otp_code = $2
		  AND is_verified = $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	var otp entity.PasswordResetOTP
	err := r.db.QueryRow(ctx, query, email, code, verified).Scan(
		&otp.ID,
		&otp.UserID,
		&otp.Email,
		&otp.Code,
		&otp.IsVerified,
		&otp.ExpiresAt,
		&otp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find OTP",
			zap.Error(err),
			zap.String("email", email),
			zap.Bool("verified", verified),
		)
		return nil, fmt.Errorf("find OTP for %s: %w", email, err)
	}

	return &otp, nil
}

func (r *otpRepository) MarkVerified(ctx context.Context, otpID uuid.UUID) error {
	query := `
		UPDATE password_reset_otps
		SET is_verified = true
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, otpID)
	if err != nil {
		r.log.Error("Failed to mark OTP as verified",
			zap.Error(err),
			zap.String("otp_id", otpID.String()),
		)
		return fmt.Errorf("mark OTP %s as verified: %w", otpID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("OTP %s not found", otpID.String())
	}

	return nil
}

// MarkAllVerified retires every outstanding code for the user+email pair
// after a successful reset.
func (r *otpRepository) MarkAllVerified(ctx context.Context, userID uuid.UUID, email string) error {
	query := `
		UPDATE password_reset_otps
		SET is_verified = true
		WHERE user_id = $1 AND email = $2
	`

	_, err := r.db.Exec(ctx, query, userID, email)
	if err != nil {
		r.log.Error("Failed to mark OTPs as verified",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("email", email),
		)
		return fmt.Errorf("mark OTPs for %s as verified: %w", email, err)
	}

	return nil
}
