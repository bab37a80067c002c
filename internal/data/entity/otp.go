package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetOTP records a one-time code issued for password reset.
// The email is copied at issuance so the code stays bound to the address
// it was sent to. One row per issuance; lookups take the newest match.
type PasswordResetOTP struct {
	BaseSimple
	UserID     uuid.UUID `db:"user_id"`
	Email      string    `db:"email"`
	Code       string    `db:"otp_code"`
	IsVerified bool      `db:"is_verified"`
	ExpiresAt  time.Time `db:"expires_at"`
}

// IsExpired reports whether the code is past its expiry. Expiry is checked
// lazily on each access, never by a background sweep.
func (o *PasswordResetOTP) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
