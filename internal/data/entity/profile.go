package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the one-to-one extension of a User, created lazily on first
// read or update. All text fields default to empty strings; gender is
// stored as free text.
type Profile struct {
	BaseNoDelete
	UserID               uuid.UUID  `db:"user_id"`
	FullName             string     `db:"full_name"`
	DateOfBirth          *time.Time `db:"date_of_birth"`
	Gender               string     `db:"gender"`
	City                 string     `db:"city"`
	Area                 string     `db:"area"`
	StreetAddress        string     `db:"street_address"`
	Phone                string     `db:"phone"`
	AlternatePhone       string     `db:"alternate_phone"`
	DeliveryInstructions string     `db:"delivery_instructions"`
	ImagePath            *string    `db:"image_path"`
}
