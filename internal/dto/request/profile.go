package request

import "io"

// ProfileUpdateRequest uses pointer fields so that an absent field leaves
// the stored value untouched while an empty string clears it.
type ProfileUpdateRequest struct {
	UserID               string  `json:"user_id"`
	FullName             *string `json:"full_name"`
	DateOfBirth          *string `json:"date_of_birth"`
	Gender               *string `json:"gender"`
	City                 *string `json:"city"`
	Area                 *string `json:"area"`
	StreetAddress        *string `json:"street_address"`
	Phone                *string `json:"phone"`
	AlternatePhone       *string `json:"alternate_phone"`
	DeliveryInstructions *string `json:"instructions"`

	// Set by the handler for multipart uploads, never from JSON.
	Image     io.Reader `json:"-"`
	ImageName string    `json:"-"`
}
