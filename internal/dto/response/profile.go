package response

import (
	"sreca-account/internal/data/entity"
)

type ProfileResponse struct {
	FullName             string  `json:"full_name"`
	Email                string  `json:"email"`
	DateOfBirth          string  `json:"date_of_birth"`
	Gender               string  `json:"gender"`
	City                 string  `json:"city"`
	Area                 string  `json:"area"`
	StreetAddress        string  `json:"street_address"`
	Phone                string  `json:"phone"`
	AlternatePhone       string  `json:"alternate_phone"`
	DeliveryInstructions string  `json:"instructions"`
	ProfileImage         *string `json:"profile_image"`
}

// ProfileToResponse flattens a profile plus its owning user. Dates render
// as YYYY-MM-DD; full name falls back to the user's display name; the
// image becomes an absolute URL under /media/.
func ProfileToResponse(profile *entity.Profile, user *entity.User, baseURL string) *ProfileResponse {
	fullName := profile.FullName
	if fullName == "" {
		fullName = user.Name
	}

	dob := ""
	if profile.DateOfBirth != nil {
		dob = profile.DateOfBirth.Format("2006-01-02")
	}

	var imageURL *string
	if profile.ImagePath != nil && *profile.ImagePath != "" {
		url := baseURL + "/media/" + *profile.ImagePath
		imageURL = &url
	}

	return &ProfileResponse{
		FullName:             fullName,
		Email:                user.Email,
		DateOfBirth:          dob,
		Gender:               profile.Gender,
		City:                 profile.City,
		Area:                 profile.Area,
		StreetAddress:        profile.StreetAddress,
		Phone:                profile.Phone,
		AlternatePhone:       profile.AlternatePhone,
		DeliveryInstructions: profile.DeliveryInstructions,
		ProfileImage:         imageURL,
	}
}
