package request

// Field names follow the public API contract: the signup confirmation is
// "confirm-password", the reset confirmation is "confirmPassword".
//
// Only format-level constraints are tag-enforced; presence, password
// match and length checks live in the services, which own the exact
// response messages.

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email" validate:"omitempty,email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm-password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
