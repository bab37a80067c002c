package entity

// User is the credential record. Email doubles as the login name.
type User struct {
	Base
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	IsActive     bool   `db:"is_active"`
}
