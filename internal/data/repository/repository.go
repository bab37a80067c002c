package repository

import (
	"sreca-account/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Profile ProfileRepository
	OTP     OTPRepository
	Session SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Profile: NewProfileRepository(db, log),
		OTP:     NewOTPRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}
