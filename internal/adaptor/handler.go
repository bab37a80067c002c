package adaptor

import (
	"sreca-account/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Password *PasswordHandler
	Profile  *ProfileHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Password: NewPasswordHandler(service.Password, log),
		Profile:  NewProfileHandler(service.Profile, log),
	}
}
