package usecase

import (
	"sreca-account/internal/data/repository"
	"sreca-account/pkg/mailer"
	"sreca-account/pkg/storage"
	"sreca-account/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Password PasswordService
	Profile  ProfileService
}

func NewService(
	repo *repository.Repository,
	mail mailer.Mailer,
	store storage.Store,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, mail, config, log),
		Password: NewPasswordService(repo, mail, config, log),
		Profile:  NewProfileService(repo, store, log),
	}
}
