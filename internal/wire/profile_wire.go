package wire

import (
	"sreca-account/internal/adaptor"
	"sreca-account/internal/data/repository"
	"sreca-account/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Profile read is public; updates require the session identity
	r.Get("/api/profile/", profileHandler.Get)
	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/profile/update/", profileHandler.Update)
}
