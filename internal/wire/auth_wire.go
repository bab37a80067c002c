package wire

import (
	"sreca-account/internal/adaptor"
	"sreca-account/internal/data/repository"
	"sreca-account/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Signup and login reject callers that already hold a session
	r.With(middleware.Guest(repo.Session, log)).Post("/api/signup/", authHandler.Signup)
	r.With(middleware.Guest(repo.Session, log)).Post("/api/login/", authHandler.Login)

	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/logout/", authHandler.Logout)
}
