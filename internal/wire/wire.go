package wire

import (
	"net/http"

	"sreca-account/internal/adaptor"
	"sreca-account/internal/data/repository"
	"sreca-account/internal/usecase"
	"sreca-account/pkg/mailer"
	"sreca-account/pkg/middleware"
	"sreca-account/pkg/storage"
	"sreca-account/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled router
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(
	repo *repository.Repository,
	mail mailer.Mailer,
	store storage.Store,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, mail, store, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Wrong method on a known path answers with the JSON envelope
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w)
	})

	// Feature routes
	wireAuth(r, handler.Auth, repo, logger)
	wirePassword(r, handler.Password)
	wireProfile(r, handler.Profile, repo, logger)

	// Stored profile images
	fileServer := http.StripPrefix("/media/", http.FileServer(http.Dir(config.App.MediaPath)))
	r.Get("/media/*", fileServer.ServeHTTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
