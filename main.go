package main

import (
	"log"

	"sreca-account/cmd"
	"sreca-account/internal/data/repository"
	"sreca-account/internal/wire"
	"sreca-account/pkg/database"
	"sreca-account/pkg/mailer"
	"sreca-account/pkg/storage"
	"sreca-account/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Email provider client, configured once at startup
	mail, err := mailer.New(mailer.Config{
		APIKey:    config.Mailjet.APIKey,
		APISecret: config.Mailjet.APISecret,
		FromEmail: config.Mailjet.FromEmail,
		FromName:  config.Mailjet.FromName,
		APIURL:    config.Mailjet.APIURL,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to configure mailer", zap.Error(err))
	}

	// Profile image store
	store, err := storage.NewDiskStore(config.App.MediaPath)
	if err != nil {
		logger.Fatal("Failed to init media storage", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, mail, store, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
