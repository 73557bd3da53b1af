package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"outreach/internal/adapter/repo"
	"outreach/internal/auth"
	"outreach/internal/db"
	"outreach/internal/http/handlers"
	httpapi "outreach/internal/http/httpapi"
	"outreach/internal/infra"
	"outreach/internal/providers/mail"
	"outreach/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	database, err := infra.NewDatabase(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize schema")
	}

	relay, err := mail.New(cfg.Mail, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure mail relay")
	}
	passwords, err := auth.NewPasswordHasher(cfg.PasswordMode)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure password mode")
	}

	var archive *storage.FileStore
	if cfg.ContactUploadDir != "" {
		archive, err = storage.NewFileStore(cfg.ContactUploadDir)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to prepare contact upload dir")
		}
	}

	runner := infra.NewSQLRunner(database.DB, database.Dialect, logger)
	app := handlers.NewApp(handlers.Deps{
		Users:             repo.NewUserRepository(runner),
		Courses:           repo.NewCourseRepository(runner),
		Partnerships:      repo.NewPartnershipRepository(runner),
		Donations:         repo.NewDonationRepository(runner),
		LiveSessions:      repo.NewLiveSessionRepository(runner),
		Relay:             relay,
		Passwords:         passwords,
		Archive:           archive,
		AdminEmail:        cfg.Mail.AdminAddress,
		UploadMaxBytes:    cfg.UploadMaxBytes,
		NotifyConcurrency: cfg.NotifyConcurrency,
		Logger:            logger,
	})

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:         logger,
		AllowedOrigins: cfg.CORSAllowedOrigin,
		FormRateLimit:  cfg.FormRateLimit,
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("addr", server.Addr()).
			Str("database", string(database.Dialect)).
			Str("mail_transport", cfg.Mail.Transport).
			Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
