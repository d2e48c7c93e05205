// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"lingualearn/internal/audio"
	"lingualearn/internal/catalog"
	"lingualearn/internal/config"
	"lingualearn/internal/handlers"
	"lingualearn/internal/middleware"
	"lingualearn/internal/repository"
	"lingualearn/internal/service"
	"lingualearn/internal/tts"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger so config loading has somewhere to report.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency Injection
	userRepo := repository.NewGormUserRepository()
	vocabRepo := repository.NewGormVocabRepository()
	suggRepo := repository.NewGormSuggestionRepository()
	practiceRepo := repository.NewGormPracticeRepository()

	wordCatalog := catalog.New()
	mailer := service.NewMailer(cfg)

	synthesizer := tts.NewClient(cfg.TTS.BaseURL, time.Duration(cfg.TTS.TimeoutSeconds)*time.Second)
	sink := audio.Probe(cfg.Audio.Player)
	if sink.Available() {
		slog.Info("Audio playback enabled", slog.String("player", sink.Name()))
	} else {
		slog.Warn("No audio player found, pronunciation will fall back to text")
	}

	suggestionService := service.NewSuggestionService(db, suggRepo, vocabRepo, userRepo, wordCatalog, cfg)
	authService := service.NewAuthService(db, userRepo, suggestionService, mailer, cfg)
	vocabService := service.NewVocabService(db, vocabRepo, userRepo, wordCatalog)
	practiceService := service.NewPracticeService(db, vocabRepo, suggRepo, practiceRepo, cfg)
	speechService := service.NewSpeechService(db, userRepo, synthesizer, sink)
	statsService := service.NewStatsService(db, vocabRepo, practiceRepo, userRepo)

	authHandler := handlers.NewAuthHandler(authService, cfg, logger)
	vocabHandler := handlers.NewVocabHandler(vocabService, logger)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService, logger)
	practiceHandler := handlers.NewPracticeHandler(practiceService, logger)
	speechHandler := handlers.NewSpeechHandler(speechService, logger)
	statsHandler := handlers.NewStatsHandler(statsService, logger)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuthMiddleware(cfg))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)

			r.Route("/vocabulary", func(r chi.Router) {
				r.Get("/", vocabHandler.GetVocabulary)
				r.Post("/", vocabHandler.PostVocabulary)
				r.Delete("/{entry_id}", vocabHandler.DeleteVocabulary)
			})

			r.Get("/suggestions/today", suggestionHandler.GetToday)

			r.Route("/practice", func(r chi.Router) {
				r.Get("/words", practiceHandler.GetWords)
				r.Post("/results", practiceHandler.PostResult)
			})

			r.Post("/speech/speak", speechHandler.Speak)
			r.Get("/statistics", statsHandler.GetStatistics)
			r.Post("/words/search", vocabHandler.SearchWord)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
