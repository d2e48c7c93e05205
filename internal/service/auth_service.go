package service

import (
	"context"
	"errors"
	"time"

	"lingualearn/internal/config"
	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (string, *model.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	suggestions SuggestionService
	mailer      Mailer
	cfg         *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, suggestions SuggestionService, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:          db,
		userRepo:    userRepo,
		suggestions: suggestions,
		mailer:      mailer,
		cfg:         cfg,
	}
}

// Register creates a new account. After the commit it seeds the user's
// first daily suggestion set and sends a welcome email; both are best
// effort and never fail the registration.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already registered", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "Email already registered.", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		_, err = s.userRepo.FindByUsername(ctx, tx, req.Username)
		if err == nil {
			logger.Warn("Username already taken", "username", req.Username)
			return model.NewAppError("DUPLICATE_USERNAME", "Username already taken.", "username", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check username existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to process the password.", "", err)
		}

		user := &model.User{
			UserID:         uuid.New(),
			Username:       req.Username,
			Email:          req.Email,
			PasswordHash:   string(hashedPassword),
			NativeLanguage: req.NativeLanguage,
			TargetLanguage: req.TargetLanguage,
		}
		if user.NativeLanguage == "" {
			user.NativeLanguage = "English"
		}
		if user.TargetLanguage == "" {
			user.TargetLanguage = "Spanish"
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race)", "error", err)
				return model.NewAppError("DUPLICATE_ENTRY", "Username or email is already in use.", "username,email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the account.", "", err)
		}
		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.suggestions.GetDailySuggestions(ctx, newUser.UserID, time.Now()); err != nil {
		logger.Warn("Failed to seed initial daily suggestions", "error", err, "user_id", newUser.UserID.String())
	}
	if err := s.mailer.Send(ctx, newUser.Email, "Welcome to lingualearn",
		"Hi "+newUser.Username+", your account is ready. Your first daily words are waiting for you."); err != nil {
		logger.Warn("Failed to send welcome email", "error", err, "email", newUser.Email)
	}

	return newUser, nil
}

// Login verifies the credentials and returns a signed session token.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (string, *model.User, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", nil, model.NewAppError("INVALID_CREDENTIALS", "Invalid email or password.", "", model.ErrForbidden)
		}
		logger.Error("Failed to look up user for login", "error", err)
		return "", nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Password mismatch on login", "user_id", user.UserID.String())
		return "", nil, model.NewAppError("INVALID_CREDENTIALS", "Invalid email or password.", "", model.ErrForbidden)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.UserID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.Auth.SessionTTL) * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		logger.Error("Failed to sign session token", "error", err)
		return "", nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the session.", "", err)
	}

	return signed, user, nil
}

func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.userRepo.FindByID(ctx, s.db, userID)
}
