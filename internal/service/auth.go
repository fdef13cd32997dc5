package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the persistence contract for accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// RegisterInput carries a registration request.
type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// AuthResult is a successful authentication: an access token and the profile.
type AuthResult struct {
	Token string
	User  *models.User
}

// AuthService registers accounts and verifies credentials.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}

type authService struct {
	repo   UserRepository
	tokens *TokenManager
	logger *logrus.Logger
}

func NewAuthService(repo UserRepository, tokens *TokenManager, logger *logrus.Logger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates an account and issues a token for it.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Register",
		"username": input.Username,
	})
	log.Info("Registering new user")

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			log.Warn("Username already taken")
			return nil, ErrUsernameTaken
		}
		log.WithError(err).Error("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return &AuthResult{Token: token, User: user}, nil
}

// Login verifies credentials and issues a token. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Warn("Login attempt for unknown username")
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to get user from repository")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempt with wrong password")
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return &AuthResult{Token: token, User: user}, nil
}
