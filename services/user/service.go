package user

import (
	"errors"
	"fmt"
	"time"

	userRepo "groomery/database/repository/user"
	"groomery/models"
	"groomery/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// ErrInvalidCredentials covers both unknown emails and wrong passwords, so
// responses do not leak which of the two failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken signals a registration attempt with an existing email.
var ErrEmailTaken = errors.New("email already registered")

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// UserService handles staff accounts and session tokens.
type UserService interface {
	Register(name, email, password string) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	RevokeAuthToken(id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a staff account and signs it in.
func (s *DefaultUserService) Register(name, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("user registered", zap.String("id", user.ID))
	return s.issueToken(user)
}

// Authenticate verifies credentials and issues a fresh session token,
// replacing any previous one.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// GetUserByID retrieves a staff account.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	user, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return user, nil
}

// RevokeAuthToken clears the stored token hash, invalidating the session.
func (s *DefaultUserService) RevokeAuthToken(id string) error {
	return s.Repo.SetTokenHash(id, "")
}

func (s *DefaultUserService) issueToken(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.SetTokenHash(user.ID, utils.HashToken(token)); err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}
