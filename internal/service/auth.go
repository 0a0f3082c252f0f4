package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/productapi/productapi-go/internal/crypto"
	"github.com/productapi/productapi-go/internal/model"
	"github.com/productapi/productapi-go/internal/repository"
)

var (
	ErrRegisterFieldsRequired = errors.New("username, password and email are required")
	ErrLoginFieldsRequired    = errors.New("username and password are required")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUsernameTaken          = errors.New("username taken")
)

// UserStore is the persistence the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// AuthService handles authentication business logic.
type AuthService struct {
	users  UserStore
	tokens *crypto.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens *crypto.TokenService) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new user account. The password is never echoed back.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.UserResponse, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return model.UserResponse{}, ErrRegisterFieldsRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return model.UserResponse{}, ErrUsernameTaken
		}
		return model.UserResponse{}, fmt.Errorf("creating user: %w", err)
	}

	return model.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// Login authenticates a user and returns a bearer token. Unknown users and
// wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return model.LoginResponse{}, ErrLoginFieldsRequired
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, fmt.Errorf("looking up user: %w", err)
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, fmt.Errorf("verifying password: %w", err)
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return model.LoginResponse{}, fmt.Errorf("signing token: %w", err)
	}

	return model.LoginResponse{Token: token}, nil
}
