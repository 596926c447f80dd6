package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/token"
	"github.com/msomdec/storefront/internal/validation"
)

// PasswordHasher hashes and verifies plaintext passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	Issue(userID int64) (string, error)
	Verify(tokenString string) (*token.Claims, error)
}

// RegisterInput is the payload of a sign-up request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService handles registration, login and bearer token resolution.
type AuthService struct {
	users  domain.UserRepository
	hasher PasswordHasher
	tokens TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, hasher PasswordHasher, tokens TokenService) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register validates and stores a new user, then issues a token for it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	if err := validation.ValidateUser(validation.UserInput{
		Username:    in.Username,
		Email:       in.Email,
		Password:    in.Password,
		PasswordSet: true,
	}).Err(); err != nil {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, tok, nil
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return "", domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return tok, nil
}

// Authenticate resolves a bearer token to the user it was issued for.
// A token whose user no longer exists is rejected as invalid.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	if tokenString == "" {
		return nil, domain.ErrMissingToken
	}

	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
