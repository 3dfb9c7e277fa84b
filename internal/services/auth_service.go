package services

import (
	"errors"
	"fmt"

	"bolamarcada/internal/models"
	"bolamarcada/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, credential checks and the resolution
// of bearer tokens to user records.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Tokens exposes the token service backing this authenticator.
func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}

// RegisterUser hashes the password and inserts the user, relying on the
// store's unique constraints for email and cpf. A duplicate surfaces as
// ErrConflict naming the colliding column.
func (s *AuthService) RegisterUser(user *models.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	user.Active = true

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return fmt.Errorf("%v: %w", err, ErrConflict)
		}
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Authenticate resolves email and password to a user record. Unknown
// email and wrong password both fail with the same ErrInvalidCredentials
// so the response does not reveal which case occurred.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates and issues an access token for the user's ID.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.Authenticate(email, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID)
}

// ResolveFromToken decodes a bearer token and loads the requesting user.
// Decode failures, malformed subjects and unknown users all surface as
// ErrUnauthenticated; an inactive account surfaces as ErrForbidden.
func (s *AuthService) ResolveFromToken(tokenString string) (*models.User, error) {
	subject, err := s.tokens.Decode(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrUnauthenticated)
	}
	if _, err := uuid.Parse(subject); err != nil {
		return nil, fmt.Errorf("malformed subject: %w", ErrUnauthenticated)
	}

	user, err := s.userRepo.GetByID(subject)
	if err != nil {
		return nil, fmt.Errorf("unknown subject: %w", ErrUnauthenticated)
	}
	if !user.Active {
		return nil, fmt.Errorf("inactive account: %w", ErrForbidden)
	}
	return user, nil
}

// UpdateProfile applies a self-service profile change. Email updates can
// collide with another account and surface as ErrConflict.
func (s *AuthService) UpdateProfile(user *models.User) error {
	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return fmt.Errorf("%v: %w", err, ErrConflict)
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// Deactivate soft-deletes the account by clearing the active flag. The
// record remains so dependent bookings and reviews keep their owner.
func (s *AuthService) Deactivate(user *models.User) error {
	user.Active = false
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}
