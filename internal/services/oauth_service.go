package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bolamarcada/internal/models"
	"bolamarcada/internal/repositories"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// GoogleUserInfo holds the identity claims returned by the provider.
type GoogleUserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// OAuthService runs the Google sign-in flow with auto-provisioning: on
// first login a local user record is created from the provider's claims.
type OAuthService struct {
	userRepo    repositories.UserRepository
	tokens      *TokenService
	config      *oauth2.Config
	userInfoURL string
}

// NewOAuthService creates a new OAuthService around an oauth2 client
// configuration.
func NewOAuthService(userRepo repositories.UserRepository, tokens *TokenService, config *oauth2.Config) *OAuthService {
	return &OAuthService{
		userRepo:    userRepo,
		tokens:      tokens,
		config:      config,
		userInfoURL: googleUserInfoURL,
	}
}

// SetUserInfoURL overrides the identity-claims endpoint. Used by tests.
func (s *OAuthService) SetUserInfoURL(url string) {
	s.userInfoURL = url
}

// AuthCodeURL returns the provider consent page URL for the given state.
func (s *OAuthService) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state)
}

// HandleCallback exchanges the authorization code, resolves or creates
// the local user for the claimed email, and returns an access token.
// Repeating the callback for the same email never creates a second user.
func (s *OAuthService) HandleCallback(ctx context.Context, code string) (string, error) {
	providerToken, err := s.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("code exchange rejected: %w", ErrOAuthExchange)
	}

	info, err := s.fetchUserInfo(ctx, providerToken)
	if err != nil {
		return "", err
	}
	if info.Email == "" {
		return "", ErrMissingEmail
	}

	user, err := s.findOrCreateUser(info)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID)
}

func (s *OAuthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*GoogleUserInfo, error) {
	resp, err := s.config.Client(ctx, token).Get(s.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", ErrOAuthExchange)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned %d: %w", resp.StatusCode, ErrOAuthExchange)
	}
	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("userinfo payload unreadable: %w", ErrOAuthExchange)
	}
	return &info, nil
}

// findOrCreateUser looks up the claimed email and provisions a new user
// when absent. A duplicate-key failure on insert means a concurrent
// callback for the same email won the race; the winner's record is
// re-queried and used. Only when that re-query also misses does the flow
// fail with ErrProvisioningConflict.
func (s *OAuthService) findOrCreateUser(info *GoogleUserInfo) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	// Placeholder password, never shared with the caller. The account is
	// only reachable through the provider until the user sets their own.
	placeholder, err := randomSecret(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate placeholder password: %w", err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(placeholder), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	name := info.Name
	if name == "" {
		name = strings.SplitN(info.Email, "@", 2)[0]
	}
	newUser := &models.User{
		Name:     name,
		Email:    info.Email,
		Password: string(hashed),
		Avatar:   info.Picture,
		Active:   true,
	}

	if err := s.userRepo.Create(newUser); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			existing, lookupErr := s.userRepo.GetByEmail(info.Email)
			if lookupErr != nil {
				return nil, fmt.Errorf("%s: %w", info.Email, ErrProvisioningConflict)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return newUser, nil
}

// randomSecret draws n characters from crypto/rand.
func randomSecret(n int) (string, error) {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = letters[int(b[i])%len(letters)]
	}
	return string(b), nil
}
