package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"bolamarcada/internal/models"
	"bolamarcada/internal/repositories"
	"bolamarcada/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

// newOAuthProvider stands in for Google's token and userinfo endpoints.
func newOAuthProvider(userinfo map[string]string, failExchange bool) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if failExchange {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"provider-token","token_type":"bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(userinfo)
	})
	return httptest.NewServer(mux)
}

func newTestOAuthService(repo repositories.UserRepository, provider *httptest.Server) *services.OAuthService {
	cfg := &oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:  provider.URL + "/auth",
			TokenURL: provider.URL + "/token",
		},
	}
	svc := services.NewOAuthService(repo, services.NewTokenService("test_jwt_secret", time.Hour), cfg)
	svc.SetUserInfoURL(provider.URL + "/userinfo")
	return svc
}

func TestOAuthService_AutoProvision(t *testing.T) {
	provider := newOAuthProvider(map[string]string{
		"email":   "new@example.com",
		"name":    "New User",
		"picture": "https://example.com/avatar.png",
	}, false)
	defer provider.Close()

	repo := repositories.NewMockUserRepository()
	oauthService := newTestOAuthService(repo, provider)

	tokenString, err := oauthService.HandleCallback(context.Background(), "auth-code")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	user, err := repo.GetByEmail("new@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "New User", user.Name)
	assert.Equal(t, "https://example.com/avatar.png", user.Avatar)
	assert.True(t, user.Active)
	assert.Nil(t, user.CPF)
	assert.NotEmpty(t, user.Password) // placeholder hash, never empty

	tokens := services.NewTokenService("test_jwt_secret", time.Hour)
	subject, err := tokens.Decode(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestOAuthService_NameFallsBackToEmailLocalPart(t *testing.T) {
	provider := newOAuthProvider(map[string]string{
		"email": "someone@example.com",
	}, false)
	defer provider.Close()

	repo := repositories.NewMockUserRepository()
	oauthService := newTestOAuthService(repo, provider)

	_, err := oauthService.HandleCallback(context.Background(), "auth-code")
	assert.NoError(t, err)

	user, err := repo.GetByEmail("someone@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "someone", user.Name)
}

func TestOAuthService_IdempotentForExistingEmail(t *testing.T) {
	provider := newOAuthProvider(map[string]string{
		"email": "repeat@example.com",
		"name":  "Repeat User",
	}, false)
	defer provider.Close()

	repo := repositories.NewMockUserRepository()
	oauthService := newTestOAuthService(repo, provider)

	first, err := oauthService.HandleCallback(context.Background(), "auth-code")
	assert.NoError(t, err)
	second, err := oauthService.HandleCallback(context.Background(), "auth-code")
	assert.NoError(t, err)

	assert.Equal(t, 1, repo.Count())

	tokens := services.NewTokenService("test_jwt_secret", time.Hour)
	firstSubject, _ := tokens.Decode(first)
	secondSubject, _ := tokens.Decode(second)
	assert.Equal(t, firstSubject, secondSubject)
}

func TestOAuthService_ConcurrentCallbacks(t *testing.T) {
	provider := newOAuthProvider(map[string]string{
		"email": "racer@example.com",
		"name":  "Racer",
	}, false)
	defer provider.Close()

	repo := repositories.NewMockUserRepository()
	oauthService := newTestOAuthService(repo, provider)

	const callers = 2
	tokenStrings := make([]string, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokenStrings[i], errs[i] = oauthService.HandleCallback(context.Background(), "auth-code")
		}(i)
	}
	wg.Wait()

	// Exactly one user record, both callers holding a valid token for it.
	assert.Equal(t, 1, repo.Count())
	user, err := repo.GetByEmail("racer@example.com")
	assert.NoError(t, err)

	tokens := services.NewTokenService("test_jwt_secret", time.Hour)
	for i := 0; i < callers; i++ {
		assert.NoError(t, errs[i])
		subject, decodeErr := tokens.Decode(tokenStrings[i])
		assert.NoError(t, decodeErr)
		assert.Equal(t, user.ID, subject)
	}
}

func TestOAuthService_MissingEmail(t *testing.T) {
	provider := newOAuthProvider(map[string]string{
		"name": "No Email",
	}, false)
	defer provider.Close()

	repo := repositories.NewMockUserRepository()
	oauthService := newTestOAuthService(repo, provider)

	_, err := oauthService.HandleCallback(context.Background(), "auth-code")
	assert.ErrorIs(t, err, services.ErrMissingEmail)
	assert.Equal(t, 0, repo.Count())
}

func TestOAuthService_ExchangeError(t *testing.T) {
	provider := newOAuthProvider(nil, true)
	defer provider.Close()

	repo := repositories.NewMockUserRepository()
	oauthService := newTestOAuthService(repo, provider)

	_, err := oauthService.HandleCallback(context.Background(), "bad-code")
	assert.ErrorIs(t, err, services.ErrOAuthExchange)
}

func TestOAuthService_RaceRecovery(t *testing.T) {
	provider := newOAuthProvider(map[string]string{
		"email": "winner@example.com",
		"name":  "Winner",
	}, false)
	defer provider.Close()

	// The insert loses the race; the re-query finds the winner's record.
	winner := &models.User{
		ID:     "5f3a1c2e-9b7d-4a15-8c30-0d2f6f1e9a44",
		Email:  "winner@example.com",
		Active: true,
	}
	notFound := fmt.Errorf("user with email winner@example.com: %w", repositories.ErrNotFound)
	dup := fmt.Errorf("email already registered: %w", repositories.ErrDuplicate)

	mockRepo := new(MockUserRepo)
	mockRepo.On("GetByEmail", "winner@example.com").Return(nil, notFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(dup).Once()
	mockRepo.On("GetByEmail", "winner@example.com").Return(winner, nil).Once()

	oauthService := newTestOAuthService(mockRepo, provider)
	tokenString, err := oauthService.HandleCallback(context.Background(), "auth-code")
	assert.NoError(t, err)

	tokens := services.NewTokenService("test_jwt_secret", time.Hour)
	subject, err := tokens.Decode(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, winner.ID, subject)
	mockRepo.AssertExpectations(t)
}

func TestOAuthService_ProvisioningConflict(t *testing.T) {
	provider := newOAuthProvider(map[string]string{
		"email": "ghost@example.com",
	}, false)
	defer provider.Close()

	// The insert reports a duplicate but the re-query finds nothing
	// either; the flow must give up rather than loop.
	notFound := fmt.Errorf("user with email ghost@example.com: %w", repositories.ErrNotFound)
	dup := fmt.Errorf("email already registered: %w", repositories.ErrDuplicate)

	mockRepo := new(MockUserRepo)
	mockRepo.On("GetByEmail", "ghost@example.com").Return(nil, notFound).Twice()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(dup).Once()

	oauthService := newTestOAuthService(mockRepo, provider)
	_, err := oauthService.HandleCallback(context.Background(), "auth-code")
	assert.ErrorIs(t, err, services.ErrProvisioningConflict)
	mockRepo.AssertExpectations(t)
}
