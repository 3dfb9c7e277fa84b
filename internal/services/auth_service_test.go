package services_test

import (
	"fmt"
	"testing"
	"time"

	"bolamarcada/internal/models"
	"bolamarcada/internal/repositories"
	"bolamarcada/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepo is a testify mock of repositories.UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func newTestAuthService(repo repositories.UserRepository) *services.AuthService {
	return services.NewAuthService(repo, services.NewTokenService("test_jwt_secret", time.Hour))
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepo)
	authService := newTestAuthService(mockRepo)

	user := &models.User{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Abcd1234!",
	}

	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	// The stored password must be a hash of the plaintext, not the
	// plaintext itself.
	assert.NotEqual(t, "Abcd1234!", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Abcd1234!")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepo)
	authService := newTestAuthService(mockRepo)

	dup := fmt.Errorf("email already registered: %w", repositories.ErrDuplicate)
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(dup).Once()

	err := authService.RegisterUser(&models.User{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Abcd1234!",
	})
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.Contains(t, err.Error(), "email")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Authenticate(t *testing.T) {
	mockRepo := new(MockUserRepo)
	authService := newTestAuthService(mockRepo)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Abcd1234!"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "5f3a1c2e-9b7d-4a15-8c30-0d2f6f1e9a44",
		Name:     "Test User",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Active:   true,
	}

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	got, err := authService.Authenticate(user.Email, "Abcd1234!")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Authenticate_NoInformationLeak(t *testing.T) {
	mockRepo := new(MockUserRepo)
	authService := newTestAuthService(mockRepo)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Abcd1234!"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "5f3a1c2e-9b7d-4a15-8c30-0d2f6f1e9a44",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Active:   true,
	}

	// Wrong password for an existing account.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, wrongPasswordErr := authService.Authenticate(user.Email, "WrongPass1!")

	// Unknown email.
	notFound := fmt.Errorf("user with email nobody@example.com: %w", repositories.ErrNotFound)
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, notFound).Once()
	_, unknownEmailErr := authService.Authenticate("nobody@example.com", "Abcd1234!")

	// The two failures must be indistinguishable to the caller.
	assert.ErrorIs(t, wrongPasswordErr, services.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmailErr, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPasswordErr.Error(), unknownEmailErr.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepo)
	authService := newTestAuthService(mockRepo)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Abcd1234!"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "5f3a1c2e-9b7d-4a15-8c30-0d2f6f1e9a44",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Active:   true,
	}
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()

	tokenString, err := authService.Login(user.Email, "Abcd1234!")
	assert.NoError(t, err)

	subject, err := authService.Tokens().Decode(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, subject)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ResolveFromToken(t *testing.T) {
	mockRepo := new(MockUserRepo)
	authService := newTestAuthService(mockRepo)

	user := &models.User{
		ID:     "5f3a1c2e-9b7d-4a15-8c30-0d2f6f1e9a44",
		Email:  "test@example.com",
		Active: true,
	}
	tokenString, err := authService.Tokens().Issue(user.ID)
	assert.NoError(t, err)

	mockRepo.On("GetByID", user.ID).Return(user, nil).Once()
	got, err := authService.ResolveFromToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ResolveFromToken_Failures(t *testing.T) {
	mockRepo := new(MockUserRepo)
	authService := newTestAuthService(mockRepo)

	// Undecodable token.
	_, err := authService.ResolveFromToken("not.a.token")
	assert.ErrorIs(t, err, services.ErrUnauthenticated)

	// Valid token whose subject is not an identifier.
	badSubject, _ := authService.Tokens().Issue("not-a-uuid")
	_, err = authService.ResolveFromToken(badSubject)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)

	// Valid token for a user that no longer exists.
	goneID := "11111111-2222-4333-8444-555555555555"
	goneToken, _ := authService.Tokens().Issue(goneID)
	notFound := fmt.Errorf("user with ID %s: %w", goneID, repositories.ErrNotFound)
	mockRepo.On("GetByID", goneID).Return(nil, notFound).Once()
	_, err = authService.ResolveFromToken(goneToken)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)

	// Valid token for a deactivated account.
	inactive := &models.User{
		ID:     "aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeeee",
		Active: false,
	}
	inactiveToken, _ := authService.Tokens().Issue(inactive.ID)
	mockRepo.On("GetByID", inactive.ID).Return(inactive, nil).Once()
	_, err = authService.ResolveFromToken(inactiveToken)
	assert.ErrorIs(t, err, services.ErrForbidden)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Deactivate(t *testing.T) {
	mockRepo := new(MockUserRepo)
	authService := newTestAuthService(mockRepo)

	user := &models.User{
		ID:     "5f3a1c2e-9b7d-4a15-8c30-0d2f6f1e9a44",
		Active: true,
	}
	mockRepo.On("Update", user).Return(nil).Once()

	err := authService.Deactivate(user)
	assert.NoError(t, err)
	assert.False(t, user.Active)
	mockRepo.AssertExpectations(t)
}
