package services_test

import (
	"testing"
	"time"

	"blogapp/internal/models"
	"blogapp/internal/repositories"
	"blogapp/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(order repositories.UserOrder) ([]models.User, error) {
	args := m.Called(order)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUserName(userName string) (*models.User, error) {
	args := m.Called(userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Exists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UserNameExists(normalized string, excludeID uint) (bool, error) {
	args := m.Called(normalized, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User, skillIDs []uint) error {
	args := m.Called(user, skillIDs)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User, skillIDs []uint, replaceSkills bool) error {
	args := m.Called(user, skillIDs, replaceSkills)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func testTokenConfig() services.TokenConfig {
	return services.TokenConfig{
		Secret:     "test-secret",
		Issuer:     "blogapp-test",
		Audience:   "blogapp-test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}
}

func hashedUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:       1,
		UserName: "alice",
		Password: string(hash),
		IsActive: true,
		Role:     models.Role{ID: 1, Name: "Admin"},
		RoleID:   1,
	}
}

func TestAuthService_Token(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testTokenConfig())
	user := hashedUser(t, "Password1!")

	mockRepo.On("GetByUserName", "alice").Return(user, nil).Once()

	result, err := service.Token("alice", "Password1!")
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Token created successfully.", result.Message)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.True(t, result.Expires.After(time.Now()))
	mockRepo.AssertExpectations(t)

	// The issued access token carries the identity claims.
	claims, err := service.ValidateToken(result.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "Admin", claims["role"])
}

func TestAuthService_TokenWrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testTokenConfig())
	user := hashedUser(t, "Password1!")

	mockRepo.On("GetByUserName", "alice").Return(user, nil).Once()

	result, err := service.Token("alice", "wrong")
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid username or password.", result.Message)
	assert.Empty(t, result.AccessToken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_TokenUnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testTokenConfig())

	mockRepo.On("GetByUserName", "ghost").Return(nil, nil).Once()

	result, err := service.Token("ghost", "whatever")
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid username or password.", result.Message)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RefreshToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testTokenConfig())
	user := hashedUser(t, "Password1!")

	mockRepo.On("GetByUserName", "alice").Return(user, nil).Once()
	issued, err := service.Token("alice", "Password1!")
	require.NoError(t, err)
	require.True(t, issued.Success)

	mockRepo.On("GetByID", uint(1)).Return(user, nil).Once()
	refreshed, err := service.RefreshToken(issued.RefreshToken)
	assert.NoError(t, err)
	assert.True(t, refreshed.Success)
	assert.Equal(t, "Token refreshed successfully.", refreshed.Message)
	assert.NotEmpty(t, refreshed.AccessToken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RefreshTokenInactiveUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testTokenConfig())
	user := hashedUser(t, "Password1!")

	mockRepo.On("GetByUserName", "alice").Return(user, nil).Once()
	issued, err := service.Token("alice", "Password1!")
	require.NoError(t, err)

	deactivated := *user
	deactivated.IsActive = false
	mockRepo.On("GetByID", uint(1)).Return(&deactivated, nil).Once()

	result, err := service.RefreshToken(issued.RefreshToken)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid or expired refresh token.", result.Message)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RefreshTokenRejectsAccessToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testTokenConfig())
	user := hashedUser(t, "Password1!")

	mockRepo.On("GetByUserName", "alice").Return(user, nil).Once()
	issued, err := service.Token("alice", "Password1!")
	require.NoError(t, err)

	result, err := service.RefreshToken(issued.AccessToken)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid or expired refresh token.", result.Message)
}

func TestAuthService_ValidateTokenRejectsRefreshToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testTokenConfig())
	user := hashedUser(t, "Password1!")

	mockRepo.On("GetByUserName", "alice").Return(user, nil).Once()
	issued, err := service.Token("alice", "Password1!")
	require.NoError(t, err)

	_, err = service.ValidateToken(issued.RefreshToken)
	assert.Error(t, err)
}

func TestAuthService_ValidateTokenWrongSecret(t *testing.T) {
	mockRepo := new(MockUserRepository)
	issuing := services.NewAuthService(mockRepo, testTokenConfig())
	user := hashedUser(t, "Password1!")

	mockRepo.On("GetByUserName", "alice").Return(user, nil).Once()
	issued, err := issuing.Token("alice", "Password1!")
	require.NoError(t, err)

	otherCfg := testTokenConfig()
	otherCfg.Secret = "different-secret"
	validating := services.NewAuthService(new(MockUserRepository), otherCfg)

	_, err = validating.ValidateToken(issued.AccessToken)
	assert.Error(t, err)
}
