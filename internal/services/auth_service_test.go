package services_test

import (
	"fmt"
	"testing"

	"bookstore/internal/models"
	"bookstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	user := &models.User{Username: "newuser", Email: "new@example.com"}

	mockRepo.On("GetByUsername", "newuser").Return(nil, fmt.Errorf("user with username newuser not found")).Once()
	mockRepo.On("GetByEmail", "new@example.com").Return(nil, fmt.Errorf("user with email new@example.com not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := service.RegisterUser(user, "password123", "password123")
	assert.NoError(t, err)
	// The password is stored hashed and the role is forced to customer.
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	assert.Equal(t, models.RoleCustomer, user.Role)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUserPasswordMismatch(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	err := service.RegisterUser(&models.User{Username: "u", Email: "u@example.com"}, "password123", "different")
	assert.ErrorIs(t, err, services.ErrPasswordMismatch)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_RegisterUserDuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	existing := &models.User{ID: "user-1", Username: "taken"}
	mockRepo.On("GetByUsername", "taken").Return(existing, nil).Once()

	err := service.RegisterUser(&models.User{Username: "taken", Email: "other@example.com"}, "password123", "password123")
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUserDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	mockRepo.On("GetByUsername", "fresh").Return(nil, fmt.Errorf("user with username fresh not found")).Once()
	mockRepo.On("GetByEmail", "dup@example.com").Return(&models.User{ID: "user-1"}, nil).Once()

	err := service.RegisterUser(&models.User{Username: "fresh", Email: "dup@example.com"}, "password123", "password123")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginAndValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Username: "testuser", Role: models.RoleAdmin, PasswordHash: string(hash)}
	mockRepo.On("GetByUsername", "testuser").Return(user, nil)

	token, err := service.LoginUser("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "testuser", claims["username"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	mockRepo.On("GetByUsername", "testuser").Return(&models.User{Username: "testuser", PasswordHash: string(hash)}, nil)

	token, err := service.LoginUser("testuser", "wrong")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	mockRepo.On("GetByUsername", "ghost").Return(nil, fmt.Errorf("user with username ghost not found"))

	token, err := service.LoginUser("ghost", "whatever")
	assert.Empty(t, token)
	// Unknown user and bad password are indistinguishable.
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_ValidateTokenRejectsGarbage(t *testing.T) {
	service := services.NewAuthService(new(MockUserRepository), "test_jwt_secret")

	claims, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
