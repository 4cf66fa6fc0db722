package services_test

import (
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"todolist/internal/models"
	"todolist/internal/repositories"
	"todolist/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockSessionRepository is a mock implementation of repositories.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(session *models.Session) error {
	if session.Token == "" {
		session.Token = uuid.New().String()
	}
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByToken(token string) (*models.Session, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func newAuthService(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository) *services.AuthService {
	return services.NewAuthService(userRepo, sessionRepo, "test-secret-key", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := newAuthService(mockUsers, mockSessions)

	// Successful registration stores a bcrypt hash, never the plaintext
	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	user, err := authService.Register("alice", "pw1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "pw1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")))
	mockUsers.AssertExpectations(t)

	// Duplicate username surfaces the unique-constraint violation
	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Return(repositories.ErrDuplicateKey).Once()
	user, err = authService.Register("alice", "pw2")
	assert.ErrorIs(t, err, services.ErrDuplicateUsername)
	assert.Nil(t, user)
	mockUsers.AssertExpectations(t)

	// Empty fields never reach the repository
	_, err = authService.Register("", "pw")
	assert.ErrorIs(t, err, services.ErrMissingField)
	_, err = authService.Register("   ", "pw")
	assert.ErrorIs(t, err, services.ErrMissingField)
	_, err = authService.Register("alice", "")
	assert.ErrorIs(t, err, services.ErrMissingField)

	// Over-length input is rejected before hashing or storage; SQLite would
	// happily persist a username longer than the column allows
	_, err = authService.Register(strings.Repeat("a", 81), "pw")
	assert.ErrorIs(t, err, services.ErrInvalidInput)
	_, err = authService.Register("alice", strings.Repeat("p", 73))
	assert.ErrorIs(t, err, services.ErrInvalidInput)
	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	user, err = authService.Register(strings.Repeat("a", 80), strings.Repeat("p", 72))
	assert.NoError(t, err)
	assert.Len(t, user.Username, 80)
	mockUsers.AssertNumberOfCalls(t, "Create", 3)
}

func TestAuthService_Login(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := newAuthService(mockUsers, mockSessions)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           1,
		Username:     "testuser",
		PasswordHash: string(hash),
	}

	// Successful login creates a session and returns a signed cookie token
	mockUsers.On("GetByUsername", "testuser").Return(user, nil).Once()
	mockSessions.On("Create", mock.AnythingOfType("*models.Session")).Return(nil).Once()
	token, err := authService.Login("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockUsers.AssertExpectations(t)
	mockSessions.AssertExpectations(t)

	// Wrong password
	mockUsers.On("GetByUsername", "testuser").Return(user, nil).Once()
	_, err = authService.Login("testuser", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockUsers.AssertExpectations(t)

	// Unknown user is indistinguishable from a wrong password
	mockUsers.On("GetByUsername", "nobody").Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.Login("nobody", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockUsers.AssertExpectations(t)
	mockSessions.AssertNumberOfCalls(t, "Create", 1)
}

func TestAuthService_ResolveSession(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := newAuthService(mockUsers, mockSessions)

	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	user := &models.User{ID: 7, Username: "resolver", PasswordHash: string(hash)}

	// Log in to obtain a real cookie token
	var sessionToken string
	mockUsers.On("GetByUsername", "resolver").Return(user, nil).Once()
	mockSessions.On("Create", mock.AnythingOfType("*models.Session")).
		Run(func(args mock.Arguments) {
			sessionToken = args.Get(0).(*models.Session).Token
		}).
		Return(nil).Once()
	cookieToken, err := authService.Login("resolver", "pw")
	assert.NoError(t, err)

	// Valid session resolves to the user
	mockSessions.On("GetByToken", mock.AnythingOfType("string")).
		Return(&models.Session{Token: sessionToken, UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()
	mockUsers.On("GetByID", uint(7)).Return(user, nil).Once()
	resolved, err := authService.ResolveSession(cookieToken)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), resolved.ID)
	mockUsers.AssertExpectations(t)
	mockSessions.AssertExpectations(t)

	// Missing cookie
	_, err = authService.ResolveSession("")
	assert.ErrorIs(t, err, services.ErrUnauthenticated)

	// Tampered cookie never reaches the store
	_, err = authService.ResolveSession("not.a.real-token")
	assert.ErrorIs(t, err, services.ErrUnauthenticated)

	// Session invalidated by logout
	mockSessions.On("GetByToken", mock.AnythingOfType("string")).Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.ResolveSession(cookieToken)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
	mockSessions.AssertExpectations(t)

	// Expired session row is rejected and cleaned up
	mockSessions.On("GetByToken", mock.AnythingOfType("string")).
		Return(&models.Session{Token: sessionToken, UserID: 7, ExpiresAt: time.Now().Add(-time.Minute)}, nil).Once()
	mockSessions.On("Delete", sessionToken).Return(nil).Once()
	_, err = authService.ResolveSession(cookieToken)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
	mockSessions.AssertExpectations(t)
}

func TestAuthService_Logout(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := newAuthService(mockUsers, mockSessions)

	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	user := &models.User{ID: 3, Username: "leaver", PasswordHash: string(hash)}

	var sessionToken string
	mockUsers.On("GetByUsername", "leaver").Return(user, nil).Once()
	mockSessions.On("Create", mock.AnythingOfType("*models.Session")).
		Run(func(args mock.Arguments) {
			sessionToken = args.Get(0).(*models.Session).Token
		}).
		Return(nil).Once()
	cookieToken, err := authService.Login("leaver", "pw")
	assert.NoError(t, err)

	// Logout deletes the session row; repeating it is harmless
	mockSessions.On("Delete", sessionToken).Return(nil).Twice()
	authService.Logout(cookieToken)
	authService.Logout(cookieToken)
	mockSessions.AssertExpectations(t)

	// Logout with garbage input is a no-op
	authService.Logout("")
	authService.Logout("garbage")
	mockSessions.AssertNumberOfCalls(t, "Delete", 2)
}
