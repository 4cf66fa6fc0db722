package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"todolist/internal/models"
	"todolist/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookieName is the cookie under which the signed session token travels.
const SessionCookieName = "todo_session"

const (
	// maxUsernameLen matches the users table's varchar(80); SQLite does not
	// enforce column lengths, so the service has to.
	maxUsernameLen = 80
	// maxPasswordLen is bcrypt's 72-byte input limit.
	maxPasswordLen = 72
)

// AuthService handles registration, login, and session resolution.
type AuthService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	secretKey   []byte
	sessionTTL  time.Duration
}

// NewAuthService creates a new AuthService. secretKey signs session cookies;
// sessionTTL bounds how long a login stays valid.
func NewAuthService(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository, secretKey string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		secretKey:   []byte(secretKey),
		sessionTTL:  sessionTTL,
	}
}

// Register creates a new user with a bcrypt-hashed password. The insert is a
// single statement relying on the store's unique index, so concurrent
// registrations of the same username cannot both succeed.
func (s *AuthService) Register(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingField
	}
	if len(username) > maxUsernameLen || len(password) > maxPasswordLen {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials, records a server-side session, and returns
// the signed cookie token. Unknown usernames and wrong passwords both come
// back as ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	session := &models.Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": session.Token,
		"exp": session.ExpiresAt.Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ResolveSession returns the user behind a signed cookie token, or
// ErrUnauthenticated when the cookie is absent, tampered with, expired, or
// its session was invalidated by logout.
func (s *AuthService) ResolveSession(cookieToken string) (*models.User, error) {
	sid, err := s.sessionID(cookieToken)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessionRepo.GetByToken(sid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.sessionRepo.Delete(session.Token)
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to look up session user: %w", err)
	}
	return user, nil
}

// Logout invalidates the session behind the cookie token. It is idempotent
// and always succeeds from the caller's point of view.
func (s *AuthService) Logout(cookieToken string) {
	sid, err := s.sessionID(cookieToken)
	if err != nil {
		return
	}
	_ = s.sessionRepo.Delete(sid)
}

// sessionID validates the cookie's signature and extracts the session token.
func (s *AuthService) sessionID(cookieToken string) (string, error) {
	if cookieToken == "" {
		return "", ErrUnauthenticated
	}

	token, err := jwt.Parse(cookieToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("session token missing sid claim")
	}
	return sid, nil
}
