package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"storefront/storefront-svc/internal/domain"

	"github.com/google/uuid"
)

const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrShortPassword      = fmt.Errorf("password must have at least %d characters", MinPasswordLength)
	ErrInvalidCredentials = errors.New("email or password is incorrect")
)

type AuthService struct {
	users    UserDirectory
	sessions SessionStore
}

func NewAuthService(users UserDirectory, sessions SessionStore) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Login matches the credentials against the remote user directory and caches
// the signed-in user under a fresh session id, which is returned to the client.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.UserSession, error) {
	if !emailPattern.MatchString(email) {
		return "", nil, ErrInvalidEmail
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "", nil, ErrShortPassword
	}

	users, err := s.users.Users(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("load users: %w", err)
	}

	for _, user := range users {
		if user.Email != email || user.Password != password {
			continue
		}

		session := domain.UserSession{
			Name:    user.Name,
			Email:   user.Email,
			Balance: user.Balance,
		}
		sessionID := uuid.NewString()
		if err := s.sessions.Save(ctx, sessionID, session); err != nil {
			return "", nil, fmt.Errorf("save session: %w", err)
		}

		logger.Info().Str("email", email).Msg("user signed in")
		return sessionID, &session, nil
	}

	logger.Warn().Str("email", email).Msg("rejected sign-in")
	return "", nil, ErrInvalidCredentials
}

// Logout is a no-op for a client without a session id.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Clear(ctx, sessionID)
}

func (s *AuthService) Profile(ctx context.Context, sessionID string) (domain.UserSession, bool, error) {
	if sessionID == "" {
		return domain.UserSession{}, false, nil
	}
	return s.sessions.Load(ctx, sessionID)
}
