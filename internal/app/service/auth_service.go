package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"taskdeck/internal/auth"
	"taskdeck/internal/core/domain"
	"taskdeck/internal/core/ports"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
	// bcrypt silently truncates past 72 bytes.
	maxPasswordLength = 72
)

type AuthService struct {
	userRepository ports.UserRepository
	hasher         *auth.PasswordHasher
	tokens         *auth.TokenManager
}

func NewAuthService(userRepository ports.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
	}
}

// Register creates the account but does not log the user in.
func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, domain.ErrInvalidEmail
	}

	username := strings.TrimSpace(input.Username)
	if len(username) < minUsernameLength {
		return domain.User{}, domain.ErrUsernameTooShort
	}

	if len(input.Password) < minPasswordLength || len(input.Password) > maxPasswordLength {
		return domain.User{}, domain.ErrPasswordTooShort
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
	}

	// The unique index on email is the source of truth for duplicates; the
	// repository maps the violation to domain.ErrEmailTaken.
	return s.userRepository.Create(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.userRepository.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *AuthService) ResolveSession(ctx context.Context, token string) (domain.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, auth.ErrInvalidToken
		}
		return domain.User{}, err
	}

	return user, nil
}

var _ ports.AuthService = (*AuthService)(nil)
