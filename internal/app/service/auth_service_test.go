package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/auth"
	"taskdeck/internal/core/domain"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func newAuthService(repo *userRepositoryMock) *AuthService {
	hasher := auth.NewPasswordHasher(4)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(repo, hasher, tokens)
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "ada@example.com" &&
			u.Username == "ada" &&
			u.PasswordHash != "" &&
			u.PasswordHash != "secret1" &&
			u.ID != ""
	})).Return(domain.User{ID: "u1", Email: "ada@example.com", Username: "ada"}, nil).Once()

	user, err := newAuthService(repo).Register(context.Background(), domain.RegisterInput{
		Email:    " ada@example.com ",
		Username: "ada",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	repo.AssertExpectations(t)
}

func TestAuthService_Register_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		input domain.RegisterInput
		want  error
	}{
		{"malformed email", domain.RegisterInput{Email: "not-an-email", Username: "ada", Password: "secret1"}, domain.ErrInvalidEmail},
		{"short username", domain.RegisterInput{Email: "ada@example.com", Username: "al", Password: "secret1"}, domain.ErrUsernameTooShort},
		{"short password", domain.RegisterInput{Email: "ada@example.com", Username: "ada", Password: "12345"}, domain.ErrPasswordTooShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(userRepositoryMock)
			_, err := newAuthService(repo).Register(context.Background(), tc.input)
			require.ErrorIs(t, err, tc.want)
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.User{}, domain.ErrEmailTaken).Once()

	_, err := newAuthService(repo).Register(context.Background(), domain.RegisterInput{
		Email:    "ada@example.com",
		Username: "ada",
		Password: "secret1",
	})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := auth.NewPasswordHasher(4).Hash("secret1")
	require.NoError(t, err)

	repo := new(userRepositoryMock)
	repo.On("GetByEmail", mock.Anything, "ada@example.com").Return(
		domain.User{ID: "u1", Email: "ada@example.com", PasswordHash: hash}, nil,
	).Once()
	svc := newAuthService(repo)

	user, token, err := svc.Login(context.Background(), "ada@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.NotEmpty(t, token)

	// The issued token resolves back to the same user.
	repo.On("GetByID", mock.Anything, "u1").Return(
		domain.User{ID: "u1", Email: "ada@example.com"}, nil,
	).Once()
	resolved, err := svc.ResolveSession(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "u1", resolved.ID)
	repo.AssertExpectations(t)
}

func TestAuthService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	hash, err := auth.NewPasswordHasher(4).Hash("secret1")
	require.NoError(t, err)

	repo := new(userRepositoryMock)
	repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(domain.User{}, domain.ErrUserNotFound).Once()
	repo.On("GetByEmail", mock.Anything, "ada@example.com").Return(
		domain.User{ID: "u1", PasswordHash: hash}, nil,
	).Once()

	svc := newAuthService(repo)

	_, _, errUnknown := svc.Login(context.Background(), "nobody@example.com", "secret1")
	_, _, errWrong := svc.Login(context.Background(), "ada@example.com", "wrong-password")

	require.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	require.ErrorIs(t, errWrong, domain.ErrInvalidCredentials)
}

func TestAuthService_ResolveSession_DeletedUser(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("GetByID", mock.Anything, "u1").Return(domain.User{}, domain.ErrUserNotFound).Once()

	svc := newAuthService(repo)
	token, err := svc.tokens.Issue("u1")
	require.NoError(t, err)

	_, err = svc.ResolveSession(context.Background(), token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_ResolveSession_GarbageToken(t *testing.T) {
	svc := newAuthService(new(userRepositoryMock))

	_, err := svc.ResolveSession(context.Background(), "garbage")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}
