package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/adapter/http/dto"
	"taskdeck/internal/adapter/http/handlers"
	"taskdeck/internal/adapter/http/middleware"
	"taskdeck/internal/core/domain"
	"taskdeck/pkg/apierrors"
)

func newAuthRouter(authMock *authServiceMock) *gin.Engine {
	handler := handlers.NewAuthHandler(authMock, handlers.SessionCookie{
		Name:   testCookieName,
		MaxAge: 3600,
	})

	router := gin.New()
	auth := router.Group("/api/auth", middleware.LanguageMiddleware())
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.Auth(authMock, testCookieName), handler.Me)
	}
	return router
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandler_Register_Success(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("Register", mock.Anything, domain.RegisterInput{
		Email:    "ada@example.com",
		Username: "ada",
		Password: "secret1",
	}).Return(testUser, nil).Once()

	router := newAuthRouter(authMock)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/auth/register",
		`{"username":"ada","email":"ada@example.com","password":"secret1"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Empty(t, rec.Result().Cookies(), "register must not log the user in")

	var got dto.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, testUser.ID, got.User.ID)
	require.Equal(t, "ada@example.com", got.User.Email)
	require.NotContains(t, rec.Body.String(), "password")
	authMock.AssertExpectations(t)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	authMock := new(authServiceMock)
	router := newAuthRouter(authMock)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/auth/register",
		`{"username":"ada","email":"ada@example.com","password":"12345"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid registration payload", got.ErrDetails.Message)
	authMock.AssertNotCalled(t, "Register")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("Register", mock.Anything, mock.Anything).Return(domain.User{}, domain.ErrEmailTaken).Once()

	router := newAuthRouter(authMock)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/auth/register",
		`{"username":"ada","email":"ada@example.com","password":"secret1"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Email already registered", got.ErrDetails.Message)
	authMock.AssertExpectations(t)
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("Login", mock.Anything, "ada@example.com", "secret1").Return(testUser, "signed-token", nil).Once()

	router := newAuthRouter(authMock)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/auth/login",
		`{"email":"ada@example.com","password":"secret1"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, testCookieName, cookies[0].Name)
	require.Equal(t, "signed-token", cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)

	var got dto.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "ada", got.User.Username)
	require.NotContains(t, rec.Body.String(), "password")
	authMock.AssertExpectations(t)
}

func TestAuthHandler_Login_SameResponseForUnknownEmailAndWrongPassword(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("Login", mock.Anything, "nobody@example.com", "secret1").
		Return(domain.User{}, "", domain.ErrInvalidCredentials).Once()
	authMock.On("Login", mock.Anything, "ada@example.com", "wrong").
		Return(domain.User{}, "", domain.ErrInvalidCredentials).Once()

	router := newAuthRouter(authMock)

	recUnknown := httptest.NewRecorder()
	router.ServeHTTP(recUnknown, jsonRequest(http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"secret1"}`))

	recWrong := httptest.NewRecorder()
	router.ServeHTTP(recWrong, jsonRequest(http.MethodPost, "/api/auth/login",
		`{"email":"ada@example.com","password":"wrong"}`))

	require.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	require.Equal(t, http.StatusUnauthorized, recWrong.Code)
	// Identical bodies: the response must not reveal which part failed.
	require.Equal(t, recUnknown.Body.String(), recWrong.Body.String())
	require.Empty(t, recUnknown.Result().Cookies())
	authMock.AssertExpectations(t)
}

func TestAuthHandler_Logout_AlwaysClearsCookie(t *testing.T) {
	authMock := new(authServiceMock)
	router := newAuthRouter(authMock)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "whatever"})
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, testCookieName, cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.True(t, cookies[0].MaxAge < 0)

	var got dto.LogoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Logged out successfully", got.Message)
}

func TestAuthHandler_Me_Success(t *testing.T) {
	authMock := newAuthMockResolving(testUser)
	router := newAuthRouter(authMock)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/auth/me", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, testUser.ID, got.User.ID)
}

func TestAuthHandler_Me_MissingToken(t *testing.T) {
	router := newAuthRouter(new(authServiceMock))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Authentication required", got.ErrDetails.Message)
}
