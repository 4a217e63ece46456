package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskdeck/internal/adapter/http/dto"
	"taskdeck/internal/adapter/http/mapper"
	"taskdeck/internal/adapter/http/middleware"
	"taskdeck/internal/core/domain"
	"taskdeck/internal/core/ports"
	"taskdeck/pkg/apierrors"
)

// SessionCookie describes how the session token travels back to browsers.
type SessionCookie struct {
	Name   string
	MaxAge int
	Secure bool
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      SessionCookie
}

func NewAuthHandler(authService ports.AuthService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRegisterPayload, lang),
		)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgEmailTaken, lang),
			)
		case errors.Is(err, domain.ErrInvalidEmail),
			errors.Is(err, domain.ErrUsernameTooShort),
			errors.Is(err, domain.ErrPasswordTooShort):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRegisterPayload, lang),
			)
		default:
			zap.L().Error("failed to register user", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRegister, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.SessionResponse{User: mapper.ToUserItem(user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A malformed login attempt gets the same answer as a wrong password.
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
		)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log user in", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}

	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, dto.SessionResponse{User: mapper.ToUserItem(user)})
}

// Logout always succeeds from the client's perspective: the cookie is
// cleared no matter what.
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := middleware.GetLang(c)

	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, dto.LogoutResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgLoggedOut, lang),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	lang := middleware.GetLang(c)

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{User: mapper.ToUserItem(user)})
}
