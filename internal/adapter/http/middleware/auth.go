package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/core/domain"
	"taskdeck/internal/core/ports"
	"taskdeck/pkg/apierrors"
)

const userContextKey = "auth_user"

// Auth resolves the session token into a user before any task route runs.
// The cookie takes precedence over the Authorization header.
func Auth(authService ports.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token := extractToken(c, cookieName)
		if token == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		user, err := authService.ResolveSession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	return ""
}

// CurrentUser returns the user resolved by Auth for this request.
func CurrentUser(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}
