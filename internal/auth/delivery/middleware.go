package delivery

import (
	"errors"
	"net/http"
	"strings"

	authdomain "todo-backend/internal/auth/domain"
	"todo-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	ctxUserKey   = "user"
	ctxUserIDKey = "userID"
)

func AuthMiddleware(authUsecase usecase.AuthUsecase, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthenticated(c)
			return
		}

		user, err := authUsecase.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, authdomain.ErrUnauthenticated) {
				abortUnauthenticated(c)
				return
			}
			log.Error().Err(err).Msg("resolve bearer token")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxUserIDKey, user.ID)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) *authdomain.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*authdomain.User)
	return user
}

// CurrentUserID returns the ID of the user stored by AuthMiddleware, or 0.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(ctxUserIDKey)
}

// bearerToken extracts the credentials from "Bearer <token>". The scheme is
// matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

func abortUnauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authdomain.ErrUnauthenticated.Error()})
}
