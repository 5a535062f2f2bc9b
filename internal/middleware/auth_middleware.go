package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/mrmarton/REST-API/internal/app/models"
	"github.com/mrmarton/REST-API/internal/app/models/dto"
	"github.com/mrmarton/REST-API/internal/app/repositories"
	"github.com/mrmarton/REST-API/internal/pkg/apperrors"
	"github.com/mrmarton/REST-API/internal/pkg/auth"
)

// Context keys set by the basic-auth gate
const (
	ContextUserKey   = "currentUser"
	ContextUserIDKey = "userID"
)

// accessDeniedMessage is the single user-visible body for every
// authentication failure. Sub-reasons are logged, never returned, so the
// response does not reveal whether an account exists.
const accessDeniedMessage = "access denied"

// AuthMiddleware gates protected routes with HTTP Basic Authentication
type AuthMiddleware struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(userRepo repositories.IUserRepository, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		userRepo: userRepo,
		logger:   logger,
	}
}

// BasicAuth resolves the caller from the Authorization header. The presented
// identifier is matched against stored email addresses with a single indexed
// lookup; the secret is verified against the stored bcrypt hash. On success
// the resolved user is attached to the request context.
func (m *AuthMiddleware) BasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, err := auth.ExtractBasicCredentials(c.GetHeader("Authorization"))
		if err != nil {
			m.logger.Warn().Err(err).Msg("Authentication failed: missing credentials")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessageResponse(accessDeniedMessage))
			return
		}

		user, err := m.userRepo.GetByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				m.logger.Warn().Str("email", email).Msg("Authentication failed: unknown identifier")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessageResponse(accessDeniedMessage))
				return
			}
			m.logger.Error().Err(err).Msg("Authentication lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewMessageResponse("internal server error"))
			return
		}

		if !auth.CheckPassword(user.Password, password) {
			m.logger.Warn().Str("email", email).Msg("Authentication failed: bad secret")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessageResponse(accessDeniedMessage))
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)

		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by BasicAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
