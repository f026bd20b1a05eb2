package middleware

import (
	"strings"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bankcards/internal/domain/usecase/auth"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/httperr"
	applogger "github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// BearerPrefix must start every Authorization header
const BearerPrefix = "Bearer "

const identityKey = "identity"

// IdentityFrom returns the caller attached by Authenticate
func IdentityFrom(c *gin.Context) (*entity.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := value.(*entity.Identity)
	return identity, ok && identity != nil
}

// SetIdentity attaches the caller to the request
func SetIdentity(c *gin.Context, identity *entity.Identity) {
	c.Set(identityKey, identity)
}

// Authenticate resolves the bearer token into an identity. Requests without an
// Authorization header pass through anonymously; route guards decide whether that is enough.
func Authenticate(tokens usecase.TokenUseCase, renderer *httperr.Renderer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFrom(c); ok {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(header, BearerPrefix) {
			renderer.Abort(c, errs.ErrMalformedAuthHeader)
			return
		}

		identity, err := tokens.Authenticate(c.Request.Context(), strings.TrimSpace(header[len(BearerPrefix):]))
		if err != nil {
			if errs.IsTokenError(err) {
				renderer.Abort(c, err)
				return
			}
			logger.Error("Failed to authenticate request", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": applogger.RequestIDFromContext(c.Request.Context()),
				"error":      err.Error(),
			})
			renderer.Abort(c, errs.ErrInternalServer)
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// RequireAuthenticated rejects anonymous callers
func RequireAuthenticated(renderer *httperr.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFrom(c); !ok {
			renderer.Abort(c, errs.ErrUnauthenticated)
			return
		}
		c.Next()
	}
}

// RequireRole rejects callers without the role
func RequireRole(renderer *httperr.Renderer, role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			renderer.Abort(c, errs.ErrUnauthenticated)
			return
		}
		if !auth.Authorize(identity, role) {
			renderer.Abort(c, errs.ErrAccessDenied)
			return
		}
		c.Next()
	}
}
