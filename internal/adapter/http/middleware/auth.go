package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/pkg"

	"github.com/gin-gonic/gin"
)

const identityKey = "session_identity"

// Authorizer validates a bearer token against the active session.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (entities.Identity, error)
}

// RequireSession rejects requests without a bearer token matching the active session
// and stores the session identity on the gin context.
func RequireSession(auth Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := auth.Authorize(c.Request.Context(), bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			appErr := pkg.NewDomainError("UNAUTHENTICATED", apperr.Reason(err), err, http.StatusUnauthorized)
			if !errors.Is(err, apperr.ErrUnauthenticated) {
				log.Printf("[http][middleware] session check failed path=%s err=%v", c.FullPath(), err)
				appErr = pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by RequireSession.
func IdentityFrom(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return entities.Identity{}, false
	}
	identity, ok := v.(entities.Identity)
	return identity, ok
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
