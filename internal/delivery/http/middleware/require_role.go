package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/season-link/profiles/internal/delivery/http/response"
	"github.com/season-link/profiles/internal/domain"
	"github.com/season-link/profiles/pkg/apperror"
)

// RequireRole blocks requests whose identity does not carry the exact role.
// It must run after Identity(). The rejection names the missing role but
// never the targeted resource.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			// Identity() was not applied to this route; fail closed.
			response.Error(c, http.StatusForbidden, "No identity on request", apperror.KindForbidden)
			c.Abort()
			return
		}

		if !identity.HasRole(role) {
			appErr := apperror.Forbidden(fmt.Sprintf("The user does not have the required role: %s", role))
			response.Error(c, appErr.Code, appErr.Message, appErr.Kind)
			c.Abort()
			return
		}

		c.Next()
	}
}
