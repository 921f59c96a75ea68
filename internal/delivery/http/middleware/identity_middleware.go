package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/season-link/profiles/internal/delivery/http/response"
	"github.com/season-link/profiles/internal/domain"
	"github.com/season-link/profiles/pkg/apperror"
)

const (
	HeaderUserID    = "X-User-Id"
	HeaderUserRoles = "X-User-Roles"
	HeaderRequestID = "X-Request-Id"
)

// Identity parses the three gateway-forwarded headers into a typed
// domain.Identity and stores it on the context. It is a pure parse step:
// failures abort with a 400 before any handler logic runs, and an
// unrecognized role token is not a failure (it maps to RoleUnknown).
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, appErr := ExtractIdentity(c.Request.Header)
		if appErr != nil {
			response.Error(c, appErr.Code, appErr.Message, appErr.Kind)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyIdentity), identity)
		c.Set(string(domain.KeyRequestID), identity.RequestID.String())

		c.Next()
	}
}

// ExtractIdentity builds an Identity from a raw header set.
func ExtractIdentity(h http.Header) (*domain.Identity, *apperror.AppError) {
	rawUserID := h.Get(HeaderUserID)
	if rawUserID == "" {
		return nil, apperror.MissingHeader(HeaderUserID)
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, apperror.MalformedHeader(HeaderUserID)
	}

	// An empty or unrecognized role list is not an error; it simply carries
	// no trusted roles. Only the header's absence is.
	if h.Values(HeaderUserRoles) == nil {
		return nil, apperror.MissingHeader(HeaderUserRoles)
	}
	var roles []domain.Role
	for _, token := range strings.Split(h.Get(HeaderUserRoles), ",") {
		roles = append(roles, domain.RoleFromToken(strings.TrimSpace(token)))
	}

	rawRequestID := h.Get(HeaderRequestID)
	if rawRequestID == "" {
		return nil, apperror.MissingHeader(HeaderRequestID)
	}
	requestID, err := uuid.Parse(rawRequestID)
	if err != nil {
		return nil, apperror.MalformedHeader(HeaderRequestID)
	}

	return &domain.Identity{
		UserID:    userID,
		Roles:     roles,
		RequestID: requestID,
	}, nil
}

// IdentityFrom returns the Identity stored by the Identity middleware.
func IdentityFrom(c *gin.Context) (*domain.Identity, bool) {
	value, ok := c.Get(string(domain.KeyIdentity))
	if !ok {
		return nil, false
	}
	identity, ok := value.(*domain.Identity)
	return identity, ok
}
