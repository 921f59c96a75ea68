package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/season-link/profiles/internal/delivery/http/middleware"
	"github.com/season-link/profiles/internal/domain"
	"github.com/season-link/profiles/pkg/apperror"
)

func validHeaders() http.Header {
	h := http.Header{}
	h.Set("X-User-Id", uuid.NewString())
	h.Set("X-User-Roles", "client_candidate")
	h.Set("X-Request-Id", uuid.NewString())
	return h
}

func TestExtractIdentity(t *testing.T) {
	t.Run("valid headers produce a full identity", func(t *testing.T) {
		h := validHeaders()
		identity, appErr := middleware.ExtractIdentity(h)
		require.Nil(t, appErr)
		assert.Equal(t, h.Get("X-User-Id"), identity.UserID.String())
		assert.Equal(t, h.Get("X-Request-Id"), identity.RequestID.String())
		assert.Equal(t, []domain.Role{domain.RoleCandidate}, identity.Roles)
	})

	t.Run("each missing header fails with missing_header", func(t *testing.T) {
		for _, name := range []string{"X-User-Id", "X-User-Roles", "X-Request-Id"} {
			h := validHeaders()
			h.Del(name)
			identity, appErr := middleware.ExtractIdentity(h)
			assert.Nil(t, identity, name)
			require.NotNil(t, appErr, name)
			assert.Equal(t, apperror.KindMissingHeader, appErr.Kind, name)
			assert.Equal(t, http.StatusBadRequest, appErr.Code, name)
		}
	})

	t.Run("malformed uuid headers fail with malformed_header", func(t *testing.T) {
		for _, name := range []string{"X-User-Id", "X-Request-Id"} {
			h := validHeaders()
			h.Set(name, "not-a-uuid")
			identity, appErr := middleware.ExtractIdentity(h)
			assert.Nil(t, identity, name)
			require.NotNil(t, appErr, name)
			assert.Equal(t, apperror.KindMalformedHeader, appErr.Kind, name)
		}
	})

	t.Run("unrecognized role tokens map to unknown, never an error", func(t *testing.T) {
		h := validHeaders()
		h.Set("X-User-Roles", "client_admin,whatever,ADMIN,")
		identity, appErr := middleware.ExtractIdentity(h)
		require.Nil(t, appErr)
		assert.Equal(t, []domain.Role{
			domain.RoleAdmin, domain.RoleUnknown, domain.RoleUnknown, domain.RoleUnknown,
		}, identity.Roles)
	})

	t.Run("empty role list is not an error and carries no trusted roles", func(t *testing.T) {
		h := validHeaders()
		h.Set("X-User-Roles", "")
		identity, appErr := middleware.ExtractIdentity(h)
		require.Nil(t, appErr)
		assert.False(t, identity.HasRole(domain.RoleAdmin))
		assert.False(t, identity.HasRole(domain.RoleCandidate))
	})
}

func TestIdentityMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(handlerRan *bool) *gin.Engine {
		r := gin.New()
		r.Use(middleware.Identity())
		r.GET("/probe", func(c *gin.Context) {
			*handlerRan = true
			identity, ok := middleware.IdentityFrom(c)
			assert.True(t, ok)
			assert.NotNil(t, identity)
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("missing header short-circuits before the handler", func(t *testing.T) {
		handlerRan := false
		r := newRouter(&handlerRan)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, handlerRan)
	})

	t.Run("valid headers reach the handler", func(t *testing.T) {
		handlerRan := false
		r := newRouter(&handlerRan)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header = validHeaders()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, handlerRan)
	})
}
