package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/season-link/profiles/internal/delivery/http/middleware"
	"github.com/season-link/profiles/internal/delivery/http/response"
	"github.com/season-link/profiles/internal/domain"
	"github.com/season-link/profiles/pkg/apperror"
)

type ReferenceHandler struct {
	referenceUC domain.ReferenceUsecase
}

func NewReferenceHandler(protected *gin.RouterGroup, referenceUC domain.ReferenceUsecase) {
	handler := &ReferenceHandler{referenceUC: referenceUC}

	protected.GET("/user/:user_id/references", handler.ListByCandidate)
	protected.POST("/reference", handler.Create)
	protected.GET("/reference/:reference_id", handler.GetByID)
	protected.PUT("/reference/:reference_id", handler.Update)
	protected.DELETE("/reference/:reference_id", handler.Delete)
}

func (h *ReferenceHandler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperror.Forbidden("No identity on request"))
		return
	}

	var reference domain.Reference
	if err := c.ShouldBindJSON(&reference); err != nil {
		c.Error(apperror.BadRequest("Malformed request body: " + err.Error()))
		return
	}

	if err := h.referenceUC.Create(c.Request.Context(), identity.UserID, &reference); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Reference created", reference)
}

func (h *ReferenceHandler) ListByCandidate(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.Error(apperror.BadRequest("Malformed user id"))
		return
	}

	references, err := h.referenceUC.ListByCandidate(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "References", references)
}

func (h *ReferenceHandler) GetByID(c *gin.Context) {
	referenceID, err := uuid.Parse(c.Param("reference_id"))
	if err != nil {
		c.Error(apperror.BadRequest("Malformed reference id"))
		return
	}

	reference, err := h.referenceUC.GetByID(c.Request.Context(), referenceID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reference", reference)
}

func (h *ReferenceHandler) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperror.Forbidden("No identity on request"))
		return
	}

	referenceID, err := uuid.Parse(c.Param("reference_id"))
	if err != nil {
		c.Error(apperror.BadRequest("Malformed reference id"))
		return
	}

	var reference domain.Reference
	if err := c.ShouldBindJSON(&reference); err != nil {
		c.Error(apperror.BadRequest("Malformed request body: " + err.Error()))
		return
	}

	if err := h.referenceUC.Update(c.Request.Context(), referenceID, identity.UserID, &reference); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reference updated", reference)
}

func (h *ReferenceHandler) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperror.Forbidden("No identity on request"))
		return
	}

	referenceID, err := uuid.Parse(c.Param("reference_id"))
	if err != nil {
		c.Error(apperror.BadRequest("Malformed reference id"))
		return
	}

	if err := h.referenceUC.Delete(c.Request.Context(), referenceID, identity.UserID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reference deleted", nil)
}
