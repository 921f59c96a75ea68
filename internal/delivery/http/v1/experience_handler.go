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

type ExperienceHandler struct {
	experienceUC domain.ExperienceUsecase
}

func NewExperienceHandler(protected *gin.RouterGroup, experienceUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{experienceUC: experienceUC}

	protected.GET("/user/:user_id/experiences", handler.ListByCandidate)
	protected.POST("/experience", handler.Create)
	protected.GET("/experience/:experience_id", handler.GetByID)
	protected.PUT("/experience/:experience_id", handler.Update)
	protected.DELETE("/experience/:experience_id", handler.Delete)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperror.Forbidden("No identity on request"))
		return
	}

	var experience domain.Experience
	if err := c.ShouldBindJSON(&experience); err != nil {
		c.Error(apperror.BadRequest("Malformed request body: " + err.Error()))
		return
	}

	if err := h.experienceUC.Create(c.Request.Context(), identity.UserID, &experience); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience created", experience)
}

func (h *ExperienceHandler) ListByCandidate(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.Error(apperror.BadRequest("Malformed user id"))
		return
	}

	experiences, err := h.experienceUC.ListByCandidate(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experiences", experiences)
}

func (h *ExperienceHandler) GetByID(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperror.Forbidden("No identity on request"))
		return
	}

	experienceID, err := uuid.Parse(c.Param("experience_id"))
	if err != nil {
		c.Error(apperror.BadRequest("Malformed experience id"))
		return
	}

	experience, err := h.experienceUC.GetByID(c.Request.Context(), experienceID, identity.UserID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience", experience)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperror.Forbidden("No identity on request"))
		return
	}

	experienceID, err := uuid.Parse(c.Param("experience_id"))
	if err != nil {
		c.Error(apperror.BadRequest("Malformed experience id"))
		return
	}

	var experience domain.Experience
	if err := c.ShouldBindJSON(&experience); err != nil {
		c.Error(apperror.BadRequest("Malformed request body: " + err.Error()))
		return
	}

	if err := h.experienceUC.Update(c.Request.Context(), experienceID, identity.UserID, &experience); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", experience)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperror.Forbidden("No identity on request"))
		return
	}

	experienceID, err := uuid.Parse(c.Param("experience_id"))
	if err != nil {
		c.Error(apperror.BadRequest("Malformed experience id"))
		return
	}

	if err := h.experienceUC.Delete(c.Request.Context(), experienceID, identity.UserID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience deleted", nil)
}
