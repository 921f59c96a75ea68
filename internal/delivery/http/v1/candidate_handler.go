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

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

// NewCandidateHandler registers the candidate routes. Creation and listing
// are reachable without an identity; everything else sits behind the
// identity middleware, and delete additionally requires the admin role.
func NewCandidateHandler(public, protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	public.POST("/user", handler.Create)
	public.GET("/users", handler.List)

	protected.GET("/user/me", handler.GetSelf)
	protected.PUT("/user/me", handler.UpdateSelf)
	protected.GET("/user/:user_id", handler.GetByID)
	protected.DELETE("/user/:user_id", middleware.RequireRole(domain.RoleAdmin), handler.Delete)
}

// Create provisions the identity-provider account and persists the profile.
func (h *CandidateHandler) Create(c *gin.Context) {
	var req domain.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Malformed request body: " + err.Error()))
		return
	}

	candidate, err := h.candidateUC.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// List returns candidates matching the filter, capped and redacted according
// to the caller's subscription tier.
func (h *CandidateHandler) List(c *gin.Context) {
	var filter domain.CandidateFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.Error(apperror.BadRequest("Malformed request body: " + err.Error()))
		return
	}

	candidates, err := h.candidateUC.List(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates", candidates)
}

func (h *CandidateHandler) GetSelf(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperror.Forbidden("No identity on request"))
		return
	}

	candidate, err := h.candidateUC.GetByID(c.Request.Context(), identity.UserID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate", candidate)
}

// UpdateSelf writes the payload keyed by the caller's own id; the payload id
// is ignored.
func (h *CandidateHandler) UpdateSelf(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperror.Forbidden("No identity on request"))
		return
	}

	var candidate domain.Candidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.Error(apperror.BadRequest("Malformed request body: " + err.Error()))
		return
	}

	if err := h.candidateUC.Update(c.Request.Context(), identity.UserID, &candidate); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

func (h *CandidateHandler) GetByID(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.Error(apperror.BadRequest("Malformed user id"))
		return
	}

	candidate, err := h.candidateUC.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate", candidate)
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.Error(apperror.BadRequest("Malformed user id"))
		return
	}

	if err := h.candidateUC.Delete(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate deleted", nil)
}
