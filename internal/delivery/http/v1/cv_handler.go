package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/season-link/profiles/internal/delivery/http/middleware"
	"github.com/season-link/profiles/internal/delivery/http/response"
	"github.com/season-link/profiles/internal/domain"
	"github.com/season-link/profiles/pkg/apperror"
)

type CVHandler struct {
	cvUC domain.CVUsecase
}

func NewCVHandler(protected *gin.RouterGroup, cvUC domain.CVUsecase) {
	handler := &CVHandler{cvUC: cvUC}

	protected.POST("/user/me/cv", handler.Upload)
	protected.GET("/user/me/cv", handler.DownloadSelf)
	protected.GET("/user/:user_id/cv", handler.Download)
}

// Upload stores the single multipart file as the caller's résumé,
// overwriting any previous one.
func (h *CVHandler) Upload(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperror.Forbidden("No identity on request"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file found"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Unreadable file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.BadRequest("Unreadable file"))
		return
	}

	if err := h.cvUC.Upload(c.Request.Context(), identity.UserID, data); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "CV uploaded", nil)
}

func (h *CVHandler) DownloadSelf(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperror.Forbidden("No identity on request"))
		return
	}

	h.serve(c, identity.UserID)
}

func (h *CVHandler) Download(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.Error(apperror.BadRequest("Malformed user id"))
		return
	}

	h.serve(c, userID)
}

func (h *CVHandler) serve(c *gin.Context, userID uuid.UUID) {
	data, err := h.cvUC.Download(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "application/octet-stream", data)
}
