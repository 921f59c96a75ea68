package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/season-link/profiles/internal/delivery/http/response"
	"github.com/season-link/profiles/pkg/apperror"
)

// ErrorHandler maps errors appended to the context onto HTTP responses.
// AppErrors keep their own status and kind; anything else becomes an opaque
// 500 so internals never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			detail := gin.H{"kind": appErr.Kind}
			if appErr.Details != nil {
				detail["violations"] = appErr.Details
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		fmt.Printf("[ERROR] Internal Server Error: %v\n", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
