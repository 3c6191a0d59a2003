package middleware

import (
	"errors"
	"net/http"

	"go-blog-backend/internal/delivery/http/response"
	"go-blog-backend/pkg/apperror"
	"go-blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "code", appErr.Code, "path", c.FullPath(), "error", appErr.Err.Error())
				}
				var fields interface{}
				if len(appErr.Fields) > 0 {
					fields = appErr.Fields
				}
				response.Error(c, appErr.Status, appErr.Code, appErr.Message, fields)
			} else {
				// Never expose internal error details to clients. The actual
				// error is logged server-side; the client gets an opaque code.
				logger.Log.Error("Unexpected error", "path", c.FullPath(), "error", err.Error())
				response.Error(c, http.StatusInternalServerError, apperror.CodeServerError,
					"An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
