package middleware

import (
	"errors"
	"net/http"

	"quickgigs-backend/internal/delivery/http/response"
	"quickgigs-backend/pkg/apperror"
	"quickgigs-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors attached to the context onto the API's error body.
// The stack field (the underlying error text) is suppressed in release mode so
// internals never leak to production clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		release := gin.Mode() == gin.ReleaseMode

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			stack := ""
			if !release && appErr.Err != nil {
				stack = appErr.Err.Error()
			}
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed", "error", err, "path", c.FullPath())
			}
			response.Error(c, appErr.Code, appErr.Message, stack)
			return
		}

		logger.Log.Error("unhandled error", "error", err, "path", c.FullPath())
		stack := ""
		if !release {
			stack = err.Error()
		}
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", stack)
	}
}
