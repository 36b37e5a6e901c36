package middleware

import (
	"errors"
	"net/http"

	"soa-bango-backend/internal/delivery/http/response"
	"soa-bango-backend/pkg/apperror"
	"soa-bango-backend/pkg/logger"

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
				// The wrapped cause stays server-side; clients only see the
				// prepared user-facing message.
				if appErr.Err != nil {
					logger.Log.Error("request failed", "path", c.Request.URL.Path, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				logger.Log.Error("unexpected error", "path", c.Request.URL.Path, "error", err)
				response.Error(c, http.StatusInternalServerError, "Une erreur s'est produite. Veuillez réessayer plus tard.")
			}
		}
	}
}
