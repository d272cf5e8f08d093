package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hello-api-go/internal/constants"
	apperrors "hello-api-go/internal/errors"
)

// ErrorHandler renders the last error attached to the context, if the
// handler chain did not write a response itself
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apperrors.AsAppError(c.Errors.Last().Err)
		if appErr.StatusCode >= http.StatusInternalServerError {
			logger.Error(fmt.Sprintf("%s Request failed", constants.APIName()),
				zap.String("path", c.Request.URL.Path),
				zap.Error(appErr),
			)
		}
		writeError(c, appErr)
	}
}

// Recovery turns panics into 500 responses in the same shape as ErrorHandler
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error(fmt.Sprintf("%s Panic recovered", constants.APIName()),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		writeError(c, apperrors.NewInternalError(fmt.Errorf("panic: %v", recovered)))
		c.Abort()
	})
}

// NotFound is the terminal NoRoute handler
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		writeError(c, apperrors.NewNotFoundError("Not Found"))
	}
}

func writeError(c *gin.Context, appErr *apperrors.AppError) {
	c.JSON(appErr.StatusCode, gin.H{
		"error":  appErr.Message,
		"status": appErr.StatusCode,
	})
}
