package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler turns panics and errors attached with c.Error into a generic
// 500 response. Details go to the log only.
func ErrorHandler(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger(c, base).Error("Panic recovered",
					zap.Any("error", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.Stack("stack"),
				)
				internalError(c)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		GetLogger(c, base).Error("Unhandled error",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Strings("errors", c.Errors.Errors()),
		)
		if !c.Writer.Written() {
			internalError(c)
		}
	}
}

func internalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}
