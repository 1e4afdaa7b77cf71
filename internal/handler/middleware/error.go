package middleware

import (
	"log/slog"
	"net/http"

	"travel-broker/internal/handler/httperr"
	"travel-broker/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public httperr recorded by a handler.
// Server-side failures are logged with the wrapped error's stack.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ge := range c.Errors {
			resp, ok := ge.Meta.(httperr.Response)
			if !ok || resp.Status < http.StatusInternalServerError {
				continue
			}
			slog.ErrorContext(c.Request.Context(), "request failed",
				slog.String("path", c.FullPath()),
				slog.String("message", resp.Error.Message),
				slog.String("error", ge.Err.Error()),
				slog.Any("stack", errs.ExtractStackLines(ge.Err, 8)))
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ge := c.Errors[i]
			if !ge.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ge.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				attrs := []any{
					slog.Any("panic", err),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
				}
				if userID, ok := GetUserID(c); ok {
					attrs = append(attrs, slog.String("user_id", userID.String()))
				}
				slog.ErrorContext(c.Request.Context(), "recovered from panic", attrs...)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
