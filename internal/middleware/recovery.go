package middleware

import (
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalErrorPage = `<!DOCTYPE html><html><head><title>Something went wrong</title></head>` +
	`<body><h1>Something went wrong</h1><p>Please try again in a moment.</p></body></html>`

// Recovery returns a middleware that recovers from panics and logs them.
// Page requests get an HTML error page, API requests the JSON error body.
// A response that has already started, such as an event stream, is only
// aborted.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			logger.Errorw("panic recovered",
				"error", rec,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"request_id", GetRequestID(c),
				"stack", string(debug.Stack()),
			)

			switch {
			case c.Writer.Written():
				c.Abort()
			case wantsHTML(c.Request):
				c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(internalErrorPage))
				c.Abort()
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": "internal server error",
					},
				})
			}
		}()

		c.Next()
	}
}

func wantsHTML(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
