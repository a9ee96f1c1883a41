package landing

import "github.com/gin-gonic/gin"

// RegisterRoutes registers landing page and countdown routes.
func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/", h.Index)
	r.GET("/api/countdown", h.Countdown)
	r.GET("/api/countdown/stream", h.Stream)
}
