// Package router provides sponsorship module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/innov8x/internal/middleware"
	"github.com/festy23/innov8x/internal/notify"
	"github.com/festy23/innov8x/internal/sponsorship/handler"
	"github.com/festy23/innov8x/internal/sponsorship/repository"
	"github.com/festy23/innov8x/internal/sponsorship/service"
)

// Options configures the sponsorship routes.
type Options struct {
	Notifier  notify.Notifier
	Logger    *zap.SugaredLogger
	EventName string
	// RateLimiter guards submissions. Nil disables limiting.
	RateLimiter *middleware.RateLimiter
}

// RegisterRoutes registers sponsorship module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, opts Options) {
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	repo := repository.New(db)
	svc := service.New(repo, opts.Notifier, opts.Logger)
	h := handler.New(svc, opts.Logger, opts.EventName)

	r.GET("/sponsor", h.Page)
	r.GET("/api/sponsorships/:id", h.Get)

	if opts.RateLimiter == nil {
		r.POST("/sponsor", h.PostPage)
		r.POST("/api/sponsorships", h.Submit)
		return
	}

	// The inquiry form has no edit actions, every page post is a submission.
	r.POST("/sponsor", opts.RateLimiter.HandlerWith(h.RejectPage), h.PostPage)
	r.POST("/api/sponsorships", opts.RateLimiter.Handler(), h.Submit)
}
