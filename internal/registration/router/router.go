// Package router provides registration module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/innov8x/internal/middleware"
	"github.com/festy23/innov8x/internal/notify"
	"github.com/festy23/innov8x/internal/registration/handler"
	"github.com/festy23/innov8x/internal/registration/repository"
	"github.com/festy23/innov8x/internal/registration/service"
)

// Options configures the registration routes.
type Options struct {
	Notifier  notify.Notifier
	Logger    *zap.SugaredLogger
	EventName string
	// RateLimiter guards submissions. Form edits posted to the page are not
	// counted. Nil disables limiting.
	RateLimiter *middleware.RateLimiter
}

// RegisterRoutes registers registration module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, opts Options) {
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	repo := repository.New(db)
	svc := service.New(repo, db, opts.Notifier, opts.Logger)
	h := handler.New(svc, opts.Logger, opts.EventName)

	r.GET("/register", h.Page)
	r.GET("/api/registrations/:id", h.Get)

	if opts.RateLimiter == nil {
		r.POST("/register", h.PostPage)
		r.POST("/api/registrations", h.Submit)
		return
	}

	pageLimit := middleware.OnlyWhen(handler.IsSubmitRequest, opts.RateLimiter.HandlerWith(h.RejectPage))
	r.POST("/register", pageLimit, h.PostPage)
	r.POST("/api/registrations", opts.RateLimiter.Handler(), h.Submit)
}
