// Package landing serves the landing page and the countdown endpoints.
package landing

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/innov8x/internal/config"
	"github.com/festy23/innov8x/internal/content"
	"github.com/festy23/innov8x/internal/countdown"
	"github.com/festy23/innov8x/internal/web"
)

// CountdownEvent is the SSE event name carrying countdown values.
const CountdownEvent = "countdown"

// CountdownResponse is the JSON view of the countdown.
type CountdownResponse struct {
	countdown.Remaining
	Started bool   `json:"started"`
	Target  string `json:"target"`
}

// Handler handles landing page and countdown requests.
type Handler struct {
	eventName string
	target    time.Time
	interval  time.Duration
	clock     countdown.Clock
	logger    *zap.SugaredLogger
}

// New creates a landing handler for the configured event.
// A nil clock uses the system clock.
func New(cfg config.EventConfig, clock countdown.Clock, logger *zap.SugaredLogger) (*Handler, error) {
	target, err := cfg.Target()
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = countdown.SystemClock{}
	}

	return &Handler{
		eventName: cfg.Name,
		target:    target,
		interval:  cfg.CountdownInterval,
		clock:     clock,
		logger:    logger,
	}, nil
}

func (h *Handler) snapshot(now time.Time) CountdownResponse {
	return h.response(countdown.Compute(h.target, now), countdown.Started(h.target, now))
}

func (h *Handler) response(r countdown.Remaining, started bool) CountdownResponse {
	return CountdownResponse{
		Remaining: r,
		Started:   started,
		Target:    h.target.Format(time.RFC3339),
	}
}

type pageData struct {
	Title     string
	EventName string
	Hero      content.Hero
	Countdown countdown.Remaining
	Started   bool
	About     content.About
	Events    []content.EventTrack
	Schedule  []content.ScheduleEntry
}

// Index handles GET / request.
func (h *Handler) Index(c *gin.Context) {
	snap := h.snapshot(h.clock.Now())

	c.HTML(http.StatusOK, web.IndexTemplate, pageData{
		Title:     h.eventName + " | Create. Design. Hack.",
		EventName: h.eventName,
		Hero:      content.HeroBlock(),
		Countdown: snap.Remaining,
		Started:   snap.Started,
		About:     content.AboutSection(),
		Events:    content.EventTracks(),
		Schedule:  content.Schedule(),
	})
}

// Countdown handles GET /api/countdown request.
func (h *Handler) Countdown(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot(h.clock.Now()))
}

// Stream handles GET /api/countdown/stream request. It sends one event per
// tick until the countdown reaches zero or the client goes away.
func (h *Handler) Stream(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())

	values := make(chan countdown.Remaining, 1)
	timer, err := countdown.Start(ctx, h.target, h.interval, h.clock, func(r countdown.Remaining) {
		select {
		case values <- r:
		case <-ctx.Done():
		}
	})
	if err != nil {
		cancel()
		h.logger.Errorw("failed to start countdown", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	defer func() {
		cancel()
		timer.Stop()
	}()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	send := func(r countdown.Remaining) {
		// Started is defined as the zero display, so r alone decides it.
		c.SSEvent(CountdownEvent, h.response(r, r.IsZero()))
		c.Writer.Flush()
	}

	for {
		select {
		case <-ctx.Done():
			h.logger.Debugw("countdown stream closed by client", "ticks", timer.Ticks())
			return
		case r := <-values:
			send(r)
		case <-timer.Done():
			select {
			case r := <-values:
				send(r)
			default:
			}
			return
		}
	}
}
