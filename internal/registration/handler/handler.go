// Package handler provides HTTP handlers for registration endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/innov8x/internal/registration/model"
	"github.com/festy23/innov8x/internal/registration/service"
)

// IdempotencyKeyHeader carries the submission key on API requests.
const IdempotencyKeyHeader = "Idempotency-Key"

// Handler handles HTTP requests for registration endpoints.
type Handler struct {
	service   service.Service
	logger    *zap.SugaredLogger
	eventName string
}

// New creates a new registration handler instance.
func New(svc service.Service, logger *zap.SugaredLogger, eventName string) *Handler {
	return &Handler{service: svc, logger: logger, eventName: eventName}
}

// Submit handles POST /api/registrations request.
func (h *Handler) Submit(c *gin.Context) {
	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rejectedResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Submit(c.Request.Context(), c.GetHeader(IdempotencyKeyHeader), req.Form())
	if err != nil {
		status, code, message, ok := classify(err)
		if !ok {
			h.logger.Errorw("error submitting registration", "team_name", req.TeamName, "error", err)
		}
		rejectedResponse(c, code, message, status)
		return
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	c.JSON(status, result)
}

// Get handles GET /api/registrations/:id request.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrRegistrationNotFound) {
			notFoundResponse(c, "registration not found")
			return
		}
		h.logger.Errorw("error getting registration", "reference_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
