// Package handler provides HTTP handlers for sponsorship endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festy23/innov8x/internal/content"
	"github.com/festy23/innov8x/internal/sponsorship/model"
	"github.com/festy23/innov8x/internal/sponsorship/service"
	"github.com/festy23/innov8x/internal/web"
)

// IdempotencyKeyHeader carries the submission key on API requests.
const IdempotencyKeyHeader = "Idempotency-Key"

// Handler handles HTTP requests for sponsorship endpoints.
type Handler struct {
	service   service.Service
	logger    *zap.SugaredLogger
	eventName string
}

// New creates a new sponsorship handler instance.
func New(svc service.Service, logger *zap.SugaredLogger, eventName string) *Handler {
	return &Handler{service: svc, logger: logger, eventName: eventName}
}

type pageData struct {
	Title         string
	Tiers         []content.SponsorTier
	SubmissionKey string
	Form          model.InquiryForm
	Result        *model.SubmissionResult
	Error         string
}

func (h *Handler) render(c *gin.Context, status int, page pageData) {
	page.Title = "Sponsor | " + h.eventName
	page.Tiers = content.SponsorTiers()
	if page.SubmissionKey == "" {
		page.SubmissionKey = uuid.NewString()
	}
	c.HTML(status, web.SponsorTemplate, page)
}

// Page handles GET /sponsor request.
func (h *Handler) Page(c *gin.Context) {
	h.render(c, http.StatusOK, pageData{})
}

// PostPage handles POST /sponsor request.
func (h *Handler) PostPage(c *gin.Context) {
	key := c.PostForm("submission_key")
	form := h.parseForm(c)

	result, err := h.service.Submit(c.Request.Context(), key, form)
	if err != nil {
		status, _, message, ok := classify(err)
		if !ok {
			h.logger.Errorw("error submitting sponsor inquiry", "company", form.Company, "error", err)
			message = "Something went wrong. Please try again."
		}
		h.render(c, status, pageData{SubmissionKey: key, Form: form, Error: message})
		return
	}

	h.render(c, http.StatusOK, pageData{SubmissionKey: key, Form: form, Result: result})
}

// RejectPage renders the posted inquiry with the rejection message. It
// answers page submissions the rate limiter turned away.
func (h *Handler) RejectPage(c *gin.Context, status int, _ string, _ string) {
	message := "Too many submissions. Please wait a minute and try again."
	if status == http.StatusServiceUnavailable {
		message = "Submissions are temporarily unavailable. Please try again shortly."
	}
	h.render(c, status, pageData{
		SubmissionKey: c.PostForm("submission_key"),
		Form:          h.parseForm(c),
		Error:         message,
	})
}

func (h *Handler) parseForm(c *gin.Context) model.InquiryForm {
	form := model.InquiryForm{}
	for _, field := range []string{model.FieldName, model.FieldEmail, model.FieldCompany, model.FieldMessage} {
		next, err := model.UpdateField(form, field, c.PostForm(field))
		if err != nil {
			h.logger.Errorw("sponsor form field rejected", "field", field, "error", err)
			continue
		}
		form = next
	}
	return form
}

// Submit handles POST /api/sponsorships request.
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
			h.logger.Errorw("error submitting sponsor inquiry", "company", req.Company, "error", err)
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

// Get handles GET /api/sponsorships/:id request.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrInquiryNotFound) {
			errorResponse(c, "NOT_FOUND", "inquiry not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error getting sponsor inquiry", "reference_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
