package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festy23/innov8x/internal/sponsorship/model"
)

// ErrorBody carries a machine readable code and a human message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// RejectedResponse is returned when a submission is not accepted.
type RejectedResponse struct {
	Accepted bool      `json:"accepted"`
	Error    ErrorBody `json:"error"`
}

func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

func rejectedResponse(c *gin.Context, code string, message string, statusCode int) {
	c.JSON(statusCode, RejectedResponse{Error: ErrorBody{Code: code, Message: message}})
}

// classify maps a submit error to status, code and message.
func classify(err error) (status int, code string, message string, ok bool) {
	switch {
	case errors.Is(err, model.ErrNameRequired),
		errors.Is(err, model.ErrNameTooLong),
		errors.Is(err, model.ErrCompanyTooLong),
		errors.Is(err, model.ErrEmailRequired),
		errors.Is(err, model.ErrInvalidEmail),
		errors.Is(err, model.ErrCompanyRequired),
		errors.Is(err, model.ErrMessageTooLong),
		errors.Is(err, model.ErrInvalidSubmissionKey):
		return http.StatusBadRequest, "INVALID_REQUEST", err.Error(), true
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", false
	}
}
