package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festy23/innov8x/internal/registration/model"
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

// errorResponse writes an error response.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// notFoundResponse creates 404 error response.
func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, "NOT_FOUND", message, http.StatusNotFound)
}

// rejectedResponse writes a not-accepted submission response.
func rejectedResponse(c *gin.Context, code string, message string, statusCode int) {
	c.JSON(statusCode, RejectedResponse{Error: ErrorBody{Code: code, Message: message}})
}

var validationErrors = []error{
	model.ErrTeamNameRequired,
	model.ErrTeamNameTooLong,
	model.ErrTeamSizeRequired,
	model.ErrTermsNotAccepted,
	model.ErrEmptyMembers,
	model.ErrIncompleteMember,
	model.ErrMemberNameTooLong,
	model.ErrInvalidEmail,
	model.ErrDuplicateMemberEmail,
	model.ErrTooManyMembers,
	model.ErrInvalidTeamSize,
	model.ErrInvalidRole,
	model.ErrInvalidSubmissionKey,
}

// classify maps a submit error to status, code and message.
// ok is false for unexpected errors.
func classify(err error) (status int, code string, message string, ok bool) {
	if errors.Is(err, model.ErrTeamExists) {
		return http.StatusConflict, "TEAM_EXISTS", "a team with this name is already registered", true
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, "INVALID_REQUEST", err.Error(), true
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", false
}
