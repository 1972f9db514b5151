package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"klagedok/internal/accesspolicy"
	"klagedok/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// RespondDomainError maps an error to an HTTP response. Policy denials keep
// their user-facing message and map per category; the operator-facing
// categories respond 500 with a generic message and the detail only in the
// log.
func RespondDomainError(c *gin.Context, err error) {
	var denial *accesspolicy.Denial
	if errors.As(err, &denial) {
		switch denial.Category {
		case accesspolicy.CategoryPrecondition, accesspolicy.CategoryAuthorization:
			RespondError(c, http.StatusForbidden, "ACCESS_DENIED", denial.Message)
		case accesspolicy.CategoryValidation:
			RespondError(c, http.StatusBadRequest, "INVALID_DOCUMENT_ACTION", denial.Message)
		default:
			// Configuration gap or catalog inconsistency: the evaluator has
			// already logged the key; respond without leaking it.
			RespondError(c, http.StatusInternalServerError, "POLICY_ERROR", denial.Message)
		}
		return
	}

	status, code, msg := mapDomainError(err)
	if status == http.StatusInternalServerError {
		log.Printf("handler: internal error: %v", err)
	}
	RespondError(c, status, code, msg)
}

func mapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrCaseNotFound),
		errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrNoCaseRole):
		return http.StatusForbidden, "NO_CASE_ROLE", "user has no role on this case"
	case errors.Is(err, domain.ErrUnclassifiedCaseStatus):
		return http.StatusInternalServerError, "UNCLASSIFIED_CASE", "case state could not be classified"
	case errors.Is(err, domain.ErrArchivedParent),
		errors.Is(err, domain.ErrAnswersParent):
		return http.StatusBadRequest, "INVALID_PARENT", err.Error()
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
}
