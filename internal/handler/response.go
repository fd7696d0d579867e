package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sellersuite/internal/domain"
	"sellersuite/internal/parser"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code             string   `json:"code"`
	Message          string   `json:"message"`
	SupportedPortals []string `json:"supported_portals,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "file not found"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: xlsx, xlsm, csv"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUnsupportedPortal):
		return http.StatusBadRequest, "UNSUPPORTED_PORTAL", "portal is not supported"
	case errors.Is(err, domain.ErrUnreadableFile):
		return http.StatusUnprocessableEntity, "UNREADABLE_FILE", "file could not be parsed"
	case errors.Is(err, domain.ErrNoData):
		return http.StatusBadRequest, "NO_DATA", "no data provided"
	case errors.Is(err, domain.ErrNoB2BData):
		return http.StatusBadRequest, "NO_B2B_DATA", "no B2B data found in file"
	case errors.Is(err, domain.ErrInvalidFilename):
		return http.StatusBadRequest, "INVALID_FILENAME", "invalid filename"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	requestID, _ := c.Get("request_id")
	if status >= 500 || status == http.StatusUnprocessableEntity {
		log.Printf("[%s] %s: %v", requestID, code, err)
	}

	apiErr := &APIError{Code: code, Message: msg}
	var upe *parser.UnsupportedPortalError
	if errors.As(err, &upe) {
		apiErr.Message = upe.Error()
		apiErr.SupportedPortals = upe.Supported
	}
	c.JSON(status, APIResponse{Success: false, Error: apiErr})
}
