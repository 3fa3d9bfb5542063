package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/finsight/revenue-dashboard/internal/api/shared/errors"
	"github.com/finsight/revenue-dashboard/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error apierrors.APIError `json:"error"`
}

// respondWithAPIError maps a structured API error to its HTTP status
func respondWithAPIError(c *gin.Context, apiErr *apierrors.APIError) {
	status := http.StatusInternalServerError
	switch apiErr.Code {
	case apierrors.ErrCodeBadRequest, apierrors.ErrCodeValidationFailed:
		status = http.StatusBadRequest
	case apierrors.ErrCodeNotFound, apierrors.ErrCodeNoData:
		status = http.StatusNotFound
	case apierrors.ErrCodeUpstreamError:
		status = http.StatusBadGateway
	}
	c.JSON(status, errorResponse{Error: *apiErr})
}

// respondError routes any error through the standardized response shape
func respondError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		respondWithAPIError(c, apiErr)
		return
	}
	respondInternalError(c, err, "Internal server error")
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithAPIError(c, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation details
func respondValidationError(c *gin.Context, details string) {
	respondWithAPIError(c, apierrors.NewValidationError(details))
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string) {
	logger.Error(err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, errorResponse{Error: *apierrors.NewInternalError(message)})
}
