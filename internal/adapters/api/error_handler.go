package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "weatherclient.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error     string `json:"error"`
	Type      string `json:"type,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	requestID := c.GetString(requestIDKey)

	if !errors.As(err, &appErr) {
		slog.Error("Unexpected error", "request_id", requestID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", RequestID: requestID})
		return
	}

	statusCode, message := statusFor(appErr)
	if statusCode >= http.StatusInternalServerError {
		slog.Error("Request failed", "request_id", requestID, "type", appErr.Type.String(), "error", err)
	}

	c.JSON(statusCode, ErrorResponse{
		Error:     message,
		Type:      appErr.Type.String(),
		RequestID: requestID,
	})
}

// statusFor maps an application error onto an HTTP status and a client-safe message
func statusFor(appErr *errorspkg.AppError) (int, string) {
	switch appErr.Type {
	case errorspkg.ValidationError, errorspkg.InvalidQueryError, errorspkg.InvalidCredentialError:
		return http.StatusBadRequest, appErr.Message
	case errorspkg.LocationNotFoundError:
		return http.StatusNotFound, appErr.Message
	case errorspkg.LocationLookupError,
		errorspkg.ForecastFetchError,
		errorspkg.CurrentConditionsFetchError,
		errorspkg.HistoricalConditionsFetchError:
		return http.StatusBadGateway, "AccuWeather request failed"
	case errorspkg.MalformedResponseError, errorspkg.SchemaValidationError:
		return http.StatusBadGateway, "AccuWeather returned an unexpected response"
	case errorspkg.ConfigurationError:
		return http.StatusInternalServerError, "Service is misconfigured"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
