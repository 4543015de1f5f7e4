package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by the stage at which they are detected

type ErrorType int

// Input errors - detected before any network call
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeInvalidCredential
	ErrorTypeInvalidQuery

	// Upstream errors - raised while talking to AccuWeather
	ErrorTypeLocationNotFound
	ErrorTypeLocationLookup
	ErrorTypeForecastFetch
	ErrorTypeCurrentConditionsFetch
	ErrorTypeHistoricalConditionsFetch

	// Payload errors - a 2xx response whose body does not match the expected schema
	ErrorTypeMalformedResponse
	ErrorTypeSchemaValidation

	// System/Configuration Errors
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeInvalidCredential:
		return "INVALID_CREDENTIAL_ERROR"
	case ErrorTypeInvalidQuery:
		return "INVALID_QUERY_ERROR"
	case ErrorTypeLocationNotFound:
		return "LOCATION_NOT_FOUND_ERROR"
	case ErrorTypeLocationLookup:
		return "LOCATION_LOOKUP_ERROR"
	case ErrorTypeForecastFetch:
		return "FORECAST_FETCH_ERROR"
	case ErrorTypeCurrentConditionsFetch:
		return "CURRENT_CONDITIONS_FETCH_ERROR"
	case ErrorTypeHistoricalConditionsFetch:
		return "HISTORICAL_CONDITIONS_FETCH_ERROR"
	case ErrorTypeMalformedResponse:
		return "MALFORMED_RESPONSE_ERROR"
	case ErrorTypeSchemaValidation:
		return "SCHEMA_VALIDATION_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used by callers and tests
const (
	ValidationError                = ErrorTypeValidation
	InvalidCredentialError         = ErrorTypeInvalidCredential
	InvalidQueryError              = ErrorTypeInvalidQuery
	LocationNotFoundError          = ErrorTypeLocationNotFound
	LocationLookupError            = ErrorTypeLocationLookup
	ForecastFetchError             = ErrorTypeForecastFetch
	CurrentConditionsFetchError    = ErrorTypeCurrentConditionsFetch
	HistoricalConditionsFetchError = ErrorTypeHistoricalConditionsFetch
	MalformedResponseError         = ErrorTypeMalformedResponse
	SchemaValidationError          = ErrorTypeSchemaValidation
	ConfigurationError             = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Input Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewInvalidCredentialError(message string) *AppError {
	return New(InvalidCredentialError, message)
}

func NewInvalidQueryError(message string) *AppError {
	return New(InvalidQueryError, message)
}

// Upstream Error Constructors
func NewLocationNotFoundError(message string) *AppError {
	return New(LocationNotFoundError, message)
}

func NewLocationLookupError(message string, cause error) *AppError {
	return Wrap(LocationLookupError, message, cause)
}

func NewForecastFetchError(message string, cause error) *AppError {
	return Wrap(ForecastFetchError, message, cause)
}

func NewCurrentConditionsFetchError(message string, cause error) *AppError {
	return Wrap(CurrentConditionsFetchError, message, cause)
}

func NewHistoricalConditionsFetchError(message string, cause error) *AppError {
	return Wrap(HistoricalConditionsFetchError, message, cause)
}

// Payload Error Constructors
func NewMalformedResponseError(message string, cause error) *AppError {
	return Wrap(MalformedResponseError, message, cause)
}

func NewSchemaValidationError(message string, cause error) *AppError {
	return Wrap(SchemaValidationError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in the chain, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsInvalidCredentialError(err error) bool {
	return TypeOf(err) == InvalidCredentialError
}

func IsInvalidQueryError(err error) bool {
	return TypeOf(err) == InvalidQueryError
}

func IsLocationNotFoundError(err error) bool {
	return TypeOf(err) == LocationNotFoundError
}

func IsLocationLookupError(err error) bool {
	return TypeOf(err) == LocationLookupError
}

// IsFetchError reports whether err is a transport or HTTP failure on any weather endpoint.
func IsFetchError(err error) bool {
	switch TypeOf(err) {
	case ForecastFetchError, CurrentConditionsFetchError, HistoricalConditionsFetchError:
		return true
	}
	return false
}

func IsMalformedResponseError(err error) bool {
	return TypeOf(err) == MalformedResponseError
}

func IsSchemaValidationError(err error) bool {
	return TypeOf(err) == SchemaValidationError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
