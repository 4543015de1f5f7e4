package validation

import (
	"regexp"
	"strings"

	"weatherclient.app/pkg/errors"
)

const tokenLength = 32

var tokenRegex = regexp.MustCompile(`^[A-Za-z0-9]{32}$`)

// IsValidToken reports whether token is a 32 character alphanumeric AccuWeather API key
func IsValidToken(token string) bool {
	return tokenRegex.MatchString(token)
}

// ValidateToken returns an InvalidCredentialError unless token is a well-formed API key.
// The token itself is never included in the error message.
func ValidateToken(token string) error {
	if IsValidToken(token) {
		return nil
	}
	if len(token) != tokenLength {
		return errors.NewInvalidCredentialError("api token must be exactly 32 characters")
	}
	return errors.NewInvalidCredentialError("api token must contain only letters and digits")
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
