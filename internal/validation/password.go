package validation

import (
	"strings"
)

// ValidatePassword validates password strength.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &FieldError{Field: "password", Message: "must be at least 8 characters"}
	}

	// bcrypt silently truncates beyond 72 bytes
	if len(password) > 72 {
		return &FieldError{Field: "password", Message: "must not exceed 72 characters"}
	}

	lower := strings.ToLower(password)
	commonPatterns := []string{"password", "12345678", "qwerty", "letmein"}
	for _, pattern := range commonPatterns {
		if strings.Contains(lower, pattern) {
			return &FieldError{Field: "password", Message: "too common, please choose a stronger one"}
		}
	}

	return nil
}
