// Package validation contains input validation helpers shared by the
// service layer.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 6

// ValidateName checks that a display name is present and not absurdly long.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("Name is required")
	}
	if len(name) > 100 {
		return errors.New("Name must be 100 characters or less")
	}
	return nil
}

// ValidateEmail checks that an email address is present and well formed.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("Email is required")
	}
	if !emailRe.MatchString(email) {
		return errors.New("Please include a valid email")
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return errors.New("Please enter a password with 6 or more characters")
	}
	return nil
}
