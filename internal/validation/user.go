// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxUsernameLength = 120
	maxEmailLength    = 120
	maxPasswordLength = 72 // bcrypt input limit, in bytes
	maxCatalogField   = 100
	maxCatalogName    = 120
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.\-]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) > maxUsernameLength {
		return fmt.Errorf("username must not exceed %d characters", maxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, dots, underscores, and hyphens")
	}
	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf("email must not exceed %d characters", maxEmailLength)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword only bounds the input; strength rules are left to clients.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("password must not exceed %d bytes", maxPasswordLength)
	}
	return nil
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateCatalogName checks the name of a planet or character.
func ValidateCatalogName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxCatalogName {
		return fmt.Errorf("name must not exceed %d characters", maxCatalogName)
	}
	return nil
}

// ValidateCatalogField bounds a descriptive planet or character attribute.
func ValidateCatalogField(field, value string) error {
	if len(value) > maxCatalogField {
		return fmt.Errorf("%s must not exceed %d characters", field, maxCatalogField)
	}
	return nil
}
