package models

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/fintrack/internal/common"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 30
	EmailMaxLength    = 320
	PasswordMinLength = 6
	// bcrypt ignores everything past 72 bytes.
	PasswordMaxLength = 72
)

// User is a registered account. PasswordHash is empty when the user was
// loaded through a projection that excludes it.
type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateRegistration checks registration input that was already trimmed
// and normalized.
func ValidateRegistration(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return common.NewValidationError(common.MsgFillAllFields)
	}
	if n := utf8.RuneCountInString(username); n < UsernameMinLength || n > UsernameMaxLength {
		return common.NewValidationError("Username must be between 3 and 30 characters")
	}
	if len(email) > EmailMaxLength {
		return common.NewValidationError("Email must be at most 320 characters")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return common.NewValidationError("Please enter a valid email address")
	}
	if len(password) < PasswordMinLength {
		return common.NewValidationError("Password must be at least 6 characters")
	}
	if len(password) > PasswordMaxLength {
		return common.NewValidationError("Password must be at most 72 bytes")
	}
	return nil
}
