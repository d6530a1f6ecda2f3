package validators

import (
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/room-booking/internal/models"
)

// MinPasswordLength is the minimum number of characters of a raw password.
const MinPasswordLength = 8

// ValidateUser checks a user candidate together with its raw, not yet hashed, password.
func ValidateUser(user models.UserDB, rawPassword string) error {
	if err := ValidateUsername(user.Username); err != nil {
		return err
	}
	return ValidatePassword(rawPassword)
}

// ValidateUsername rejects usernames containing a space.
func ValidateUsername(username string) error {
	if strings.Contains(username, " ") {
		return newValidationError(ErrInvalidFormat, "username", "username must not contain spaces")
	}
	return nil
}

// ValidatePassword rejects raw passwords shorter than MinPasswordLength characters.
// It must run before the password is hashed.
func ValidatePassword(rawPassword string) error {
	if utf8.RuneCountInString(rawPassword) < MinPasswordLength {
		return newValidationError(ErrInvalidFormat, "password", "password must be at least 8 characters long")
	}
	return nil
}
