package helper

import (
	"errors"
	"regexp"
	"strings"
)

var (
	letterRe = regexp.MustCompile(`[A-Za-z]`)
	numberRe = regexp.MustCompile(`[0-9]`)
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func isAlphaNumeric(s string) bool {
	return letterRe.MatchString(s) && numberRe.MatchString(s)
}

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateRegisterInput checks the register payload before hitting the DB.
func ValidateRegisterInput(userName, email, password string) error {
	if strings.TrimSpace(userName) == "" || strings.TrimSpace(email) == "" || password == "" {
		return errors.New("user_name, email, and password are required")
	}
	if len(userName) < 3 {
		return errors.New("user_name must be at least 3 characters")
	}
	if !isValidEmail(email) {
		return errors.New("email format is invalid")
	}
	if len(password) < 8 || !isAlphaNumeric(password) {
		return errors.New("password must be at least 8 characters and contain letters and numbers")
	}
	return nil
}

// ValidateLoginInput checks the login payload.
func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" || password == "" {
		return errors.New("identifier and password are required")
	}
	return nil
}

// ValidateResetPassword checks the reset-password payload.
func ValidateResetPassword(email, newPassword string) error {
	if !isValidEmail(email) {
		return errors.New("email format is invalid")
	}
	if len(newPassword) < 8 || !isAlphaNumeric(newPassword) {
		return errors.New("password must be at least 8 characters and contain letters and numbers")
	}
	return nil
}
