// Package model defines the core data types used throughout the student
// directory system.
package model

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

const (
	// minPasswordLen is the minimum password length accepted at registration.
	minPasswordLen = 8
)

// Validation errors surfaced to the user before any provider call is made.
var (
	ErrEmailInvalid       = errors.New("email is invalid: it must contain an @ that is neither the first nor the last character")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordNeedsDigit = errors.New("password must contain at least 1 digit")
	ErrFieldsRequired     = errors.New("all fields are required")
)

// StudentProfile is the durable record created once per registered user,
// keyed by the identity provider's user id. It is never updated or deleted
// by this application.
type StudentProfile struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	NIM       string    `json:"nim"        db:"nim"`
	Email     string    `json:"email"      db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LoginRequest carries sign-in form input.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate applies the sign-in form checks: email shape and non-empty password.
func (r *LoginRequest) Validate() error {
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return ErrFieldsRequired
	}
	return nil
}

// RegistrationRequest carries sign-up form input.
type RegistrationRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	NIM      string `json:"nim"`
}

// Validate applies the sign-up form checks: all fields present, email shape,
// and the password policy (length and at least one digit). Each violated rule
// yields its own message.
func (r *RegistrationRequest) Validate() error {
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if strings.TrimSpace(r.Name) == "" || r.NIM == "" || r.Email == "" || r.Password == "" {
		return ErrFieldsRequired
	}
	return ValidatePassword(r.Password)
}

// ValidateEmail applies the minimal shape check: the address must contain an
// @ that is neither at position 0 nor at the final position.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at >= len(email)-1 {
		return ErrEmailInvalid
	}
	return nil
}

// ValidatePassword enforces the registration password policy.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	for _, r := range password {
		if unicode.IsDigit(r) {
			return nil
		}
	}
	return ErrPasswordNeedsDigit
}
