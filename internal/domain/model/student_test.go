package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "plain address", email: "a@b.com"},
		{name: "minimal valid", email: "a@b"},
		{name: "subdomain", email: "student@mail.campus.ac.id"},
		{name: "missing at", email: "nobody.example.com", wantErr: ErrEmailInvalid},
		{name: "at is first character", email: "@example.com", wantErr: ErrEmailInvalid},
		{name: "at is last character", email: "nobody@", wantErr: ErrEmailInvalid},
		{name: "empty", email: "", wantErr: ErrEmailInvalid},
		{name: "only at", email: "@", wantErr: ErrEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "long with digit", password: "sup3rsecret"},
		{name: "exactly eight with digit", password: "abcdefg1"},
		{name: "all digits", password: "12345678"},
		{name: "seven characters", password: "abcdef1", wantErr: ErrPasswordTooShort},
		{name: "empty", password: "", wantErr: ErrPasswordTooShort},
		{name: "long but no digit", password: "abcdefghij", wantErr: ErrPasswordNeedsDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := LoginRequest{Email: "user@example.com", Password: "x"}
		require.NoError(t, req.Validate())
	})

	t.Run("bad email rejected before anything else", func(t *testing.T) {
		req := LoginRequest{Email: "userexample.com", Password: "secret"}
		assert.ErrorIs(t, req.Validate(), ErrEmailInvalid)
	})

	t.Run("empty password", func(t *testing.T) {
		req := LoginRequest{Email: "user@example.com", Password: ""}
		assert.ErrorIs(t, req.Validate(), ErrFieldsRequired)
	})

	// Sign-in does not apply the registration password policy: a short
	// stored password must still be able to sign in.
	t.Run("short password accepted at sign in", func(t *testing.T) {
		req := LoginRequest{Email: "user@example.com", Password: "abc"}
		require.NoError(t, req.Validate())
	})
}

func TestRegistrationRequest_Validate(t *testing.T) {
	valid := RegistrationRequest{
		Email:    "user@example.com",
		Password: "passw0rd",
		Name:     "Alice",
		NIM:      "2110511042",
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		require.NoError(t, req.Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		req := valid
		req.Email = "user.example.com"
		assert.ErrorIs(t, req.Validate(), ErrEmailInvalid)
	})

	t.Run("missing name", func(t *testing.T) {
		req := valid
		req.Name = "   "
		assert.ErrorIs(t, req.Validate(), ErrFieldsRequired)
	})

	t.Run("missing nim", func(t *testing.T) {
		req := valid
		req.NIM = ""
		assert.ErrorIs(t, req.Validate(), ErrFieldsRequired)
	})

	t.Run("password too short", func(t *testing.T) {
		req := valid
		req.Password = "pass1"
		assert.ErrorIs(t, req.Validate(), ErrPasswordTooShort)
	})

	t.Run("password needs digit", func(t *testing.T) {
		req := valid
		req.Password = "passwords"
		assert.ErrorIs(t, req.Validate(), ErrPasswordNeedsDigit)
	})
}
