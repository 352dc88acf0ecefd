package auth

import "fmt"

// AuthenticationError is returned when the identity provider rejects a
// credential operation (wrong password, unknown account, duplicate email,
// weak password per provider policy, rate limiting). Reason is the
// human-readable message surfaced to the user verbatim.
type AuthenticationError struct {
	Reason string
	Err    error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
	}
	return "authentication failed: " + e.Reason
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// Message returns the user-facing reason.
func (e *AuthenticationError) Message() string { return e.Reason }

// ProfileWriteError is returned when identity creation succeeded but the
// student profile write failed. The new identity may be left without a
// profile record if the compensating delete also fails.
type ProfileWriteError struct {
	UserID string
	Err    error
}

func (e *ProfileWriteError) Error() string {
	return fmt.Sprintf("store student profile for %s: %v", e.UserID, e.Err)
}

func (e *ProfileWriteError) Unwrap() error { return e.Err }

// SignOutError is returned when the provider fails to terminate the session.
type SignOutError struct {
	Err error
}

func (e *SignOutError) Error() string { return fmt.Sprintf("sign out: %v", e.Err) }

func (e *SignOutError) Unwrap() error { return e.Err }
