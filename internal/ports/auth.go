package ports

// Package ports defines interfaces (hexagonal ports) for the external
// collaborators. Implementations live in internal/adapters and
// internal/data; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/campusapps/studentdir/internal/domain/auth"
)

// StateCallback receives identity state notifications. A nil identity means
// not-signed-in. Callbacks are delivered serially, in order.
type StateCallback func(identity *domainauth.Identity)

// IdentityProvider verifies credentials and issues opaque per-user
// identities. Implementations fire every subscribed StateCallback once
// shortly after Subscribe and again on each session-state change; the three
// mutating operations resolving does not imply the notification has been
// delivered yet.
type IdentityProvider interface {
	// VerifyPassword checks email+password and, on success, transitions the
	// provider to signed-in. Rejections return *auth.AuthenticationError.
	VerifyPassword(ctx context.Context, email, password string) (domainauth.Identity, error)

	// CreateIdentity registers a new account and transitions the provider to
	// signed-in as that account. Rejections (duplicate email, weak password
	// per provider policy) return *auth.AuthenticationError.
	CreateIdentity(ctx context.Context, email, password string) (domainauth.Identity, error)

	// DeleteIdentity removes an account. Used only to compensate a failed
	// registration.
	DeleteIdentity(ctx context.Context, userID string) error

	// TerminateSession signs the current identity out.
	TerminateSession(ctx context.Context) error

	// Subscribe registers a state callback and returns an unsubscribe handle.
	Subscribe(cb StateCallback) (unsubscribe func())
}
