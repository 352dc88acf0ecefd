package auth

// Package auth contains domain-level types for identity and session state.
// It is pure and free of framework/adapter concerns.

// Identity represents the authenticated principal returned by the identity
// provider. Adapters map provider-specific payloads into this shape.
type Identity struct {
	// UserID is the stable per-user identifier issued by the provider
	// (e.g. a Firebase localId). Student profiles are keyed by it.
	UserID string
	// Email is the address the account was registered with.
	Email string
}

// Snapshot is a point-in-time view of the session.
//
// Resolving is true from process start until the provider's first state
// notification arrives; it flips to false exactly once and never reverts.
// While Resolving is true the session is neither signed-in nor signed-out
// and consumers must take no navigation action.
type Snapshot struct {
	Identity  *Identity
	Resolving bool
}

// SignedIn reports whether the snapshot carries a resolved identity.
func (s Snapshot) SignedIn() bool { return !s.Resolving && s.Identity != nil }

// Fingerprint store keys. These mirror the handful of identifiers cached
// on-device by the app: the user id, the email, and a reserved token slot.
// The token key is intentionally never written by any operation.
const (
	FingerprintKeyUserID    = "userId"
	FingerprintKeyUserEmail = "userEmail"
	FingerprintKeyAuthToken = "authToken"
)

// FingerprintKeys returns all fingerprint store keys, in the order they
// are cleared on sign-out.
func FingerprintKeys() []string {
	return []string{FingerprintKeyUserID, FingerprintKeyUserEmail, FingerprintKeyAuthToken}
}
