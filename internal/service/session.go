package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/campusapps/studentdir/internal/domain/auth"
	"github.com/campusapps/studentdir/internal/domain/model"
	"github.com/campusapps/studentdir/internal/ports"
)

// fingerprintWriteTimeout bounds the best-effort fingerprint writes done
// from the provider notification callback, which carries no caller context.
const fingerprintWriteTimeout = 5 * time.Second

// SessionManagerOptions groups dependencies for SessionManager.
type SessionManagerOptions struct {
	Provider ports.IdentityProvider
	Students ports.StudentRepository
	Cache    ports.KeyValueStore
	// Clock overrides the time source for profile creation timestamps.
	Clock  func() time.Time
	Logger *slog.Logger
}

// SessionManager bridges the identity provider's asynchronous state
// notifications into a reactive session value, and exposes the three
// mutating operations: SignIn, SignUp, SignOut.
//
// The provider subscription callback is the only writer of session state.
// Consequently SignIn/SignUp/SignOut returning does not imply Current()
// reflects the new state yet; callers that need the updated identity must
// observe the next Watch notification rather than read immediately.
type SessionManager struct {
	provider ports.IdentityProvider
	students ports.StudentRepository
	cache    ports.KeyValueStore
	clock    func() time.Time
	logger   *slog.Logger

	mu          sync.RWMutex
	identity    *domainauth.Identity
	resolving   bool
	watchers    map[int]chan domainauth.Snapshot
	nextWatcher int

	unsubscribe func()
}

// NewSessionManager constructs a SessionManager and registers its single
// persistent subscription with the identity provider. The session starts
// resolving and stays so until the provider's first notification.
func NewSessionManager(opts SessionManagerOptions) *SessionManager {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := &SessionManager{
		provider:  opts.Provider,
		students:  opts.Students,
		cache:     opts.Cache,
		clock:     clock,
		logger:    logger,
		resolving: true,
		watchers:  make(map[int]chan domainauth.Snapshot),
	}
	m.unsubscribe = m.provider.Subscribe(m.onStateChange)
	return m
}

// Close releases the provider subscription. The session itself lives for
// the process lifetime and is never reset.
func (m *SessionManager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Current returns a point-in-time session snapshot.
func (m *SessionManager) Current() domainauth.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Watch registers a snapshot channel fed on every state change, plus the
// cancel function releasing it. The channel is buffered and lossy under a
// slow consumer; Current() always holds the latest state.
func (m *SessionManager) Watch() (<-chan domainauth.Snapshot, func()) {
	ch := make(chan domainauth.Snapshot, 8)
	m.mu.Lock()
	token := m.nextWatcher
	m.nextWatcher++
	m.watchers[token] = ch
	m.mu.Unlock()

	return ch, func() {
		m.mu.Lock()
		delete(m.watchers, token)
		m.mu.Unlock()
	}
}

// onStateChange is the subscription callback and the sole writer of
// session state. It mirrors the identity into the fingerprint store before
// publishing the new snapshot.
func (m *SessionManager) onStateChange(identity *domainauth.Identity) {
	m.syncFingerprint(identity)

	m.mu.Lock()
	m.identity = identity
	m.resolving = false
	snap := m.snapshotLocked()
	chans := make([]chan domainauth.Snapshot, 0, len(m.watchers))
	for _, ch := range m.watchers {
		chans = append(chans, ch)
	}
	m.mu.Unlock()

	for _, ch := range chans {
		select {
		case ch <- snap:
		default:
		}
	}
}

func (m *SessionManager) snapshotLocked() domainauth.Snapshot {
	var id *domainauth.Identity
	if m.identity != nil {
		c := *m.identity
		id = &c
	}
	return domainauth.Snapshot{Identity: id, Resolving: m.resolving}
}

// syncFingerprint mirrors the session transition into the local store,
// best-effort: a failed write never fails the transition itself.
func (m *SessionManager) syncFingerprint(identity *domainauth.Identity) {
	ctx, cancel := context.WithTimeout(context.Background(), fingerprintWriteTimeout)
	defer cancel()

	if identity == nil {
		if err := m.cache.DeleteMany(ctx, domainauth.FingerprintKeys()...); err != nil {
			m.logger.WarnContext(ctx, "clear session fingerprint failed", "error", err)
		}
		return
	}

	if err := m.cache.Set(ctx, domainauth.FingerprintKeyUserID, identity.UserID); err != nil {
		m.logger.WarnContext(ctx, "cache user id failed", "error", err)
	}
	if identity.Email != "" {
		if err := m.cache.Set(ctx, domainauth.FingerprintKeyUserEmail, identity.Email); err != nil {
			m.logger.WarnContext(ctx, "cache user email failed", "error", err)
		}
	}
	// The auth token slot stays reserved and unwritten; no operation in
	// this system issues a token.
}

// SignIn forwards the credentials to the identity provider. Form
// validation (email shape, non-empty password) is the caller's
// responsibility and is not re-checked here.
//
// On success the subscription callback updates the session asynchronously.
func (m *SessionManager) SignIn(ctx context.Context, email, password string) error {
	if _, err := m.provider.VerifyPassword(ctx, email, password); err != nil {
		return asAuthenticationError(err, "failed to sign in")
	}
	return nil
}

// SignUpInput groups parameters for SignUp.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
	NIM      string
}

// SignUp creates an identity with the provider and then writes the student
// profile record keyed by the new identity's id.
//
// When the profile write fails after identity creation succeeded, the new
// identity is deleted again (best-effort) so a retried registration does
// not hit "email already registered"; if that compensation also fails the
// identity is left without a profile record and the orphan is logged.
func (m *SessionManager) SignUp(ctx context.Context, in SignUpInput) error {
	identity, err := m.provider.CreateIdentity(ctx, in.Email, in.Password)
	if err != nil {
		return asAuthenticationError(err, "failed to create account")
	}

	profile := &model.StudentProfile{
		ID:        identity.UserID,
		Name:      in.Name,
		NIM:       in.NIM,
		Email:     in.Email,
		CreatedAt: m.clock().UTC(),
	}
	if putErr := m.students.Put(ctx, profile); putErr != nil {
		if delErr := m.provider.DeleteIdentity(ctx, identity.UserID); delErr != nil {
			m.logger.ErrorContext(ctx, "identity left without profile record",
				"user_id", identity.UserID, "error", delErr)
		}
		return &domainauth.ProfileWriteError{UserID: identity.UserID, Err: putErr}
	}
	return nil
}

// SignOut requests session termination from the provider, then clears the
// fingerprint. The clear happens only after the provider accepted the
// termination: clearing first could present a signed-out cache while the
// provider still considers the user signed in.
func (m *SessionManager) SignOut(ctx context.Context) error {
	if err := m.provider.TerminateSession(ctx); err != nil {
		var signOutErr *domainauth.SignOutError
		if errors.As(err, &signOutErr) {
			return err
		}
		return &domainauth.SignOutError{Err: err}
	}

	if err := m.cache.DeleteMany(ctx, domainauth.FingerprintKeys()...); err != nil {
		// The subscription callback clears again on the signed-out
		// notification, so this failure is logged, not returned.
		m.logger.WarnContext(ctx, "clear session fingerprint failed", "error", err)
	}
	return nil
}

func asAuthenticationError(err error, fallback string) error {
	var authErr *domainauth.AuthenticationError
	if errors.As(err, &authErr) {
		return err
	}
	return &domainauth.AuthenticationError{Reason: fallback, Err: err}
}
