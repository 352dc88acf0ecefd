package devidp

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campusapps/studentdir/internal/domain/auth"
)

// stateRecorder collects hub notifications for assertions.
type stateRecorder struct {
	mu     sync.Mutex
	states []*domainauth.Identity
}

func (r *stateRecorder) record(id *domainauth.Identity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, id)
}

func (r *stateRecorder) last() (*domainauth.Identity, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return nil, false
	}
	return r.states[len(r.states)-1], true
}

func TestProvider_SeedAccountCanSignIn(t *testing.T) {
	p, err := NewProvider(Config{SeedEmail: "dev@example.com", SeedPassword: "hunter22"})
	require.NoError(t, err)
	defer p.Close()

	id, err := p.VerifyPassword(context.Background(), "dev@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, id.UserID)
	assert.Equal(t, "dev@example.com", id.Email)
}

func TestProvider_VerifyPassword_UnknownEmail(t *testing.T) {
	p, err := NewProvider(Config{})
	require.NoError(t, err)
	defer p.Close()

	_, err = p.VerifyPassword(context.Background(), "nobody@example.com", "whatever1")
	var authErr *domainauth.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "no account exists for this email", authErr.Message())
}

func TestProvider_VerifyPassword_WrongPassword(t *testing.T) {
	p, err := NewProvider(Config{SeedEmail: "dev@example.com", SeedPassword: "hunter22"})
	require.NoError(t, err)
	defer p.Close()

	_, err = p.VerifyPassword(context.Background(), "dev@example.com", "wrongpass")
	var authErr *domainauth.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "wrong password", authErr.Message())
}

func TestProvider_EmailLookupIsCaseInsensitive(t *testing.T) {
	p, err := NewProvider(Config{SeedEmail: "Dev@Example.com", SeedPassword: "hunter22"})
	require.NoError(t, err)
	defer p.Close()

	_, err = p.VerifyPassword(context.Background(), "dev@example.com", "hunter22")
	require.NoError(t, err)
}

func TestProvider_CreateIdentity_DuplicateEmail(t *testing.T) {
	p, err := NewProvider(Config{})
	require.NoError(t, err)
	defer p.Close()

	_, err = p.CreateIdentity(context.Background(), "new@example.com", "passw0rd")
	require.NoError(t, err)

	_, err = p.CreateIdentity(context.Background(), "NEW@example.com", "passw0rd")
	var authErr *domainauth.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "email already registered", authErr.Message())
}

func TestProvider_CreateIdentity_WeakPassword(t *testing.T) {
	p, err := NewProvider(Config{})
	require.NoError(t, err)
	defer p.Close()

	_, err = p.CreateIdentity(context.Background(), "new@example.com", "short")
	var authErr *domainauth.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "password is too weak", authErr.Message())
}

func TestProvider_SignInNotifiesSubscribers(t *testing.T) {
	p, err := NewProvider(Config{SeedEmail: "dev@example.com", SeedPassword: "hunter22"})
	require.NoError(t, err)
	defer p.Close()

	rec := &stateRecorder{}
	unsub := p.Subscribe(rec.record)
	defer unsub()

	_, err = p.VerifyPassword(context.Background(), "dev@example.com", "hunter22")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		id, ok := rec.last()
		return ok && id != nil && id.Email == "dev@example.com"
	}, time.Second, 10*time.Millisecond)
}

func TestProvider_TerminateSessionNotifiesSignedOut(t *testing.T) {
	p, err := NewProvider(Config{SeedEmail: "dev@example.com", SeedPassword: "hunter22"})
	require.NoError(t, err)
	defer p.Close()

	_, err = p.VerifyPassword(context.Background(), "dev@example.com", "hunter22")
	require.NoError(t, err)

	rec := &stateRecorder{}
	unsub := p.Subscribe(rec.record)
	defer unsub()

	require.NoError(t, p.TerminateSession(context.Background()))

	require.Eventually(t, func() bool {
		id, ok := rec.last()
		return ok && id == nil
	}, time.Second, 10*time.Millisecond)
}

func TestProvider_DeleteIdentitySignsOutCurrentUser(t *testing.T) {
	p, err := NewProvider(Config{})
	require.NoError(t, err)
	defer p.Close()

	id, err := p.CreateIdentity(context.Background(), "gone@example.com", "passw0rd")
	require.NoError(t, err)

	require.NoError(t, p.DeleteIdentity(context.Background(), id.UserID))

	// Account is gone and the session was cleared.
	_, err = p.VerifyPassword(context.Background(), "gone@example.com", "passw0rd")
	var authErr *domainauth.AuthenticationError
	require.ErrorAs(t, err, &authErr)

	rec := &stateRecorder{}
	unsub := p.Subscribe(rec.record)
	defer unsub()

	require.Eventually(t, func() bool {
		id, ok := rec.last()
		return ok && id == nil
	}, time.Second, 10*time.Millisecond)
}
