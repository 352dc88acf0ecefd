package devidp

// Package devidp provides an in-memory identity provider for local
// development and tests. Accounts live for the process lifetime and
// passwords are bcrypt-hashed.

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusapps/studentdir/internal/adapters/idpstate"
	domainauth "github.com/campusapps/studentdir/internal/domain/auth"
	"github.com/campusapps/studentdir/internal/ports"
)

// providerMinPasswordLen is the provider-side password policy, deliberately
// looser than the registration form policy so the two layers stay distinct.
const providerMinPasswordLen = 6

// Config controls the dev identity provider behavior.
type Config struct {
	// SeedEmail and SeedPassword optionally pre-register one account so a
	// dev instance is immediately signable-in.
	SeedEmail    string
	SeedPassword string
}

type account struct {
	userID       string
	email        string
	passwordHash []byte
}

// Provider implements ports.IdentityProvider in memory.
type Provider struct {
	hub *idpstate.Hub

	mu       sync.Mutex
	accounts map[string]*account // keyed by lowercased email
}

var _ ports.IdentityProvider = (*Provider)(nil)

// NewProvider constructs a dev identity provider. Call Close when done.
func NewProvider(cfg Config) (*Provider, error) {
	p := &Provider{
		hub:      idpstate.NewHub(),
		accounts: make(map[string]*account),
	}
	if cfg.SeedEmail != "" && cfg.SeedPassword != "" {
		if _, err := p.register(cfg.SeedEmail, cfg.SeedPassword); err != nil {
			p.Close()
			return nil, err
		}
	}
	return p, nil
}

// Close stops notification delivery.
func (p *Provider) Close() { p.hub.Close() }

// Subscribe registers cb for state notifications.
func (p *Provider) Subscribe(cb ports.StateCallback) func() { return p.hub.Subscribe(cb) }

// VerifyPassword checks the credentials and signs the matching account in.
func (p *Provider) VerifyPassword(_ context.Context, email, password string) (domainauth.Identity, error) {
	p.mu.Lock()
	acct, ok := p.accounts[normalizeEmail(email)]
	p.mu.Unlock()

	if !ok {
		return domainauth.Identity{}, &domainauth.AuthenticationError{Reason: "no account exists for this email"}
	}
	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)); err != nil {
		return domainauth.Identity{}, &domainauth.AuthenticationError{Reason: "wrong password"}
	}

	id := domainauth.Identity{UserID: acct.userID, Email: acct.email}
	p.hub.SetCurrent(&id)
	return id, nil
}

// CreateIdentity registers a new account and signs it in.
func (p *Provider) CreateIdentity(_ context.Context, email, password string) (domainauth.Identity, error) {
	id, err := p.register(email, password)
	if err != nil {
		return domainauth.Identity{}, err
	}
	p.hub.SetCurrent(&id)
	return id, nil
}

// DeleteIdentity removes the account with the given user id. Deleting the
// currently signed-in account also signs it out.
func (p *Provider) DeleteIdentity(_ context.Context, userID string) error {
	p.mu.Lock()
	var removed bool
	for email, acct := range p.accounts {
		if acct.userID == userID {
			delete(p.accounts, email)
			removed = true
			break
		}
	}
	p.mu.Unlock()

	if removed {
		if cur := p.hub.Current(); cur != nil && cur.UserID == userID {
			p.hub.SetCurrent(nil)
		}
	}
	return nil
}

// TerminateSession signs the current identity out.
func (p *Provider) TerminateSession(_ context.Context) error {
	if p.hub.Current() != nil {
		p.hub.SetCurrent(nil)
	}
	return nil
}

func (p *Provider) register(email, password string) (domainauth.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := normalizeEmail(email)
	if _, exists := p.accounts[key]; exists {
		return domainauth.Identity{}, &domainauth.AuthenticationError{Reason: "email already registered"}
	}
	if len(password) < providerMinPasswordLen {
		return domainauth.Identity{}, &domainauth.AuthenticationError{Reason: "password is too weak"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domainauth.Identity{}, err
	}

	acct := &account{
		userID:       uuid.NewString(),
		email:        strings.TrimSpace(email),
		passwordHash: hash,
	}
	p.accounts[key] = acct
	return domainauth.Identity{UserID: acct.userID, Email: acct.email}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
