package restidp

// Package restidp adapts a password identity provider exposed over a REST
// API (the identity-toolkit style: accounts:signInWithPassword,
// accounts:signUp, accounts:delete). The provider is the source of truth
// for credential verification; this adapter only maps its responses into
// domain identities and errors.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/campusapps/studentdir/internal/adapters/idpstate"
	domainauth "github.com/campusapps/studentdir/internal/domain/auth"
	"github.com/campusapps/studentdir/internal/ports"
)

const defaultTimeout = 15 * time.Second

// ProviderConfig configures the REST identity provider adapter.
type ProviderConfig struct {
	// BaseURL is the API root, e.g. "https://identitytoolkit.googleapis.com".
	BaseURL string
	// APIKey is sent as the key query parameter on every request.
	APIKey string
	// Timeout bounds each provider call. Defaults to 15s when zero.
	Timeout time.Duration
	// HTTPClient overrides the transport; a default client is built when nil.
	HTTPClient *http.Client
}

// Provider implements ports.IdentityProvider over HTTP.
//
// Session termination is a client-side transition: the REST API issues no
// server-side session to revoke, so TerminateSession only clears local
// state and notifies subscribers.
type Provider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	hub     *idpstate.Hub
}

var _ ports.IdentityProvider = (*Provider)(nil)

// NewProvider constructs a REST identity provider adapter.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("rest idp: BaseURL is required")
	}
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Provider{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  client,
		hub:     idpstate.NewHub(),
	}, nil
}

// Close stops notification delivery.
func (p *Provider) Close() { p.hub.Close() }

// Subscribe registers cb for state notifications.
func (p *Provider) Subscribe(cb ports.StateCallback) func() { return p.hub.Subscribe(cb) }

// accountPayload is the wire shape shared by sign-in and sign-up responses.
type accountPayload struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

// errorPayload is the provider's error envelope.
type errorPayload struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// VerifyPassword forwards the credentials to the provider's password
// verification endpoint.
func (p *Provider) VerifyPassword(ctx context.Context, email, password string) (domainauth.Identity, error) {
	var out accountPayload
	err := p.post(ctx, "/v1/accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &out)
	if err != nil {
		return domainauth.Identity{}, err
	}

	id := domainauth.Identity{UserID: out.LocalID, Email: out.Email}
	p.hub.SetCurrent(&id)
	return id, nil
}

// CreateIdentity registers a new account with the provider.
func (p *Provider) CreateIdentity(ctx context.Context, email, password string) (domainauth.Identity, error) {
	var out accountPayload
	err := p.post(ctx, "/v1/accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &out)
	if err != nil {
		return domainauth.Identity{}, err
	}

	id := domainauth.Identity{UserID: out.LocalID, Email: out.Email}
	p.hub.SetCurrent(&id)
	return id, nil
}

// DeleteIdentity removes an account. Used only to compensate a failed
// registration, so a provider-side failure is returned as-is for logging.
func (p *Provider) DeleteIdentity(ctx context.Context, userID string) error {
	if err := p.post(ctx, "/v1/accounts:delete", map[string]any{"localId": userID}, nil); err != nil {
		return err
	}
	if cur := p.hub.Current(); cur != nil && cur.UserID == userID {
		p.hub.SetCurrent(nil)
	}
	return nil
}

// TerminateSession clears the signed-in identity and notifies subscribers.
func (p *Provider) TerminateSession(_ context.Context) error {
	if p.hub.Current() != nil {
		p.hub.SetCurrent(nil)
	}
	return nil
}

func (p *Provider) post(ctx context.Context, path string, body map[string]any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	endpoint := p.baseURL + path
	if p.apiKey != "" {
		endpoint += "?key=" + url.QueryEscape(p.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return p.mapError(resp)
	}
	if out == nil {
		return nil
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return fmt.Errorf("decode provider response: %w", decodeErr)
	}
	return nil
}

// mapError converts a provider error envelope into an AuthenticationError
// carrying a human-readable reason.
func (p *Provider) mapError(resp *http.Response) error {
	var envelope errorPayload
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}
	code := envelope.Error.Message
	return &domainauth.AuthenticationError{Reason: reasonForCode(code), Err: fmt.Errorf("provider code %s", code)}
}

func reasonForCode(code string) string {
	// Weak-password responses embed the policy text after a colon.
	if strings.HasPrefix(code, "WEAK_PASSWORD") {
		return "password is too weak"
	}
	switch code {
	case "EMAIL_NOT_FOUND":
		return "no account exists for this email"
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return "wrong email or password"
	case "INVALID_EMAIL":
		return "email address is malformed"
	case "EMAIL_EXISTS":
		return "email already registered"
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return "too many attempts, try again later"
	default:
		return strings.ToLower(strings.ReplaceAll(code, "_", " "))
	}
}
