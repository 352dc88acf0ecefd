package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/campusapps/studentdir/internal/domain/auth"
	"github.com/campusapps/studentdir/internal/domain/model"
	"github.com/campusapps/studentdir/internal/service"
)

// SessionService defines the session operations the auth handlers need.
type SessionService interface {
	Current() domainauth.Snapshot
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, in service.SignUpInput) error
	SignOut(ctx context.Context) error
}

// AuthHandlers provides HTTP handlers for session operations.
type AuthHandlers struct {
	Svc    SessionService
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Login handles the sign-in endpoint.
// POST /auth/login with {"email": ..., "password": ...}.
//
// Form validation runs before the provider is contacted: a malformed email
// or empty password is rejected locally with the rule's own message. On
// success the response is 202: the session snapshot updates asynchronously
// once the provider notification lands, so callers poll /auth/status or
// follow the redirect from a guarded view.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_credentials_format", Err: err})
		return
	}

	if err := h.Svc.SignIn(r.Context(), req.Email, req.Password); err != nil {
		var authErr *domainauth.AuthenticationError
		if errors.As(err, &authErr) {
			WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_failed", Err: errors.New(authErr.Message())})
			return
		}
		h.logger().ErrorContext(r.Context(), "sign in failed", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "identity_provider_error", Err: err})
		return
	}

	WriteJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// Register handles the sign-up endpoint.
// POST /auth/register with {"email", "password", "name", "nim"}.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegistrationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_registration", Err: err})
		return
	}

	input := service.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		NIM:      req.NIM,
	}
	if err := h.Svc.SignUp(r.Context(), input); err != nil {
		var authErr *domainauth.AuthenticationError
		if errors.As(err, &authErr) {
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "registration_rejected", Err: errors.New(authErr.Message())})
			return
		}
		var profileErr *domainauth.ProfileWriteError
		if errors.As(err, &profileErr) {
			h.logger().ErrorContext(r.Context(), "profile write failed after identity creation",
				"user_id", profileErr.UserID, "error", profileErr.Err)
			WriteError(w, ErrorParams{
				Code:    http.StatusInternalServerError,
				ErrCode: "profile_write_failed",
				Err:     errors.New("account could not be fully created, please try registering again"),
			})
			return
		}
		h.logger().ErrorContext(r.Context(), "sign up failed", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "identity_provider_error", Err: err})
		return
	}

	WriteJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// Logout handles the sign-out endpoint.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.SignOut(r.Context()); err != nil {
		h.logger().ErrorContext(r.Context(), "sign out failed", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "sign_out_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// statusResponse is the session snapshot as reported by /auth/status.
type statusResponse struct {
	Resolving bool   `json:"resolving"`
	SignedIn  bool   `json:"signedIn"`
	UserID    string `json:"userId,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Status reports the current session snapshot.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	snap := h.Svc.Current()
	resp := statusResponse{Resolving: snap.Resolving, SignedIn: snap.SignedIn()}
	if snap.Identity != nil {
		resp.UserID = snap.Identity.UserID
		resp.Email = snap.Identity.Email
	}
	WriteJSON(w, http.StatusOK, resp)
}
