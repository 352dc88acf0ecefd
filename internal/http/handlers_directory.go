package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/campusapps/studentdir/internal/domain/model"
	"github.com/campusapps/studentdir/internal/service"
)

// DirectoryReader defines the directory queries the handlers need.
type DirectoryReader interface {
	ListStudents(ctx context.Context) (*service.DirectoryListing, error)
	GetProfile(ctx context.Context, userID string) (*model.StudentProfile, error)
}

// DirectoryHandlers provides HTTP handlers for the student directory views.
type DirectoryHandlers struct {
	Directory DirectoryReader
	Sessions  SessionService
	Logger    *slog.Logger
}

func (h *DirectoryHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Students renders the student directory.
// GET /students.
//
// A fetch failure is reported but non-fatal: the client keeps whatever
// listing it last had on screen, so the error carries a flag saying so.
func (h *DirectoryHandlers) Students(w http.ResponseWriter, r *http.Request) {
	listing, err := h.Directory.ListStudents(r.Context())
	if err != nil {
		var fetchErr *service.FetchError
		if errors.As(err, &fetchErr) {
			h.logger().ErrorContext(r.Context(), "directory fetch failed", "error", fetchErr.Err)
			WriteJSON(w, http.StatusBadGateway, map[string]any{
				"error":        "directory_unavailable",
				"message":      "could not load the student directory",
				"keepPrevious": true,
			})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, listing)
}

// profileResponse is the profile view payload. Placeholder fields stay empty
// strings when no profile record exists for the signed-in user.
type profileResponse struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	NIM        string `json:"nim"`
	HasProfile bool   `json:"hasProfile"`
}

// Profile renders the signed-in user's own profile.
// GET /profile.
//
// An absent profile record is rendered with placeholders, not an error; the
// email always comes from the session identity, which exists regardless.
func (h *DirectoryHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	snap := h.Sessions.Current()
	if !snap.SignedIn() {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "not_signed_in", Err: errors.New("sign in to view your profile")})
		return
	}

	resp := profileResponse{UserID: snap.Identity.UserID, Email: snap.Identity.Email}

	profile, err := h.Directory.GetProfile(r.Context(), snap.Identity.UserID)
	if err != nil {
		var fetchErr *service.FetchError
		if errors.As(err, &fetchErr) {
			h.logger().ErrorContext(r.Context(), "profile fetch failed", "user_id", snap.Identity.UserID, "error", fetchErr.Err)
			WriteJSON(w, http.StatusBadGateway, map[string]string{
				"error":   "profile_unavailable",
				"message": "could not load your profile",
			})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
		return
	}
	if profile != nil {
		resp.Name = profile.Name
		resp.NIM = profile.NIM
		resp.HasProfile = true
		if profile.Email != "" {
			resp.Email = profile.Email
		}
	}

	WriteJSON(w, http.StatusOK, resp)
}

// LoginView renders the login screen descriptor.
// GET /login.
func (h *DirectoryHandlers) LoginView(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"view": "login"})
}

// HomeView renders the public landing screen descriptor.
// GET /.
func (h *DirectoryHandlers) HomeView(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"view": "home"})
}
