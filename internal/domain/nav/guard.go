// Package nav implements the navigation guard: the mapping from session
// state to screen redirects.
package nav

import (
	"github.com/campusapps/studentdir/internal/domain/auth"
)

// View identifies a screen in the application.
type View string

const (
	ViewLogin    View = "login"
	ViewProfile  View = "profile"
	ViewStudents View = "students"
	ViewHome     View = "home"
	ViewModal    View = "modal"
)

// Guard decides redirects from (current view, session snapshot).
//
// The protected set is explicit and enumerated. Views outside the set are
// public: an authenticated user on a public view is sent to the profile
// view, an unauthenticated user on a protected view is sent to login.
type Guard struct {
	protected map[View]struct{}
}

// DefaultProtectedViews returns the views that require a signed-in session.
func DefaultProtectedViews() []View {
	return []View{ViewProfile, ViewStudents}
}

// NewGuard constructs a Guard over the given protected views. With no
// arguments the default set is used.
func NewGuard(protected ...View) *Guard {
	if len(protected) == 0 {
		protected = DefaultProtectedViews()
	}
	set := make(map[View]struct{}, len(protected))
	for _, v := range protected {
		set[v] = struct{}{}
	}
	return &Guard{protected: set}
}

// Protected reports whether the view requires a signed-in session.
func (g *Guard) Protected(v View) bool {
	_, ok := g.protected[v]
	return ok
}

// Decide returns the view to redirect to and whether a redirect is needed.
//
// While the session is still resolving no redirect ever happens, regardless
// of the identity value: redirecting before the provider's first
// notification would bounce a restored session through the login screen.
func (g *Guard) Decide(current View, snap auth.Snapshot) (View, bool) {
	if snap.Resolving {
		return "", false
	}
	signedIn := snap.Identity != nil
	if !signedIn && g.Protected(current) {
		return ViewLogin, true
	}
	if signedIn && !g.Protected(current) {
		return ViewProfile, true
	}
	return "", false
}
