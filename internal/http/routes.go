package httpx

import (
	"log/slog"
	"net/http"

	"github.com/campusapps/studentdir/internal/domain/nav"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Sessions  SessionService
	Directory DirectoryReader
	// Guard is optional; the default protected set is used when nil.
	Guard  *nav.Guard
	Logger *slog.Logger
}

// NewRouter creates and configures a new HTTP router with the navigation
// guard applied to the view routes.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	guard := services.Guard
	if guard == nil {
		guard = nav.NewGuard()
	}

	authHandlers := &AuthHandlers{Svc: services.Sessions, Logger: services.Logger}
	dirHandlers := &DirectoryHandlers{
		Directory: services.Directory,
		Sessions:  services.Sessions,
		Logger:    services.Logger,
	}

	mux.Handle("POST /auth/login", http.HandlerFunc(authHandlers.Login))
	mux.Handle("POST /auth/register", http.HandlerFunc(authHandlers.Register))
	mux.Handle("POST /auth/logout", http.HandlerFunc(authHandlers.Logout))
	mux.Handle("GET /auth/status", http.HandlerFunc(authHandlers.Status))

	mux.Handle("GET /{$}", http.HandlerFunc(dirHandlers.HomeView))
	mux.Handle("GET /login", http.HandlerFunc(dirHandlers.LoginView))
	mux.Handle("GET /profile", http.HandlerFunc(dirHandlers.Profile))
	mux.Handle("GET /students", http.HandlerFunc(dirHandlers.Students))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return NavigationGuard(guard, services.Sessions)(mux)
}
