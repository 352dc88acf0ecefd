package httpx

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/campusapps/studentdir/internal/domain/nav"
)

// Logging returns a middleware that logs every request with its status and duration.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// viewForPath maps request paths to the views the navigation guard knows
// about. Paths outside the view surface (the /auth API, health checks)
// return false and bypass the guard.
func viewForPath(path string) (nav.View, bool) {
	switch path {
	case "/":
		return nav.ViewHome, true
	case "/login":
		return nav.ViewLogin, true
	case "/profile":
		return nav.ViewProfile, true
	case "/students":
		return nav.ViewStudents, true
	default:
		return "", false
	}
}

// pathForView is the inverse mapping, used for redirect targets.
func pathForView(v nav.View) string {
	switch v {
	case nav.ViewHome:
		return "/"
	case nav.ViewLogin:
		return "/login"
	case nav.ViewProfile:
		return "/profile"
	case nav.ViewStudents:
		return "/students"
	default:
		return "/"
	}
}

// NavigationGuard redirects view requests according to the session state:
// signed-out users off protected views, signed-in users off public ones.
// While the session is still resolving every view passes through untouched.
func NavigationGuard(guard *nav.Guard, sessions SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}
			view, ok := viewForPath(r.URL.Path)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			if target, redirect := guard.Decide(view, sessions.Current()); redirect {
				http.Redirect(w, r, pathForView(target), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
