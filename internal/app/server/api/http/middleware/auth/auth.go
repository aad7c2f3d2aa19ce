// Package auth gates requests on the session cookie. API operations get a
// huma middleware answering 401 in JSON; page routes get a plain net/http
// middleware that redirects to the login form instead.
package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
	"questbuilder/internal/domain/session"
)

// CookieName is the session cookie the browser carries between requests.
const CookieName = "session"

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With(slog.String("component", "auth middleware")),
	}
}

type contextKey string

const UserIDKey contextKey = "userID"

// Middleware validates the session cookie and rejects API calls with a
// 401 JSON body; browser scripts key off the status, not a redirect.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		cookie, err := huma.ReadCookie(ctx, CookieName)
		if err != nil {
			a.unauthorized(ctx)
			return
		}

		userID, err := a.session.Validate(ctx.Context(), cookie.Value)
		if err != nil {
			a.log.Debug("session rejected", slog.String("error", err.Error()))
			a.unauthorized(ctx)
			return
		}

		newCtx := context.WithValue(ctx.Context(), UserIDKey, userID)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) unauthorized(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "authentication required",
	}); err != nil {
		a.log.Error("encode 401 body", slog.String("error", err.Error()))
	}
}

// RedirectMiddleware guards page routes: an anonymous request is sent to
// the login form rather than given a JSON error.
func (a *Auth) RedirectMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		userID, err := a.session.Validate(r.Context(), cookie.Value)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserIDKey, userID)))
	})
}

// WithUserID returns a context carrying an authenticated user id, the same
// way the middleware does.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
