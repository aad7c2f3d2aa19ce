// Package web serves the browser-facing pages: the map editor, the auth
// forms and the card-builder shell. Unlike the JSON API, failures here
// render the message view and anonymous requests are redirected to /login.
package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
	"questbuilder/internal/app/server/api/http/middleware/auth"
	"questbuilder/internal/board"
	"questbuilder/internal/domain/quest"
	"questbuilder/internal/domain/session"
	"questbuilder/internal/domain/user"
)

const version = "1.0"

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	user    user.Servicer
	session session.Servicer
	quest   quest.Servicer
	log     *slog.Logger

	cardDir    string
	sessionTTL time.Duration
	tmpl       *template.Template
}

func NewHandler(userSvc user.Servicer, sessionSvc session.Servicer, questSvc quest.Servicer,
	cardDir string, sessionTTL time.Duration, log *slog.Logger) *Handler {
	return &Handler{
		user:       userSvc,
		session:    sessionSvc,
		quest:      questSvc,
		log:        log,
		cardDir:    cardDir,
		sessionTTL: sessionTTL,
		tmpl:       template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// SetupRoutes mounts the page routes. Protected pages go through the
// redirecting auth middleware; login and register stay public.
func (h *Handler) SetupRoutes(mux *chi.Mux, authMW *auth.Auth) {
	mux.Group(func(r chi.Router) {
		r.Use(authMW.RedirectMiddleware)
		r.Get("/", h.index)
		r.Post("/", h.index)
		r.Get("/credits", h.credits)
		r.Get("/loadmap", h.loadmap)
		r.Post("/delete", h.deleteMap)
		r.Get("/cards", h.cardApp)
		r.Get("/cards/*", h.cardApp)
	})

	mux.Get("/login", h.loginForm)
	mux.Post("/login", h.login)
	mux.Get("/register", h.registerForm)
	mux.Post("/register", h.register)
	mux.Get("/logout", h.logout)

	mux.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.GetUserID(r.Context())

	mapData := any("")
	if r.Method == http.MethodPost {
		id, err := strconv.ParseInt(r.FormValue("id"), 10, 64)
		if err != nil {
			h.message(w, http.StatusBadRequest, "invalid map id")
			return
		}
		m, err := h.quest.Find(r.Context(), userID, id)
		if err != nil {
			h.message(w, http.StatusNotFound, "map not found")
			return
		}
		mapData = map[string]string{
			"title":    m.Title,
			"author":   m.Author,
			"story":    m.Story,
			"notes":    m.Notes,
			"wmonster": m.WMonster,
			"cells":    m.Cells,
		}
	}

	h.render(w, http.StatusOK, "createmap.html", map[string]any{
		"BoardData": toJS(board.Layout()),
		"MapData":   toJS(mapData),
	})
}

func (h *Handler) credits(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "credits.html", map[string]any{"Version": version})
}

func (h *Handler) loadmap(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.GetUserID(r.Context())

	maps, err := h.quest.List(r.Context(), userID)
	if err != nil {
		h.log.Error("list maps", slog.String("error", err.Error()))
		h.message(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	h.render(w, http.StatusOK, "loadmap.html", map[string]any{"Maps": maps})
}

func (h *Handler) deleteMap(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.GetUserID(r.Context())

	id, err := strconv.ParseInt(r.FormValue("id"), 10, 64)
	if err != nil {
		h.message(w, http.StatusBadRequest, "invalid map id")
		return
	}

	if err := h.quest.Delete(r.Context(), userID, id); err != nil {
		h.log.Error("delete map", slog.String("error", err.Error()))
		h.message(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	http.Redirect(w, r, "/loadmap", http.StatusFound)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.dropSession(w, r)
	h.render(w, http.StatusOK, "login.html", nil)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.dropSession(w, r)

	u, err := h.user.Authenticate(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		if user.IsValidation(err) {
			h.message(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("authenticate", slog.String("error", err.Error()))
		h.message(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	token, err := h.session.Create(r.Context(), u.ID)
	if err != nil {
		h.log.Error("create session", slog.String("error", err.Error()))
		h.message(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.dropSession(w, r)
	h.render(w, http.StatusOK, "register.html", nil)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	_, err := h.user.Register(r.Context(),
		r.FormValue("username"), r.FormValue("password"), r.FormValue("confirmpassword"))
	if err != nil {
		if user.IsValidation(err) {
			h.message(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("register", slog.String("error", err.Error()))
		h.message(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	h.message(w, http.StatusOK, "Registration successful!")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.dropSession(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}

// cardApp serves the built card-builder bundle with an index.html fallback
// for client-side routes.
func (h *Handler) cardApp(w http.ResponseWriter, r *http.Request) {
	if info, err := os.Stat(h.cardDir); err != nil || !info.IsDir() {
		h.message(w, http.StatusInternalServerError,
			"Card builder not built. Run: cd card-builder && npm install && npm run build")
		return
	}

	rel := strings.TrimPrefix(r.URL.Path, "/cards")
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || strings.HasSuffix(rel, "/") {
		rel = "index.html"
	}

	full := filepath.Join(h.cardDir, filepath.FromSlash(rel))
	if !strings.HasPrefix(full, filepath.Clean(h.cardDir)) {
		http.NotFound(w, r)
		return
	}

	if info, err := os.Stat(full); err != nil || info.IsDir() {
		full = filepath.Join(h.cardDir, "index.html")
	}

	http.ServeFile(w, r, full)
}

// dropSession revokes whatever session the request presented and expires
// the cookie; used by login, register and logout.
func (h *Handler) dropSession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		if err := h.session.Destroy(r.Context(), cookie.Value); err != nil {
			h.log.Error("destroy session", slog.String("error", err.Error()))
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("render template", slog.String("template", name), slog.String("error", err.Error()))
	}
}

func (h *Handler) message(w http.ResponseWriter, status int, msg string) {
	h.render(w, status, "message.html", map[string]any{"Message": msg})
}

// toJS marshals v for inline inclusion in a script block.
func toJS(v any) template.JS {
	encoded, err := json.Marshal(v)
	if err != nil {
		return template.JS(`""`)
	}
	return template.JS(encoded)
}
