package loginhandler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"emppayroll/internal/domain/auth"
	"emppayroll/internal/requestctx"
	"emppayroll/internal/transport/http/middleware"
	"emppayroll/internal/transport/http/views"
)

type Handler struct {
	Auth         *auth.Authenticator
	View         *views.Lazy
	Secret       string
	TTL          time.Duration
	SecureCookie bool
}

func NewHandler(authenticator *auth.Authenticator, view *views.Lazy, secret string, ttl time.Duration, secureCookie bool) *Handler {
	return &Handler{Auth: authenticator, View: view, Secret: secret, TTL: ttl, SecureCookie: secureCookie}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleLoginPage)
	r.Post("/", h.handleLogin)
	r.Post("/logout", h.handleLogout)
}

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestctx.GetOperator(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.View.Render(w, r, http.StatusOK, views.LoginPage{Error: r.URL.Query().Get("error")})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.View.Render(w, r, http.StatusBadRequest, views.LoginPage{Error: "Invalid form submission"})
		return
	}
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		h.View.Render(w, r, http.StatusBadRequest, views.LoginPage{Username: username, Error: "Username and password are required"})
		return
	}
	if err := h.Auth.Verify(username, password); err != nil {
		log.Warn().Str("username", username).Str("requestId", middleware.GetRequestID(r.Context())).Msg("login rejected")
		h.View.Render(w, r, http.StatusUnauthorized, views.LoginPage{Username: username, Error: "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(h.Secret, username, h.TTL)
	if err != nil {
		log.Error().Err(err).Msg("issue session token failed")
		http.Error(w, "unable to start session", http.StatusInternalServerError)
		return
	}
	middleware.SetSessionCookie(w, token, h.TTL, h.SecureCookie)
	log.Info().Str("username", username).Msg("operator signed in")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w, h.SecureCookie)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
