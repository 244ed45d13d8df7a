package loginhandler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"emppayroll/internal/domain/auth"
	"emppayroll/internal/transport/http/middleware"
	"emppayroll/internal/transport/http/views"
)

const secret = "0123456789abcdef0123456789abcdef"

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	authenticator, err := auth.NewAuthenticator("admin", "", "s3cret")
	if err != nil {
		t.Fatalf("authenticator: %v", err)
	}
	v := views.New(time.Second, zerolog.Nop())
	r := chi.NewRouter()
	r.Use(middleware.Session(secret))
	NewHandler(authenticator, v.Login, secret, time.Hour, false).RegisterRoutes(r)
	return r
}

func postLogin(h http.Handler, username, password string) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLoginSetsSessionAndRedirects(t *testing.T) {
	h := newRouter(t)
	rec := postLogin(h, "admin", "s3cret")
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			session = c
		}
	}
	if session == nil || session.Value == "" || !session.HttpOnly {
		t.Fatalf("expected http-only session cookie, got %+v", session)
	}
	claims, err := auth.ParseToken(secret, session.Value)
	if err != nil || claims.Username != "admin" {
		t.Fatalf("expected valid token for admin, got %v %+v", err, claims)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(session)
	again := httptest.NewRecorder()
	h.ServeHTTP(again, req)
	if again.Code != http.StatusSeeOther {
		t.Fatalf("expected signed-in operator redirected away from login, got %d", again.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := newRouter(t)
	rec := postLogin(h, "admin", "wrong")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid credentials") {
		t.Fatal("expected error message on page")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("expected no cookie")
	}

	if rec = postLogin(h, "", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty form, got %d", rec.Code)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	h := newRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to login, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cookies)
	}
}
