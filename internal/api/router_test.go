package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/app"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/pkg/rabbitmq"
)

func newTestRouter(t *testing.T) (http.Handler, *memUserRepo) {
	t.Helper()
	repo := newMemUserRepo()
	sessions := NewSessionManager("test-secret")
	alerts := &memAlertRepo{}
	sosService := app.NewSOSService(&stubNotifier{}, alerts, &rabbitmq.NoopPublisher{})

	router := Routes(
		sessions,
		NewAuthHandler(repo, sessions),
		NewSOSHandler(sosService, alerts),
		NewExploreHandler(testCatalog()),
	)
	return router, repo
}

func TestGatedRoutesRedirectAnonymous(t *testing.T) {
	router, _ := newTestRouter(t)

	gated := []string{"/", "/product", "/solutions", "/community", "/resources", "/contact", "/twilio", "/alerts"}
	for _, path := range gated {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
			t.Fatalf("%s should redirect anonymous users to /login, got %d -> %q", path, rec.Code, rec.Header().Get("Location"))
		}
	}
}

func TestPublicRoutesSkipTheGate(t *testing.T) {
	router, _ := newTestRouter(t)

	public := []string{"/login", "/privacy", "/terms", "/buddy", "/explore"}
	for _, path := range public {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s should be public, got %d", path, rec.Code)
		}
	}
}

func TestLoginGrantsAccessWithoutReprompt(t *testing.T) {
	router, _ := newTestRouter(t)

	register := url.Values{"username": {"asha"}, "password": {"s3cret"}}
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(register.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("registration failed: %d %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(register.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("login should redirect home, got %d -> %q", rec.Code, rec.Header().Get("Location"))
	}

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			session = c
		}
	}
	if session == nil {
		t.Fatalf("login did not set a session cookie")
	}

	for _, path := range []string{"/", "/alerts", "/twilio"} {
		req = httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(session)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s should be reachable with a valid session, got %d", path, rec.Code)
		}
	}
}
