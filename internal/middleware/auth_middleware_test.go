package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MdAbdullahIbnNoor/online-group-study-server/internal/auth"
)

var testSecret = []byte("test-secret")

func newGuardedHandler(t *testing.T, called *bool, identity *map[string]interface{}) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if identity != nil {
			*identity = Identity(r.Context())
		}
		w.WriteHeader(http.StatusOK)
	})
	return RequireSession(testSecret)(next)
}

func TestRequireSessionNoCookie(t *testing.T) {
	called := false
	handler := newGuardedHandler(t, &called, nil)

	req := httptest.NewRequest(http.MethodGet, "/myAssignment", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without cookie, got %d", rec.Code)
	}
	if called {
		t.Error("handler must not run without a session")
	}
}

func TestRequireSessionInvalidToken(t *testing.T) {
	called := false
	handler := newGuardedHandler(t, &called, nil)

	req := httptest.NewRequest(http.MethodGet, "/myAssignment", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-jwt"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with invalid token, got %d", rec.Code)
	}
	if called {
		t.Error("handler must not run with an invalid session")
	}
}

func TestRequireSessionValidToken(t *testing.T) {
	token, err := auth.GenerateJWT(map[string]interface{}{"email": "student@example.com"}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	called := false
	var identity map[string]interface{}
	handler := newGuardedHandler(t, &called, &identity)

	req := httptest.NewRequest(http.MethodGet, "/myAssignment", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rec.Code)
	}
	if !called {
		t.Fatal("handler did not run with a valid session")
	}
	if identity["email"] != "student@example.com" {
		t.Errorf("expected identity on context, got %v", identity)
	}
}

func TestIdentityWithoutSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/assignment", nil)
	if got := Identity(req.Context()); got != nil {
		t.Errorf("expected nil identity on unguarded request, got %v", got)
	}
}
