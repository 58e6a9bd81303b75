package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(verify VerifyFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Header("X-Request-ID", "rid-auth"); c.Next() })
	r.Use(RequireAPIKey(verify))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestRequireAPIKey_MissingHeader(t *testing.T) {
	called := false
	r := newAuthRouter(func(ctx context.Context, presented string) bool {
		called = true
		return presented != ""
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	r.ServeHTTP(w, req)

	if !called {
		t.Fatalf("verify must be consulted even for a missing header")
	}
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["code"] != "unauthorized" || body["message"] != "missing or invalid api key" {
		t.Fatalf("unexpected 401 envelope: %v", body)
	}
	if body["request_id"] != "rid-auth" {
		t.Fatalf("expected request id in envelope, got %v", body["request_id"])
	}
}

func TestRequireAPIKey_WrongKey_SameEnvelopeAsMissing(t *testing.T) {
	r := newAuthRouter(func(ctx context.Context, presented string) bool { return false })

	missing := httptest.NewRecorder()
	r.ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/ok", nil))

	wrong := httptest.NewRecorder()
	reqWrong := httptest.NewRequest(http.MethodGet, "/ok", nil)
	reqWrong.Header.Set(HeaderAPIKey, "nope")
	r.ServeHTTP(wrong, reqWrong)

	if missing.Code != http.StatusUnauthorized || wrong.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", missing.Code, wrong.Code)
	}
	// The rejection must not reveal whether a key was present at all.
	if missing.Body.String() != wrong.Body.String() {
		t.Fatalf("rejection bodies differ:\n%s\n%s", missing.Body.String(), wrong.Body.String())
	}
}

func TestRequireAPIKey_ValidKeyPassesThrough(t *testing.T) {
	const secret = "s3cret"
	var seen string
	r := newAuthRouter(func(ctx context.Context, presented string) bool {
		seen = presented
		return presented == secret
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(HeaderAPIKey, secret)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("expected handler to run, got %d %q", w.Code, w.Body.String())
	}
	if seen != secret {
		t.Fatalf("verify received %q, want %q", seen, secret)
	}
}
