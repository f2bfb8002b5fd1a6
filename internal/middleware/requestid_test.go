package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func setupRequestIDRouter(mw gin.HandlerFunc) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)

	var captured string
	r.GET("/", func(c *gin.Context) {
		captured = GetRequestID(c)
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	r, captured := setupRequestIDRouter(RequestID())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	id := w.Header().Get("X-Request-ID")
	if id == "" {
		t.Fatal("expected X-Request-ID response header")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("response id %q is not a UUID: %v", id, err)
	}
	if *captured != id {
		t.Errorf("context id %q != header id %q", *captured, id)
	}
}

func TestRequestID_IgnoresUpstreamByDefault(t *testing.T) {
	r, _ := setupRequestIDRouter(RequestID())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id-123")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got == "upstream-id-123" {
		t.Error("untrusted upstream id must not be reused")
	}
}

func TestRequestID_TrustUpstream(t *testing.T) {
	r, captured := setupRequestIDRouter(RequestIDWithConfig(RequestIDConfig{TrustUpstream: true}))

	t.Run("valid upstream id is reused", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "upstream-id-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != "upstream-id-123" {
			t.Errorf("expected upstream id to be reused, got %q", got)
		}
		if *captured != "upstream-id-123" {
			t.Errorf("context id = %q, want upstream id", *captured)
		}
	})

	t.Run("malformed upstream id is replaced", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "bad id with spaces!")
		r.ServeHTTP(w, req)

		got := w.Header().Get("X-Request-ID")
		if got == "bad id with spaces!" || got == "" {
			t.Errorf("expected a fresh id, got %q", got)
		}
	})
}

func TestGetRequestID_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if id := GetRequestID(c); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}
