package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/slot-scheduler/internal/metrics"
	"github.com/BruksfildServices01/slot-scheduler/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, sessions *session.Manager) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.Use(Recovery(zaptest.NewLogger(t)))

	secured := r.Group("/", AuthMiddleware(sessions))
	secured.GET("/whoami", func(c *gin.Context) {
		a := Actor(c)
		c.JSON(http.StatusOK, gin.H{"id": a.ID, "role": a.Role})
	})
	secured.GET("/admin", RequireRole(session.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	sessions := session.NewManager("test-secret", time.Hour, session.NewMemoryRevocations(nil), nil)
	r := newRouter(t, sessions)

	token, s, err := sessions.Issue(1, session.RoleBarber)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"missing header", "/whoami", "", http.StatusUnauthorized},
		{"wrong scheme", "/whoami", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "/whoami", "Bearer nope", http.StatusUnauthorized},
		{"valid", "/whoami", "Bearer " + token, http.StatusOK},
		{"wrong role", "/admin", "Bearer " + token, http.StatusForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if w := do(r, tc.path, tc.header); w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
		})
	}

	if err := sessions.Revoke(context.Background(), s); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}
	if w := do(r, "/whoami", "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token: expected 401, got %d", w.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := metrics.NewCollector(prometheus.NewRegistry())

	r := gin.New()
	r.Use(RequestLogger(zap.New(core), m))
	r.GET("/barbers/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	do(r, "/barbers/1", "")
	do(r, "/barbers/2", "")
	do(r, "/missing", "")

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/barbers/:id", "200")); got != 2 {
		t.Errorf("expected 2 requests on the route pattern, got %v", got)
	}
	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Errorf("expected 1 unmatched request, got %v", got)
	}
	if got := testutil.ToFloat64(m.InFlightGauge); got != 0 {
		t.Errorf("expected no in-flight requests, got %v", got)
	}
	if n := logs.FilterMessage("request completed").Len(); n != 3 {
		t.Errorf("expected 3 log lines, got %d", n)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}
