package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupGate(t *testing.T) (*gin.Engine, string, string) {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewBookingMemoryRepository()
	tokens := auth.NewTokens("test-secret")

	user, _ := repo.UpsertUser(ctx, &models.User{OpenID: "u"})
	admin, _ := repo.UpsertUser(ctx, &models.User{OpenID: "a", Role: models.RoleAdmin})

	userTok, _ := tokens.Issue(user.ID, user.Role)
	adminTok, _ := tokens.Issue(admin.ID, admin.Role)

	r := gin.New()
	r.Use(Authenticate(tokens, repo))
	r.GET("/public", func(c *gin.Context) {
		_, ok := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"identified": ok})
	})
	r.GET("/me", RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	return r, userTok, adminTok
}

func TestAccessGate(t *testing.T) {
	r, userTok, adminTok := setupGate(t)

	tests := []struct {
		name   string
		path   string
		header string
		cookie string
		want   int
	}{
		{"public anonymous", "/public", "", "", http.StatusOK},
		{"public with garbage token", "/public", "Bearer nope", "", http.StatusOK},
		{"auth anonymous", "/me", "", "", http.StatusUnauthorized},
		{"auth bad token", "/me", "Bearer nope", "", http.StatusUnauthorized},
		{"auth with header", "/me", "Bearer " + userTok, "", http.StatusOK},
		{"auth with cookie", "/me", "", userTok, http.StatusOK},
		{"admin anonymous", "/admin", "", "", http.StatusUnauthorized},
		{"admin as user", "/admin", "Bearer " + userTok, "", http.StatusForbidden},
		{"admin as admin", "/admin", "Bearer " + adminTok, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(2, zap.NewNop()))
	r.POST("/bookings", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Errorf("unexpected codes %v", codes)
	}

	req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("other clients have their own budget, got %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(RequestIDHeader) == "" || w.Body.String() != w.Header().Get(RequestIDHeader) {
		t.Errorf("expected generated request id, got %q", w.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) != "abc" {
		t.Error("incoming request id must be kept")
	}
}
