package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sochitour-next/internal/config"
	"github.com/sochitour-next/internal/models"
	"github.com/sochitour-next/internal/repository"
	"github.com/sochitour-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthMiddlewareTest(t *testing.T) (*gin.Engine, *service.AuthService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:middleware_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Admin{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "middleware-test-secret-0123456789abcdef",
			ExpireHours: 1,
		},
	}
	auth := service.NewAuthService(cfg, repository.NewAdminRepository(db))
	userRepo := repository.NewUserRepository(db)

	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/user-only", JWTAuthMiddleware(auth), RequireUser(userRepo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, auth, db
}

func decodeEnvelope(t *testing.T, body []byte) (int, string) {
	t.Helper()
	var resp struct {
		StatusCode int    `json:"status_code"`
		Msg        string `json:"msg"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp.StatusCode, resp.Msg
}

func TestJWTAuthMiddlewareMissingToken(t *testing.T) {
	r, _, _ := setupAuthMiddlewareTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
	code, msg := decodeEnvelope(t, w.Body.Bytes())
	if code != 401 || msg != "access token required" {
		t.Fatalf("unexpected envelope: code=%d msg=%s", code, msg)
	}
}

func TestJWTAuthMiddlewareInvalidToken(t *testing.T) {
	r, _, _ := setupAuthMiddlewareTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status want 403 got %d", w.Code)
	}
	code, msg := decodeEnvelope(t, w.Body.Bytes())
	if code != 403 || msg != "invalid token" {
		t.Fatalf("unexpected envelope: code=%d msg=%s", code, msg)
	}
}

func TestJWTAuthMiddlewareValidToken(t *testing.T) {
	r, auth, db := setupAuthMiddlewareTest(t)

	user := models.User{Email: "mw@example.com", PasswordHash: "hash", Name: "MW"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	token, _, err := auth.GenerateUserToken(&user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
}

func TestRequireUserAcceptsExistingUser(t *testing.T) {
	r, auth, db := setupAuthMiddlewareTest(t)

	user := models.User{Email: "existing@example.com", PasswordHash: "hash", Name: "Existing"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	token, _, err := auth.GenerateUserToken(&user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
}

func TestRequireUserRejectsAdminToken(t *testing.T) {
	r, auth, _ := setupAuthMiddlewareTest(t)

	token, _, err := auth.GenerateAdminToken(&models.Admin{ID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("generate admin token failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status want 403 got %d", w.Code)
	}
	code, msg := decodeEnvelope(t, w.Body.Bytes())
	if code != 403 || msg != "invalid token" {
		t.Fatalf("unexpected envelope: code=%d msg=%s", code, msg)
	}
}

func TestRequireUserRejectsDeletedUser(t *testing.T) {
	r, auth, _ := setupAuthMiddlewareTest(t)

	// Token for a user id that has no row behind it.
	token, _, err := auth.GenerateUserToken(&models.User{ID: 999, Email: "gone@example.com"})
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status want 403 got %d", w.Code)
	}
}

func TestResolveAllowedOrigin(t *testing.T) {
	if got := resolveAllowedOrigin("https://example.com", []string{"*"}, false); got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}
	if got := resolveAllowedOrigin("https://example.com", []string{"*"}, true); got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}
	if got := resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com"}, false); got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}
	if got := resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false); got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w2.Header().Get(requestIDHeader) == "" {
		t.Fatalf("generated request id should not be empty")
	}
}
