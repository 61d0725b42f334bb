package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sochitour-next/internal/config"
	"github.com/sochitour-next/internal/models"
	"github.com/sochitour-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewAuthService(testAuthConfig(), repository.NewAdminRepository(db)), db
}

func TestAuthServiceAdminLogin(t *testing.T) {
	svc, db := setupAuthServiceTest(t)

	hash, err := svc.HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	if err := db.Create(&models.Admin{Username: "admin", PasswordHash: hash}).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	admin, token, expiresAt, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if admin.Username != "admin" || token == "" {
		t.Fatalf("login should return admin and token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expiry should be in the future, got %v", expiresAt)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if !claims.IsAdmin() || claims.Username != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.UserID != 0 {
		t.Fatalf("admin token must not carry a user identity")
	}

	if _, _, _, err := svc.Login("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("ghost", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown admin want ErrInvalidCredentials got %v", err)
	}
}

func TestAuthServiceParseTokenRejectsTampered(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	token, _, err := svc.GenerateUserToken(&models.User{ID: 1, Email: "a@example.com"})
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	if _, err := svc.ParseToken(token + "x"); err == nil {
		t.Fatalf("tampered token must not parse")
	}

	other := NewAuthService(&config.Config{
		JWT: config.JWTConfig{SecretKey: "another-secret-key-0123456789abcdef", ExpireHours: 1},
	}, nil)
	if _, err := other.ParseToken(token); err == nil {
		t.Fatalf("token signed with a different secret must not parse")
	}
}
