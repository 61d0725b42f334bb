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

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "user-auth-service-test-secret-0123456789",
			ExpireHours: 1,
		},
	}
}

func setupUserAuthServiceTest(t *testing.T) (*UserAuthService, *AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:user_auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Admin{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	auth := NewAuthService(testAuthConfig(), repository.NewAdminRepository(db))
	return NewUserAuthService(auth, repository.NewUserRepository(db)), auth, db
}

func TestUserAuthServiceRegister(t *testing.T) {
	svc, auth, _ := setupUserAuthServiceTest(t)

	user, token, err := svc.Register("ivan@example.com", "secret123", "Иван", "+7 900 000-00-00")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("user id should be set")
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password must not be stored in plain text")
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != "ivan@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.IsAdmin() {
		t.Fatalf("user token must not carry an admin identity")
	}
}

func TestUserAuthServiceRegisterDuplicateEmail(t *testing.T) {
	svc, _, db := setupUserAuthServiceTest(t)

	if _, _, err := svc.Register("dup@example.com", "secret123", "Первый", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, _, err := svc.Register("dup@example.com", "other456", "Второй", "")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists got %v", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count).Error; err != nil {
		t.Fatalf("count users failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("duplicate register must not create a row, count=%d", count)
	}
}

func TestUserAuthServiceRegisterValidation(t *testing.T) {
	svc, _, _ := setupUserAuthServiceTest(t)

	_, _, err := svc.Register("", "secret123", "Имя", "")
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("want ValidationError got %v", err)
	}
	_, _, err = svc.Register("a@example.com", "secret123", "  ", "")
	if !errors.As(err, &validation) {
		t.Fatalf("blank name want ValidationError got %v", err)
	}
}

func TestUserAuthServiceLogin(t *testing.T) {
	svc, _, _ := setupUserAuthServiceTest(t)

	if _, _, err := svc.Register("login@example.com", "secret123", "Пользователь", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, err := svc.Login("login@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || token == "" {
		t.Fatalf("login should return user and token")
	}

	if _, _, err := svc.Login("login@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email want ErrInvalidCredentials got %v", err)
	}
}

func TestUserAuthServiceAddBonus(t *testing.T) {
	svc, _, _ := setupUserAuthServiceTest(t)

	user, _, err := svc.Register("bonus@example.com", "secret123", "Бонусный", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	balance, err := svc.AddBonus(user.ID, 0)
	if err != nil {
		t.Fatalf("add default bonus failed: %v", err)
	}
	if balance != DefaultBonusPoints {
		t.Fatalf("balance want %d got %d", DefaultBonusPoints, balance)
	}

	balance, err = svc.AddBonus(user.ID, 250)
	if err != nil {
		t.Fatalf("add bonus failed: %v", err)
	}
	if balance != DefaultBonusPoints+250 {
		t.Fatalf("balance want %d got %d", DefaultBonusPoints+250, balance)
	}

	profile, err := svc.Profile(user.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if profile.BonusPoints != balance {
		t.Fatalf("profile balance want %d got %d", balance, profile.BonusPoints)
	}
}

func TestUserAuthServiceProfileMissing(t *testing.T) {
	svc, _, _ := setupUserAuthServiceTest(t)

	_, err := svc.Profile(12345)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}
