package service

import (
	"errors"
	"time"

	"github.com/sochitour-next/internal/config"
	"github.com/sochitour-next/internal/models"
	"github.com/sochitour-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenClaims is the shared JWT payload. Exactly one identity is set:
// user tokens carry {user_id, email}, admin tokens carry {admin_id, username}.
type TokenClaims struct {
	UserID   uint   `json:"user_id,omitempty"`
	Email    string `json:"email,omitempty"`
	AdminID  uint   `json:"admin_id,omitempty"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the token carries an admin identity.
func (c *TokenClaims) IsAdmin() bool {
	return c != nil && c.AdminID != 0
}

// AuthService issues and verifies JWT tokens and handles admin login.
type AuthService struct {
	cfg       *config.Config
	adminRepo repository.AdminRepository
}

// NewAuthService creates an auth service instance.
func NewAuthService(cfg *config.Config, adminRepo repository.AdminRepository) *AuthService {
	return &AuthService{
		cfg:       cfg,
		adminRepo: adminRepo,
	}
}

// HashPassword hashes a password with bcrypt.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a bcrypt hash against a plaintext password.
func (s *AuthService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// GenerateUserToken signs a token for a storefront user.
func (s *AuthService) GenerateUserToken(user *models.User) (string, time.Time, error) {
	return s.sign(TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
	})
}

// GenerateAdminToken signs a token for an administrator.
func (s *AuthService) GenerateAdminToken(admin *models.Admin) (string, time.Time, error) {
	return s.sign(TokenClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
	})
}

func (s *AuthService) sign(claims TokenClaims) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.JWT.ExpireHours) * time.Hour)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		NotBefore: jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken verifies a token string and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (*TokenClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Login authenticates an administrator and issues a token.
func (s *AuthService) Login(username, password string) (*models.Admin, string, time.Time, error) {
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if admin == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if err := s.VerifyPassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateAdminToken(admin)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return admin, token, expiresAt, nil
}
