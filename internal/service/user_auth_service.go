package service

import (
	"context"
	"strings"

	"github.com/sochitour-next/internal/cache"
	"github.com/sochitour-next/internal/logger"
	"github.com/sochitour-next/internal/models"
	"github.com/sochitour-next/internal/repository"
)

// DefaultBonusPoints is awarded when a bonus request names no amount.
const DefaultBonusPoints = 500

// UserAuthService handles user registration, login, profile and bonus points.
type UserAuthService struct {
	auth     *AuthService
	userRepo repository.UserRepository
}

// NewUserAuthService creates a user auth service instance.
func NewUserAuthService(auth *AuthService, userRepo repository.UserRepository) *UserAuthService {
	return &UserAuthService{
		auth:     auth,
		userRepo: userRepo,
	}
}

// Register creates a user account and issues a token.
func (s *UserAuthService) Register(email, password, name, phone string) (*models.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" || strings.TrimSpace(name) == "" {
		return nil, "", NewValidationError("email, password and name are required")
	}

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailExists
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		Phone:        strings.TrimSpace(phone),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, _, err := s.auth.GenerateUserToken(user)
	if err != nil {
		return nil, "", err
	}

	_ = cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user))
	logger.Infow("user_registered", "user_id", user.ID, "email", user.Email)
	return user, token, nil
}

// Login authenticates a user and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *UserAuthService) Login(email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", NewValidationError("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := s.auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.auth.GenerateUserToken(user)
	if err != nil {
		return nil, "", err
	}

	_ = cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user))
	return user, token, nil
}

// Profile returns the user's account data.
func (s *UserAuthService) Profile(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// AddBonus credits bonus points and returns the new balance.
func (s *UserAuthService) AddBonus(userID uint, points int) (int, error) {
	if points <= 0 {
		points = DefaultBonusPoints
	}

	if err := s.userRepo.AddBonusPoints(userID, points); err != nil {
		return 0, err
	}
	_ = cache.DelUserAuthState(context.Background(), userID)

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrNotFound
	}
	logger.Infow("bonus_points_added", "user_id", userID, "points", points, "balance", user.BonusPoints)
	return user.BonusPoints, nil
}
