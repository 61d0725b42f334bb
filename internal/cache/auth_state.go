package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/sochitour-next/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// UserAuthState is a server-side snapshot of a user identity, cached so the
// auth middleware can skip the existence lookup on every request.
type UserAuthState struct {
	UserID      uint   `json:"user_id"`
	Email       string `json:"email"`
	BonusPoints int    `json:"bonus_points"`
	UpdatedAt   int64  `json:"updated_at"`
}

func userAuthStateKey(userID uint) string {
	return fmt.Sprintf("auth:user:%d", userID)
}

// BuildUserAuthState builds a snapshot from a user model.
func BuildUserAuthState(user *models.User) *UserAuthState {
	if user == nil {
		return nil
	}
	return &UserAuthState{
		UserID:      user.ID,
		Email:       user.Email,
		BonusPoints: user.BonusPoints,
		UpdatedAt:   time.Now().Unix(),
	}
}

// GetUserAuthState reads a cached snapshot; the bool reports a hit.
func GetUserAuthState(ctx context.Context, userID uint) (*UserAuthState, bool, error) {
	if userID == 0 {
		return nil, false, nil
	}
	var state UserAuthState
	hit, err := GetJSON(ctx, userAuthStateKey(userID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetUserAuthState caches a snapshot.
func SetUserAuthState(ctx context.Context, state *UserAuthState) error {
	if state == nil || state.UserID == 0 {
		return nil
	}
	return SetJSON(ctx, userAuthStateKey(state.UserID), state, authStateCacheTTL)
}

// DelUserAuthState drops a snapshot, e.g. after a bonus balance change.
func DelUserAuthState(ctx context.Context, userID uint) error {
	if userID == 0 {
		return nil
	}
	return Del(ctx, userAuthStateKey(userID))
}
