package public

import (
	"github.com/sochitour-next/internal/http/response"
	"github.com/sochitour-next/internal/models"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type bonusRequest struct {
	Points int `json:"points"`
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"name":         user.Name,
		"phone":        user.Phone,
		"bonus_points": user.BonusPoints,
	}
}

// Register handles POST /api/register.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email, password and name are required")
		return
	}

	user, token, err := h.UserAuthService.Register(req.Email, req.Password, req.Name, req.Phone)
	if err != nil {
		respondServiceError(c, err, "user not found")
		return
	}

	response.Success(c, gin.H{
		"token": token,
		"user":  userPayload(user),
	})
}

// Login handles POST /api/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}

	user, token, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "user not found")
		return
	}

	response.Success(c, gin.H{
		"token": token,
		"user":  userPayload(user),
	})
}

// Profile handles GET /api/profile.
func (h *Handler) Profile(c *gin.Context) {
	user, err := h.UserAuthService.Profile(currentUserID(c))
	if err != nil {
		respondServiceError(c, err, "user not found")
		return
	}
	response.Success(c, userPayload(user))
}

// AddBonus handles POST /api/bonus/add.
func (h *Handler) AddBonus(c *gin.Context) {
	var req bonusRequest
	// An empty body falls back to the default award.
	_ = c.ShouldBindJSON(&req)

	balance, err := h.UserAuthService.AddBonus(currentUserID(c), req.Points)
	if err != nil {
		respondServiceError(c, err, "user not found")
		return
	}

	response.SuccessWithMsg(c, "bonus points added", gin.H{
		"bonus_points": balance,
	})
}
