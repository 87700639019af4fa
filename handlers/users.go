package handlers

import (
	"errors"
	"net/http"

	"hospitality/services/user"
	"hospitality/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves account signup, verification, and signin.
type UserHandler struct {
	Users user.UserService
}

// Register creates an unverified account and emails a verification code.
func (h *UserHandler) Register(c *gin.Context) {
	var input struct {
		FullName string `json:"full_name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	u, err := h.Users.Register(input.FullName, input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":      u.ID,
		"email":   u.Email,
		"message": "Account created. Check your email for the verification code.",
	})
}

// VerifyOTP confirms the emailed code.
func (h *UserHandler) VerifyOTP(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Users.VerifyOTP(input.Email, input.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account verified."})
}

// Me returns the authenticated user's account.
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")
	u, err := h.Users.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// SignIn checks credentials and returns a signed token.
func (h *UserHandler) SignIn(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	auth, err := h.Users.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, auth)
}
