package handlers

import (
	"net/http"

	"eventhub/internal/http/middleware"
	"eventhub/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Auth services.AuthService
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func (h AuthHandler) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.Auth.Register(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Created(c, "user registered successfully", gin.H{
		"user":        user,
		"accessToken": token,
	})
}

func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	OK(c, "login successful", gin.H{"accessToken": token})
}

func (h AuthHandler) Profile(c *gin.Context) {
	user, err := h.Auth.Profile(middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "profile fetched successfully", user)
}

func (h AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Auth.ChangePassword(middleware.CurrentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		RespondDomainError(c, err)
		return
	}

	OK(c, "password changed successfully", nil)
}

func (h AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Auth.ForgotPassword(req.Email); err != nil {
		RespondDomainError(c, err)
		return
	}

	OK(c, "reset password link sent to your email", nil)
}

// ResetPassword expects the reset token in the Authorization header, the
// same place the email link puts it.
func (h AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	token := c.GetHeader("Authorization")
	if token == "" {
		Fail(c, http.StatusUnauthorized, "reset token is required")
		return
	}

	if err := h.Auth.ResetPassword(token, req.NewPassword); err != nil {
		RespondDomainError(c, err)
		return
	}

	OK(c, "password reset successfully", nil)
}
