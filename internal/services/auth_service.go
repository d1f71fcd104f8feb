package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/domain/models"
	"eventhub/internal/mail"
	"eventhub/internal/repositories"
	"eventhub/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo repositories.UserRepo
	Mail     mail.Sender

	JWTSecret   []byte
	JWTTTL      time.Duration
	ResetSecret []byte
	ResetTTL    time.Duration
	ResetLink   string
}

type RegisterInput struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// Register creates the user and signs them in directly.
func (s AuthService) Register(input RegisterInput) (models.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	_, err := s.UserRepo.GetByEmail(email)
	if err == nil {
		return models.User{}, "", domain.ConflictError{
			Resource: "user",
			Msg:      fmt.Sprintf("user with this email %s already exists", email),
		}
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, "", domain.InternalError{Err: err}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}

	role := strings.ToUpper(strings.TrimSpace(input.Role))
	switch role {
	case models.RoleUser, models.RoleStudent, models.RoleTutor:
	default:
		role = models.RoleUser
	}

	user := models.User{
		FullName:     strings.TrimSpace(input.FullName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       models.UserStatusActive,
	}

	id, err := s.UserRepo.Create(user)
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}
	user.ID = id

	token, err := s.issueToken(user)
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}
	return user, token, nil
}

func (s AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.GetByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NotFoundError{Resource: "user"}
		}
		return "", domain.InternalError{Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.UnauthorizedError{Msg: "password incorrect"}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", domain.InternalError{Err: err}
	}
	return token, nil
}

func (s AuthService) Profile(userID int64) (models.User, error) {
	user, err := s.UserRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	return user, nil
}

func (s AuthService) ChangePassword(userID int64, oldPassword, newPassword string) error {
	user, err := s.Profile(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return domain.UnauthorizedError{Msg: "incorrect old password"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Err: err}
	}

	if err := s.UserRepo.UpdatePassword(userID, string(hash)); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// ForgotPassword emails a short-lived reset link embedding a signed token.
func (s AuthService) ForgotPassword(email string) error {
	user, err := s.UserRepo.GetByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "user"}
		}
		return domain.InternalError{Err: err}
	}

	token, err := utils.GenerateToken(utils.TokenClaims{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}, s.ResetSecret, s.ResetTTL)
	if err != nil {
		return domain.InternalError{Err: err}
	}

	link := fmt.Sprintf("%s?userId=%d&token=%s", s.ResetLink, user.ID, token)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; line-height: 1.6;">
			<p>Dear %s,</p>
			<p>We received a request to reset your password. Click the link below to reset it:</p>
			<p><a href="%s">Reset Password</a></p>
			<p>If you did not request a password reset, please ignore this email.</p>
		</div>`, user.FullName, link)

	if err := s.Mail.Send("Reset Your Password", user.Email, body); err != nil {
		return domain.InternalError{Msg: "failed to send reset email", Err: err}
	}
	return nil
}

// ResetPassword verifies the reset token's signature and expiry before
// touching the stored hash; an invalid token never mutates anything.
func (s AuthService) ResetPassword(token, newPassword string) error {
	claims, err := utils.ValidateToken(token, s.ResetSecret)
	if err != nil {
		return domain.ForbiddenError{Msg: "invalid or expired reset token", Err: err}
	}

	user, err := s.Profile(claims.ID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Err: err}
	}

	if err := s.UserRepo.UpdatePassword(user.ID, string(hash)); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (s AuthService) issueToken(user models.User) (string, error) {
	return utils.GenerateToken(utils.TokenClaims{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}, s.JWTSecret, s.JWTTTL)
}
