package services

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/repositories"
	"eventhub/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

type fakeMail struct {
	subject string
	to      string
	body    string
	sent    int
	err     error
}

func (f *fakeMail) Send(subject, to, htmlBody string) error {
	f.sent++
	f.subject = subject
	f.to = to
	f.body = htmlBody
	return f.err
}

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock, *fakeMail) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	sender := &fakeMail{}
	svc := AuthService{
		UserRepo:    repositories.UserRepo{DB: db},
		Mail:        sender,
		JWTSecret:   []byte("test-jwt-secret"),
		JWTTTL:      time.Hour,
		ResetSecret: []byte("test-reset-secret"),
		ResetTTL:    15 * time.Minute,
		ResetLink:   "http://localhost:3000/reset-password",
	}
	return svc, mock, sender
}

func userRow(id int64, email, passwordHash string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "full_name", "email", "password_hash", "role", "status",
		"profile_image", "created_at", "updated_at",
	}).AddRow(id, "Test User", email, passwordHash, "USER", "ACTIVE", "",
		"2026-01-01 10:00:00", "2026-01-01 10:00:00")
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	svc, mock, _ := newAuthService(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email=").
		WithArgs("taken@example.com").
		WillReturnRows(userRow(1, "taken@example.com", "x"))

	_, _, err := svc.Register(RegisterInput{
		FullName: "Someone Else",
		Email:    "Taken@Example.com",
		Password: "secret123",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	svc, mock, _ := newAuthService(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email=").
		WithArgs("new@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(4, 1))

	user, token, err := svc.Register(RegisterInput{
		FullName: "New User",
		Email:    "new@example.com",
		Password: "secret123",
		Role:     "SUPER_ADMIN", // privileged roles cannot be self-assigned
	})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if user.Role != "USER" {
		t.Fatalf("expected USER role, got %s", user.Role)
	}
	if token == "" {
		t.Fatal("expected a signed access token")
	}

	claims, err := utils.ValidateToken(token, svc.JWTSecret)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.ID != 4 || claims.Email != "new@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock, _ := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email=").
		WithArgs("user@example.com").
		WillReturnRows(userRow(2, "user@example.com", string(hash)))

	_, err = svc.Login("user@example.com", "battery-staple")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestForgotPasswordSendsResetLink(t *testing.T) {
	svc, mock, sender := newAuthService(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email=").
		WithArgs("user@example.com").
		WillReturnRows(userRow(2, "user@example.com", "x"))

	if err := svc.ForgotPassword("user@example.com"); err != nil {
		t.Fatalf("forgot password error: %v", err)
	}
	if sender.sent != 1 {
		t.Fatalf("expected one email, got %d", sender.sent)
	}
	if sender.to != "user@example.com" {
		t.Fatalf("email sent to wrong recipient: %s", sender.to)
	}
	if !strings.Contains(sender.body, svc.ResetLink+"?userId=2&token=") {
		t.Fatalf("reset link missing from email body: %s", sender.body)
	}
}

// An invalid or expired token must never touch the stored hash; the empty
// expectation set fails the test on any SQL reaching the database.
func TestResetPasswordInvalidTokenDoesNotMutate(t *testing.T) {
	svc, mock, _ := newAuthService(t)

	if err := svc.ResetPassword("not-a-token", "newsecret"); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden error, got %v", err)
	}

	expired, err := utils.GenerateToken(utils.TokenClaims{ID: 2, Email: "user@example.com", Role: "USER"},
		svc.ResetSecret, -time.Minute)
	if err != nil {
		t.Fatalf("token generation error: %v", err)
	}
	if err := svc.ResetPassword(expired, "newsecret"); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden error for expired token, got %v", err)
	}

	wrongKey, err := utils.GenerateToken(utils.TokenClaims{ID: 2, Email: "user@example.com", Role: "USER"},
		[]byte("another-secret"), time.Minute)
	if err != nil {
		t.Fatalf("token generation error: %v", err)
	}
	if err := svc.ResetPassword(wrongKey, "newsecret"); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden error for wrong signature, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("database must not be touched: %v", err)
	}
}

func TestResetPasswordValidToken(t *testing.T) {
	svc, mock, _ := newAuthService(t)

	token, err := utils.GenerateToken(utils.TokenClaims{ID: 2, Email: "user@example.com", Role: "USER"},
		svc.ResetSecret, svc.ResetTTL)
	if err != nil {
		t.Fatalf("token generation error: %v", err)
	}

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id=").
		WithArgs(int64(2)).
		WillReturnRows(userRow(2, "user@example.com", "old-hash"))
	mock.ExpectExec("UPDATE users SET password_hash=").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.ResetPassword(token, "newsecret"); err != nil {
		t.Fatalf("reset password error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestChangePasswordWrongOldPassword(t *testing.T) {
	svc, mock, _ := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("original"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id=").
		WithArgs(int64(2)).
		WillReturnRows(userRow(2, "user@example.com", string(hash)))

	if err := svc.ChangePassword(2, "guess", "newsecret"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}
