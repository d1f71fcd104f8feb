package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the identity embedded in both access and reset tokens.
type TokenClaims struct {
	ID    int64
	Email string
	Role  string
}

func GenerateToken(claims TokenClaims, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    claims.ID,
		"email": claims.Email,
		"role":  claims.Role,
		"exp":   time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// ValidateToken verifies signature and expiry and returns the embedded claims.
func ValidateToken(tokenString string, secret []byte) (TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return TokenClaims{}, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return TokenClaims{}, fmt.Errorf("invalid token claims")
	}

	out := TokenClaims{}
	if v, ok := mapClaims["id"].(float64); ok {
		out.ID = int64(v)
	}
	if v, ok := mapClaims["email"].(string); ok {
		out.Email = v
	}
	if v, ok := mapClaims["role"].(string); ok {
		out.Role = v
	}
	if out.ID == 0 {
		return TokenClaims{}, fmt.Errorf("token has no subject id")
	}
	return out, nil
}
