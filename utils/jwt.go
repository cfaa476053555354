package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	AccountID uint   `json:"accountId"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken สร้าง JWT สำหรับ account
func GenerateToken(accountID uint, role string, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
