package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JwtKey signs account and verification tokens. Loaded from JWT_SECRET at
// startup.
var JwtKey []byte

// tokenLifetime bounds how long a login token stays valid.
const tokenLifetime = 24 * time.Hour

// Claims represents the JWT claims attached to account tokens
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

// GenerateJWT generates a signed token for a user
func GenerateJWT(email, role string) (string, error) {
	claims := &Claims{
		Email: email,
		Role:  role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenLifetime).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtKey)
}
