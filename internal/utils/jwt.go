package utils

import (
	"time" // Token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Claims carried by every issued token
type Claims struct {
	UserID               uint   `json:"user_id"` // Authenticated user id
	Name                 string `json:"name"`    // Display name
	Email                string `json:"email"`   // Login email
	jwt.RegisteredClaims        // Standard JWT claims
}

// GenerateJWT issues a signed token for the given user, valid for 24 hours
func GenerateJWT(userID uint, name, email, secret string) (string, error) {
	claims := Claims{
		UserID: userID,
		Name:   name,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT validates a token string and returns its claims
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
