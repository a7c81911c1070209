package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT signs the given identity payload as-is into a token that expires
// after ttl. The payload shape is whatever the client posted at login.
func GenerateJWT(identity map[string]interface{}, secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	for key, value := range identity {
		claims[key] = value
	}
	claims["exp"] = jwt.NewNumericDate(time.Now().Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateJWT parses and validates a JWT token, returning the embedded
// identity claims.
func ValidateJWT(tokenString string, secret []byte) (map[string]interface{}, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
