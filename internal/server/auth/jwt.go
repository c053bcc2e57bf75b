// Package auth mints and verifies the bearer tokens used by the API.
// Tokens are stateless HS256 JWTs carrying the user id and an expiry;
// there is no server-side revocation list.
package auth

import (
	"errors"
	"time"

	"github.com/Shivam7262/Writely/internal/apperr"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered JWT claims with the account id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// GenerateToken signs a token for userID valid for validityDuration.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	return token.SignedString(secretKey)
}

// GetUserIDFromToken verifies tokenString and returns the embedded user id.
// Malformed, forged and expired tokens all map to apperr.ErrUnauthorized so
// the HTTP layer responds with a single 401 shape.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", apperr.ErrUnauthorized
	}

	if claims.UserID == "" {
		return "", apperr.ErrUnauthorized
	}

	return claims.UserID, nil
}
