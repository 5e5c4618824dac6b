package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers missing, malformed and badly signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// signingKey is the process-wide symmetric secret, set once at startup.
var signingKey []byte

// SetSecret installs the HMAC signing secret from configuration.
func SetSecret(secret string) {
	signingKey = []byte(secret)
}

// Claims carries the single claim embedded in a bearer token: the user id.
// Tokens do not expire; revocation happens by the user id no longer
// resolving.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// GenerateToken produces a compact HS256-signed token for the user.
func GenerateToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: userID})
	signed, err := token.SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and returns the embedded user id.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.ID, nil
}
