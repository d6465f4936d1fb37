package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Common session token errors
var (
	ErrTokenMissing = errors.New("session cookie missing")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// SessionClaims carries the session state plus the standard JWT claims.
type SessionClaims struct {
	UserID  uint           `json:"user_id,omitempty"`
	Modes   map[string]int `json:"modes,omitempty"`
	Flashes []string       `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

// ValidateToken validates a JWT token string and returns the claims
func ValidateToken(tokenString string, secret []byte) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// GenerateToken signs the session state. Each token gets a fresh id and
// expires after expiration.
func GenerateToken(userID uint, modes map[string]int, flashes []string, secret []byte, expiration time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		UserID:  userID,
		Modes:   modes,
		Flashes: flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

// ExtractToken reads the token from the named cookie.
func ExtractToken(c *gin.Context, cookieName string) (string, error) {
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		return "", ErrTokenMissing
	}
	return token, nil
}

// ExtractAndValidateToken combines extraction and validation
func ExtractAndValidateToken(c *gin.Context, cookieName string, secret []byte) (*SessionClaims, error) {
	tokenString, err := ExtractToken(c, cookieName)
	if err != nil {
		return nil, err
	}

	return ValidateToken(tokenString, secret)
}
