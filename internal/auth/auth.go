// Package auth creates and verifies the access tokens guarding the HTTP API
package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "onecall-weather-go"

// DefaultAccessTokenTTL is the lifetime of tokens minted without an explicit ttl
const DefaultAccessTokenTTL = 15 * time.Minute

// CustomClaims defines structure of JWT payload
type CustomClaims struct {
	Client string `json:"client"`
	jwt.RegisteredClaims
}

// CreateAccessToken signs a short-lived HS256 token for client
func CreateAccessToken(client string, secretAuthKey string, ttl time.Duration) (string, error) {

	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	now := time.Now().UTC()

	claims := &CustomClaims{
		Client: client,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   client,
			Issuer:    issuer,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretAuthKey))
	if err != nil {
		return "", fmt.Errorf("error generating access token, %w", err)
	}

	return token, nil
}

// VerifyAccessToken parse and verify the token from API request.
// Expired tokens yield an error matching jwt.ErrTokenExpired.
func VerifyAccessToken(token string, secretAuthKey string) (*CustomClaims, error) {

	var parsedClaims CustomClaims
	parsedToken, err := jwt.ParseWithClaims(token, &parsedClaims, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method, %v", token.Header["alg"])
		}
		return []byte(secretAuthKey), nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, err
	}

	if !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	return &parsedClaims, nil
}

// ValidateJWTString validates if given string/token is of JWT form
func ValidateJWTString(token string) bool {

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}

	for _, p := range parts {
		if _, err := base64.RawURLEncoding.DecodeString(p); err != nil {
			return false
		}
	}

	return true
}
