// Package middleware adds additional functionality of log, tracing and authentication around request-response cycle
package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/harshitrajsinha/onecall-weather-go/internal/auth"
	"github.com/harshitrajsinha/onecall-weather-go/internal/response"
)

type contextKey string

// ClientKey holds the authenticated client name in the request context
const ClientKey contextKey = "client"

// AuthMiddleware adds authentication middlware to verify protected requests
func AuthMiddleware(next http.Handler, secretAuthKey string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Get token from authorization header
		authToken := strings.TrimSpace(r.Header.Get("Authorization"))
		if authToken == "" {
			log.Println("missing authorization header in request")
			response.SendErrorResponseToClient(w, response.StatusUnauthorizedCode, map[string]string{"authorization": "missing authorization token"})
			return
		}

		authToken = strings.TrimSpace(strings.TrimPrefix(authToken, "Bearer "))
		if authToken == "" || !auth.ValidateJWTString(authToken) {
			log.Println("invalid bearer token for authorization")
			response.SendErrorResponseToClient(w, response.StatusAuthTokenInvalidCode, map[string]string{"authorization": "invalid bearer token"})
			return
		}

		// verify token
		claims, err := auth.VerifyAccessToken(authToken, secretAuthKey)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				log.Println("authorization token has expired")
				response.SendErrorResponseToClient(w, response.StatusAuthTokenExpiredCode, nil)
				return
			}

			log.Println("error while verifying auth token, ", err)
			response.SendErrorResponseToClient(w, response.StatusAuthTokenInvalidCode, nil)
			return
		}

		ctx := context.WithValue(r.Context(), ClientKey, claims.Client)
		next.ServeHTTP(w, r.WithContext(ctx))

	})
}
