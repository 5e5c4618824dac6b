package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"SpotiQ/core/auth"
	"SpotiQ/logger"
)

type contextKey string

// userIDContextKey holds the authenticated caller's id, set by AuthMiddleware.
const userIDContextKey contextKey = "userID"

// AuthMiddleware gates routes that require an authenticated user. It
// validates the bearer token, resolves the embedded id back to a user
// through the domain service, and attaches the id to the request context.
// Any failure short-circuits with 401 before the controller runs.
func (h *APIHandler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "Token invalid")
			return
		}

		// The contract sends the raw compact token; a Bearer prefix is
		// tolerated.
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		userID, err := auth.ParseToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Token invalid")
			return
		}

		// A token whose id no longer resolves is as invalid as a bad
		// signature.
		if _, err := h.service.GetUser(r.Context(), userID); err != nil {
			logger.Warn("Token resolved to unknown user", logger.String("userId", userID))
			respondError(w, http.StatusUnauthorized, "Token invalid")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// GetUserIDFromContext extracts the authenticated user id from the request
// context.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}
