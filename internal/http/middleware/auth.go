// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the API key gate. Every protected endpoint is
// registered inside a router group that carries RequireAPIKey, so a new
// endpoint cannot accidentally ship without the check: the gate is a single
// structural checkpoint, not a per-handler convention.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeaderAPIKey is the request header that carries the caller's API key.
const HeaderAPIKey = "X-API-Key"

// VerifyFunc reports whether a presented API key matches an issued credential.
// Implementations must fail closed: missing keys, mismatches, and storage
// errors all return false.
type VerifyFunc func(ctx context.Context, presented string) bool

// RequireAPIKey returns a Gin middleware that rejects any request whose
// X-API-Key header does not verify against the credential store.
//
// Behavior:
//   - The rejection is uniform: a missing header, an unknown key, and a
//     storage fault all produce the same 401 envelope, so callers learn
//     nothing about why verification failed.
//   - The presented key is never logged (the redacting logger additionally
//     masks the header) and is not retained beyond the verification call.
func RequireAPIKey(verify VerifyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !verify(c.Request.Context(), c.GetHeader(HeaderAPIKey)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "unauthorized",
				"message":    "missing or invalid api key",
			})
			return
		}
		c.Next()
	}
}
