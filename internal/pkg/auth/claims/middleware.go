package claims

import (
	"context"
	"net/http"
)

// Context key for the decoded claim set, preventing collisions with other packages.
type contextKey string

const (
	// ContextClaimsKey is the key used to store the decoded Claims in the request Context.
	ContextClaimsKey contextKey = "identity_claims"
)

// ExtractorMiddleware decodes the principal header on every request and injects
// the resulting Claims into the Context. It never interrupts the request: a
// missing or malformed header produces an empty claim set and the chain continues.
func ExtractorMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decoded := Decode(r.Header.Get(PrincipalHeader))

			ctx := context.WithValue(r.Context(), ContextClaimsKey, decoded)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext retrieves the Claims stored by ExtractorMiddleware.
// It returns an empty claim set when the middleware did not run.
func FromContext(r *http.Request) Claims {
	if c, ok := r.Context().Value(ContextClaimsKey).(Claims); ok {
		return c
	}
	return Claims{}
}
