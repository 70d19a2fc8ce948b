package handler

import (
	"fmt"
	"net/http"

	"actionapi/internal/pkg/auth/claims"
	"actionapi/internal/pkg/logx"
	"actionapi/internal/pkg/resp"
)

// HealthStatus is the health endpoint response body.
type HealthStatus struct {
	Status string `json:"status"`
}

// HandleHealth creates an HTTP HandlerFunc reporting service health together
// with the caller identity resolved from the proxy-injected principal header.
// Identity resolution is fail-soft: a missing or malformed header reports the
// caller as "unknown" and never fails the check.
func HandleHealth(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := claims.FromContext(r).Email()

		logx.Info("Health check endpoint hit", "user", email)

		resp.RespondSuccess(w, r, HealthStatus{
			Status: fmt.Sprintf("ok - user: %s", email),
		})
	}
}
