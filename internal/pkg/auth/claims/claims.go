/*
Package claims decodes the identity principal injected by the reverse proxy.

The platform in front of the service authenticates callers and forwards the
resulting identity as a base64-encoded JSON document in a request header. The
document carries a "claims" array of {typ, val} records. Decoding is total:
any malformed header yields an empty claim set with a warning log, never an
error, so the endpoints that only read identity can never be broken by a bad
or missing header.
*/
package claims

import (
	"encoding/base64"
	"encoding/json"

	"actionapi/internal/pkg/logx"
)

const (
	// PrincipalHeader is the request header carrying the base64-encoded
	// JSON principal document.
	PrincipalHeader = "X-MS-CLIENT-PRINCIPAL"

	// EmailClaimType is the well-known claim type URI for the caller's
	// email address.
	EmailClaimType = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"

	// UnknownIdentity is reported when the email claim is absent.
	UnknownIdentity = "unknown"
)

// Claims maps claim type URIs to claim values for one request.
type Claims map[string]string

// principalClaim is one {typ, val} record inside the principal document.
type principalClaim struct {
	Typ string `json:"typ"`
	Val string `json:"val"`
}

// clientPrincipal is the decoded shape of the principal header payload.
type clientPrincipal struct {
	Claims []principalClaim `json:"claims"`
}

// Decode converts a raw principal header value into a Claims map.
// An empty header value returns an empty map. Any base64, UTF-8, or JSON
// failure is logged at Warn level and also returns an empty map: identity
// extraction must never fail the request. Duplicate claim types resolve to
// the last record in the array.
func Decode(headerValue string) Claims {
	result := Claims{}

	if headerValue == "" {
		return result
	}

	decoded, err := base64.StdEncoding.DecodeString(headerValue)
	if err != nil {
		logx.Warn("Failed to base64-decode client principal header", "error", err.Error())
		return result
	}

	var principal clientPrincipal
	if err := json.Unmarshal(decoded, &principal); err != nil {
		logx.Warn("Failed to parse client principal JSON", "error", err.Error())
		return result
	}

	for _, claim := range principal.Claims {
		result[claim.Typ] = claim.Val
	}

	return result
}

// Get returns the value for the given claim type and whether it was present.
func (c Claims) Get(typ string) (string, bool) {
	val, ok := c[typ]
	return val, ok
}

// Email returns the caller's email claim, or UnknownIdentity when absent.
func (c Claims) Email() string {
	if email, ok := c[EmailClaimType]; ok {
		return email
	}
	return UnknownIdentity
}
