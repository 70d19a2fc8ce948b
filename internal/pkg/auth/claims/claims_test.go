package claims

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
)

func encodePrincipal(t *testing.T, jsonPayload string) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString([]byte(jsonPayload))
}

func TestDecode_WellFormedHeader(t *testing.T) {
	header := encodePrincipal(t, `{
		"claims": [
			{"typ": "`+EmailClaimType+`", "val": "alice@example.com"},
			{"typ": "name", "val": "Alice"}
		]
	}`)

	got := Decode(header)

	if len(got) != 2 {
		t.Fatalf("expected 2 claims, got %d", len(got))
	}

	if val, ok := got.Get(EmailClaimType); !ok || val != "alice@example.com" {
		t.Fatalf("expected email claim %q, got %q (present=%v)", "alice@example.com", val, ok)
	}

	if got.Email() != "alice@example.com" {
		t.Fatalf("expected Email() %q, got %q", "alice@example.com", got.Email())
	}
}

func TestDecode_DuplicateClaimTypesLastWins(t *testing.T) {
	header := encodePrincipal(t, `{
		"claims": [
			{"typ": "role", "val": "reader"},
			{"typ": "role", "val": "writer"}
		]
	}`)

	got := Decode(header)

	if val, _ := got.Get("role"); val != "writer" {
		t.Fatalf("expected last duplicate to win, got %q", val)
	}
}

func TestDecode_IsTotal(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "absent header", header: ""},
		{name: "not base64", header: "%%%not-base64%%%"},
		{name: "base64 of non-JSON", header: encodePrincipal(t, "this is not json")},
		{name: "truncated JSON", header: encodePrincipal(t, `{"claims": [{"typ":`)},
		{name: "valid JSON wrong shape", header: encodePrincipal(t, `{"user": "alice"}`)},
		{name: "claims is not an array", header: encodePrincipal(t, `{"claims": "alice"}`)},
		{name: "empty claims array", header: encodePrincipal(t, `{"claims": []}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.header)

			if got == nil {
				t.Fatal("Decode must return an empty map, never nil")
			}
			if len(got) != 0 {
				t.Fatalf("expected empty claim set, got %v", got)
			}
			if got.Email() != UnknownIdentity {
				t.Fatalf("expected Email() fallback %q, got %q", UnknownIdentity, got.Email())
			}
		})
	}
}

func TestExtractorMiddleware_InjectsClaims(t *testing.T) {
	var seen Claims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r)
	})

	handler := ExtractorMiddleware()(inner)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(PrincipalHeader, encodePrincipal(t,
		`{"claims": [{"typ": "`+EmailClaimType+`", "val": "bob@example.com"}]}`))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen.Email() != "bob@example.com" {
		t.Fatalf("expected injected email claim, got %q", seen.Email())
	}
}

func TestExtractorMiddleware_MalformedHeaderContinues(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if got := FromContext(r).Email(); got != UnknownIdentity {
			t.Fatalf("expected %q identity, got %q", UnknownIdentity, got)
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := ExtractorMiddleware()(inner)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(PrincipalHeader, "garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatal("middleware must never interrupt the request")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestFromContext_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	got := FromContext(req)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty claim set, got %v", got)
	}
}
