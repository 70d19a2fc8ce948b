/*
Package logx provides a structured logging wrapper based on zerolog.

This file contains the HTTP middleware that logs the full request lifecycle:
method, URI, anonymized remote IP, request body, response status, bytes
written, and latency. Body capture is optional and always skipped for
multipart payloads so file uploads do not flood the log.
*/
package logx

import (
	"bytes"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// BodyLogOptions controls request body capture in the request logger.
type BodyLogOptions struct {
	// Enabled turns request body logging on. Multipart bodies are never
	// captured regardless of this setting.
	Enabled bool

	// MaxBytes caps how much of the body is recorded. Longer bodies are
	// truncated in the log but passed through to the handler untouched.
	MaxBytes int64
}

// anonymizeIP anonymizes the given IP address string.
// For IPv4 the last octet is zeroed; for IPv6 the latter half is compressed
// to "::". This keeps approximate origin information without storing the
// full client address.
func anonymizeIP(ipStr string) string {
	host, _, err := net.SplitHostPort(ipStr)
	if err == nil {
		ipStr = host
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return "unknown_ip"
	}

	if ip.IsLoopback() {
		return "127.0.0.1"
	}

	if v4 := ip.To4(); v4 != nil {
		return v4[:3].String() + ".0"
	}

	if v6 := ip.To16(); v6 != nil {
		return v6[:8].String() + "::"
	}

	return ipStr
}

// replayBody lets a peeked body prefix be re-read by the handler while the
// original body still gets closed.
type replayBody struct {
	io.Reader
	closer io.Closer
}

func (b replayBody) Close() error { return b.closer.Close() }

// peekBody reads up to opts.MaxBytes from the request body for logging and
// rewinds the request so handlers see the untouched stream.
func peekBody(r *http.Request, opts BodyLogOptions) string {
	if !opts.Enabled || r.Body == nil || r.Body == http.NoBody {
		return ""
	}

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return ""
	}

	peeked, err := io.ReadAll(io.LimitReader(r.Body, opts.MaxBytes))
	if err != nil {
		Warn("Failed to capture request body for logging", "error", err.Error())
		return ""
	}

	r.Body = replayBody{
		Reader: io.MultiReader(bytes.NewReader(peeked), r.Body),
		closer: r.Body,
	}

	return string(peeked)
}

// RequestLogger returns an HTTP middleware that logs every request and its
// response. A per-request logger is injected into the context so handlers
// downstream share the same request metadata.
func RequestLogger(opts BodyLogOptions) func(next http.Handler) http.Handler {
	baseLogger := Logger()

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			requestID := middleware.GetReqID(r.Context())

			anonIP := anonymizeIP(r.RemoteAddr)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			logger := baseLogger.With().
				Str("component", "http").
				Str("request_id", requestID).
				Str("remote_ip", anonIP).
				Str("request_method", r.Method).
				Str("request_uri", r.RequestURI).
				Logger()

			if body := peekBody(r, opts); body != "" {
				logger.Info().Str("request_body", body).Msg("Incoming request")
			} else {
				logger.Info().Msg("Incoming request")
			}

			r = r.WithContext(logger.WithContext(r.Context()))

			t1 := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()

			logEvent := logger.Info()
			if status >= 500 {
				logEvent = logger.Error()
			} else if status >= 400 {
				logEvent = logger.Warn()
			}

			logEvent.
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("latency", time.Since(t1)).
				Msg("Request completed")
		}

		return http.HandlerFunc(fn)
	}
}
