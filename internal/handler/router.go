/*
Package handler provides the HTTP handlers and routing setup for the Action API server.

This file defines the main Router, applying middleware like logging, CORS, and
identity extraction before delegating requests to the endpoint handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"actionapi/internal/pkg/auth/claims"
	"actionapi/internal/pkg/logx"
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It configures CORS and applies the global middleware stack: request ID,
// real IP resolution, request/response logging, panic recovery, and identity
// claim extraction.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger(logx.BodyLogOptions{
		Enabled:  deps.Config.LogRequestBodies,
		MaxBytes: deps.Config.LogBodyLimit,
	}))
	r.Use(middleware.Recoverer)
	r.Use(claims.ExtractorMiddleware())

	r.Get("/health", HandleHealth(deps))

	r.Route("/message", func(msg chi.Router) {
		msg.Post("/", HandleSendMessage(deps))
		msg.Post("/with-file", HandleSendMessageWithFile(deps))
		// Path spelling is part of the published API contract.
		msg.Post("/with-messangeAndbase64File", HandleSendMessageWithBase64File(deps))
	})

	r.Route("/document", func(doc chi.Router) {
		doc.Post("/upload", HandleUploadDocument(deps))
	})

	return r
}
