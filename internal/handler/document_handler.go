/*
Package handler provides the HTTP handlers and routing setup for the Action API server.

This file contains the standalone document upload endpoint.
*/
package handler

import (
	"net/http"

	"actionapi/internal/pkg/logx"
	"actionapi/internal/pkg/req"
	"actionapi/internal/pkg/resp"
)

// HandleUploadDocument creates an HTTP HandlerFunc that stores a multipart
// file upload. The userId and username form fields accompany the upload for
// log attribution only; no ownership is recorded.
func HandleUploadDocument(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if customErr := req.SetupMultipart(w, r); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		result, customErr := saveFormFile(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		logx.Info("Document uploaded",
			"user_id", r.FormValue("userId"),
			"username", r.FormValue("username"),
			"filename", result.Filename,
		)
		resp.RespondSuccess(w, r, result)
	}
}
